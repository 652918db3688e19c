package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run(`iso dates pass through`, func(t *testing.T) {
		require.Equal(t, "2024-01-05", Sanitize("2024-01-05", now))
	})

	t.Run(`other layouts are normalized`, func(t *testing.T) {
		require.Equal(t, "2024-01-05", Sanitize("01/05/2024", now))
		require.Equal(t, "2024-01-05", Sanitize("January 5, 2024", now))
		require.Equal(t, "2024-01-05", Sanitize("2024-01-05T08:30:00Z", now))
	})

	t.Run(`garbage falls back to today`, func(t *testing.T) {
		require.Equal(t, "2024-03-15", Sanitize("not a date", now))
		require.Equal(t, "2024-03-15", Sanitize("", now))
	})
}

func TestFormatDisplay(t *testing.T) {
	t.Run(`month name with padded day`, func(t *testing.T) {
		require.Equal(t, "January 05, 2024", FormatDisplay("2024-01-05"))
		require.Equal(t, "December 25, 2023", FormatDisplay("2023-12-25"))
	})

	t.Run(`empty stays empty`, func(t *testing.T) {
		require.Equal(t, "", FormatDisplay(""))
	})

	t.Run(`unparseable renders the error text`, func(t *testing.T) {
		require.Equal(t, "Date format error", FormatDisplay("yesterday"))
	})

	t.Run(`lists are comma joined`, func(t *testing.T) {
		require.Equal(t, "January 05, 2024, January 06, 2024",
			FormatDisplayList([]string{"2024-01-05", "2024-01-06"}))
		require.Equal(t, "", FormatDisplayList(nil))
	})
}

func TestFormatTime12h(t *testing.T) {
	require.Equal(t, "8:30 AM", FormatTime12h("08:30"))
	require.Equal(t, "1:05 PM", FormatTime12h("13:05"))
	require.Equal(t, "12:00 AM", FormatTime12h("00:00"))
	require.Equal(t, "", FormatTime12h(""))
	require.Equal(t, "noon", FormatTime12h("noon"))
}
