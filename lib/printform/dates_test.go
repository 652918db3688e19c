package printprovider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveDateDisplay(t *testing.T) {
	t.Run(`stored json list wins over everything`, func(t *testing.T) {
		form := FormSource{
			"dates_of_ob": `["2024-01-05","2024-01-06"]`,
			"datesOfOB":   []string{"2024-02-01"},
			"date_of_ob":  "2024-03-01",
		}
		require.Equal(t, "January 05, 2024, January 06, 2024", ResolveDateDisplay(form))
	})

	t.Run(`broken json falls through to the decoded list`, func(t *testing.T) {
		form := FormSource{
			"dates_of_ob": `{not json`,
			"datesOfOB":   []string{"2024-02-01"},
		}
		require.Equal(t, "February 01, 2024", ResolveDateDisplay(form))
	})

	t.Run(`comma separated dateStr is used verbatim`, func(t *testing.T) {
		form := FormSource{
			"dateStr": "Jan 5, Jan 6",
		}
		require.Equal(t, "Jan 5, Jan 6", ResolveDateDisplay(form))
	})

	t.Run(`selected picker values are parsed`, func(t *testing.T) {
		form := FormSource{
			"selectedDatesValues": `["2024-01-05"]`,
		}
		require.Equal(t, "January 05, 2024", ResolveDateDisplay(form))
	})

	t.Run(`single date fields fall back in order`, func(t *testing.T) {
		require.Equal(t, "January 05, 2024", ResolveDateDisplay(FormSource{"date": "2024-01-05"}))
		require.Equal(t, "January 05, 2024", ResolveDateDisplay(FormSource{"dateOfBusiness": "2024-01-05"}))
		require.Equal(t, "January 05, 2024", ResolveDateDisplay(FormSource{"dateOfOB": "2024-01-05"}))
		require.Equal(t, "January 05, 2024", ResolveDateDisplay(FormSource{"date_of_ob": "2024-01-05"}))
	})

	t.Run(`unparseable single date still renders the error text`, func(t *testing.T) {
		require.Equal(t, "Date format error", ResolveDateDisplay(FormSource{"date_of_ob": "someday"}))
	})

	t.Run(`raw dateStr without comma is the emergency fallback`, func(t *testing.T) {
		require.Equal(t, "next week", ResolveDateDisplay(FormSource{"dateStr": "next week"}))
	})

	t.Run(`any field containing date is scanned last`, func(t *testing.T) {
		form := FormSource{
			"someDateHint": "around easter",
			"purpose":      "meeting",
		}
		require.Equal(t, "around easter", ResolveDateDisplay(form))
	})

	t.Run(`no date at all shows the placeholder`, func(t *testing.T) {
		require.Equal(t, MissingDateText, ResolveDateDisplay(FormSource{"purpose": "meeting"}))
		require.Equal(t, MissingDateText, ResolveDateDisplay(FormSource{}))
	})
}
