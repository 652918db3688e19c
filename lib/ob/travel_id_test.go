package obprovider

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildTravelID(t *testing.T) {
	now := time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)
	ts := now.UnixMilli() % 10000

	t.Run(`full format`, func(t *testing.T) {
		id := buildTravelID("DOLE", "Cherry B. Mosatalla", 7, now)
		require.Equal(t, fmt.Sprintf("DOLE-CBM-02-0007-%04d", ts), id)
	})

	t.Run(`sequence is zero padded`, func(t *testing.T) {
		id := buildTravelID("DOLE", "Arvin Mabeza", 123, now)
		require.Equal(t, fmt.Sprintf("DOLE-AM-02-0123-%04d", ts), id)
	})

	t.Run(`blank name gets a placeholder`, func(t *testing.T) {
		id := buildTravelID("DOLE", "", 1, now)
		require.Equal(t, fmt.Sprintf("DOLE-NA-02-0001-%04d", ts), id)
	})
}

func TestNameInitials(t *testing.T) {
	require.Equal(t, "CBM", nameInitials("Cherry B. Mosatalla"))
	require.Equal(t, "JS", nameInitials("joe salamanca"))
	require.Equal(t, "NA", nameInitials("   "))
	require.Equal(t, "NA", nameInitials("123 456"))
}
