package obprovider

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// buildTravelID assembles the human-readable identifier
// {OFFICE}-{INITIALS}-{MM}-{SEQ:04d}-{TS}. SEQ is a same-month record count and TS a
// low-order millisecond fragment, so uniqueness is best effort only: two submissions
// in the same millisecond window can still collide.
func buildTravelID(officeCode, employeeName string, seq int64, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%04d-%04d",
		officeCode,
		nameInitials(employeeName),
		now.Format("01"),
		seq,
		now.UnixMilli()%10000,
	)
}

func nameInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	if b.Len() == 0 {
		return "NA"
	}
	return b.String()
}
