package utils

import (
	"fmt"
	"strings"
	"time"
)

var monthAbbrev = map[string][12]string{
	"pt": {"JAN", "FEV", "MAR", "ABR", "MAI", "JUN", "JUL", "AGO", "SET", "OUT", "NOV", "DEZ"},
	"en": {"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"},
}

// FeedDateLabel formats a creation timestamp as the short feed label,
// e.g. "12 OUT" for pt.
func FeedDateLabel(t time.Time, lang string) string {
	months, ok := monthAbbrev[strings.ToLower(lang)]
	if !ok {
		months = monthAbbrev["pt"]
	}
	return fmt.Sprintf("%02d %s", t.Day(), months[int(t.Month())-1])
}
