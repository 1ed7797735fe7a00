package availability

import (
	"fmt"
	"strings"
	"time"
)

const ymdLayout = "2006-01-02"

// maxRangeDays bounds range expansion so a malformed request can never
// expand into an unbounded loop.
const maxRangeDays = 370

// ymdInputLayouts are the accepted inbound date shapes, tried in order.
var ymdInputLayouts = []string{
	ymdLayout,
	"2006-1-2",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NormalizeYMD parses a date-only or date-time input as local time and
// returns the zero-padded local calendar date. Date-only inputs are read
// as local midnight so a timezone offset can never shift them across a
// day boundary. Idempotent on an already-normalized string.
func NormalizeYMD(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty date input")
	}
	for _, layout := range ymdInputLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err != nil {
			continue
		}
		return t.In(time.Local).Format(ymdLayout), nil
	}
	return "", fmt.Errorf("unrecognized date input %q", input)
}

// DateRange expands [startYMD, endYMD) into consecutive local calendar
// dates. With inclusiveEnd true the end date itself is included, which is
// how single-day requests (start == end) yield exactly one date. An
// inverted or unparsable range yields an empty sequence, never an error.
func DateRange(startYMD, endYMD string, inclusiveEnd bool) []string {
	start, err := time.ParseInLocation(ymdLayout, startYMD, time.Local)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation(ymdLayout, endYMD, time.Local)
	if err != nil {
		return nil
	}
	if inclusiveEnd {
		end = end.AddDate(0, 0, 1)
	}

	var dates []string
	for d, n := start, 0; d.Before(end) && n < maxRangeDays; d, n = d.AddDate(0, 0, 1), n+1 {
		dates = append(dates, d.Format(ymdLayout))
	}
	return dates
}

// MonthBounds returns the first day of the month and the first day of the
// following month as YMD strings, i.e. the exclusive window covering the
// whole month.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.Format(ymdLayout), first.AddDate(0, 1, 0).Format(ymdLayout)
}
