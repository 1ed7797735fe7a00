package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeYMD(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "already normalized is idempotent",
			input: "2025-06-01",
			want:  "2025-06-01",
		},
		{
			name:  "unpadded date gets zero padding",
			input: "2025-6-1",
			want:  "2025-06-01",
		},
		{
			name:  "datetime keeps the local calendar date",
			input: "2025-06-01T15:04:05",
			want:  "2025-06-01",
		},
		{
			name:  "datetime with space separator",
			input: "2025-12-31 23:59:59",
			want:  "2025-12-31",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  2025-06-01  ",
			want:  "2025-06-01",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage input",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeYMD(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name         string
		start        string
		end          string
		inclusiveEnd bool
		want         []string
	}{
		{
			name:  "exclusive checkout excludes the end date",
			start: "2025-06-01",
			end:   "2025-06-03",
			want:  []string{"2025-06-01", "2025-06-02"},
		},
		{
			name:         "same-day inclusive yields exactly one date",
			start:        "2025-06-05",
			end:          "2025-06-05",
			inclusiveEnd: true,
			want:         []string{"2025-06-05"},
		},
		{
			name:  "same-day exclusive yields nothing",
			start: "2025-06-05",
			end:   "2025-06-05",
			want:  nil,
		},
		{
			name:  "inverted range yields empty sequence",
			start: "2025-06-10",
			end:   "2025-06-01",
			want:  nil,
		},
		{
			name:  "unparsable start yields empty sequence",
			start: "not-a-date",
			end:   "2025-06-03",
			want:  nil,
		},
		{
			name:  "crosses a month boundary",
			start: "2025-06-29",
			end:   "2025-07-02",
			want:  []string{"2025-06-29", "2025-06-30", "2025-07-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRange(tt.start, tt.end, tt.inclusiveEnd))
		})
	}
}

func TestDateRangeIsBounded(t *testing.T) {
	// A very wide window must terminate at the cap, not run away.
	dates := DateRange("2020-01-01", "2030-01-01", false)
	assert.Len(t, dates, maxRangeDays)
}

func TestMonthBounds(t *testing.T) {
	first, next := MonthBounds(2025, time.June)
	assert.Equal(t, "2025-06-01", first)
	assert.Equal(t, "2025-07-01", next)

	first, next = MonthBounds(2025, time.December)
	assert.Equal(t, "2025-12-01", first)
	assert.Equal(t, "2026-01-01", next)

	// The expanded month covers every day exactly once.
	assert.Len(t, DateRange("2025-06-01", "2025-07-01", false), 30)
}
