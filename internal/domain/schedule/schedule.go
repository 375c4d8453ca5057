// internal/domain/schedule/schedule.go
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the textual date style used both by the schedule table
// and by the --date flag, e.g. "Feb 9, 2026".
const dateLayout = "Jan 2, 2006"

var (
	// ErrMalformedSchedule means no data rows survived parsing.
	ErrMalformedSchedule = errors.New("no valid schedule entries found")
	// ErrEmptySchedule guards the resolver against a zero-entry schedule.
	ErrEmptySchedule = errors.New("no schedule data available")
	// ErrInvalidDate means a target date string did not match the expected format.
	ErrInvalidDate = errors.New("invalid date format")
)

// Entry is one row of the rotation table: the week it becomes active
// and the people assigned to each duty for that week.
type Entry struct {
	WeekStart       time.Time
	ReleaseArtistry []string
	FocusedWork     []string
}

// Schedule is the full rotation, sorted ascending by WeekStart. The
// rotation repeats with a period of len(s) weeks starting at the first
// entry's WeekStart.
type Schedule []Entry

// Assignment is the resolved duty roster for a single week.
type Assignment struct {
	ReleaseArtistry []string `json:"release_artistry"`
	FocusedWork     []string `json:"focused_work"`
}

// CycleInfo describes the loaded rotation cycle.
type CycleInfo struct {
	CycleLength int    `json:"cycle_length"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ParseDate parses a target date in the same "Mon D, YYYY" style the
// schedule table uses.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (use format like \"Feb 9, 2026\")", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a date in the schedule's textual style.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
