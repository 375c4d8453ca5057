// internal/domain/schedule/parser.go
package schedule

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// rowPattern matches data rows like:
// | Feb 9, 2026   | Fabio, Michael, Luis   | Daniele, Joep    |
var rowPattern = regexp.MustCompile(`^\|\s*([A-Za-z]+\s+\d+,\s+\d+)\s*\|\s*([^|]+)\s*\|\s*([^|]+)\s*\|`)

// parseLine extracts one schedule entry from a table line. It returns
// false for border rows, the header row and anything else that does not
// match the data-row shape, including rows whose date token does not
// parse as a calendar date.
func parseLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "├") || strings.Contains(trimmed, "Week starting") {
		return Entry{}, false
	}

	m := rowPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Entry{}, false
	}

	weekStart, err := time.Parse(dateLayout, strings.TrimSpace(m[1]))
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		WeekStart:       weekStart,
		ReleaseArtistry: splitNames(m[2]),
		FocusedWork:     splitNames(m[3]),
	}, true
}

// splitNames splits a comma-list column and trims each token. Empty
// tokens are kept: a trailing comma yields an empty-string assignee,
// which callers see as-is.
func splitNames(column string) []string {
	parts := strings.Split(column, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}

// Parse turns raw table text into a date-sorted Schedule. Lines that do
// not look like data rows are skipped silently; only a fully empty
// result is an error. The sort is stable, so rows sharing a date keep
// their source order.
func Parse(raw string) (Schedule, error) {
	var entries Schedule
	for _, line := range strings.Split(raw, "\n") {
		if entry, ok := parseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil, ErrMalformedSchedule
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeekStart.Before(entries[j].WeekStart)
	})
	return entries, nil
}
