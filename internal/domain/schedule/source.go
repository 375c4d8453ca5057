// internal/domain/schedule/source.go
package schedule

import (
	"fmt"
	"os"
	"strings"
)

// Source identifies where schedule text comes from. The caller decides
// between a file path and inline content before parsing; the parser
// itself never sniffs.
type Source struct {
	path    string
	content string
	inline  bool
}

// FromFile builds a Source reading the schedule from a file path.
func FromFile(path string) Source {
	return Source{path: path}
}

// FromText builds a Source holding inline schedule content.
func FromText(content string) Source {
	return Source{content: content, inline: true}
}

// SourceFromEnv classifies the SCHEMA environment value: anything
// containing a newline or starting with a table character is inline
// content, everything else is treated as a path.
func SourceFromEnv(value string) Source {
	trimmed := strings.TrimSpace(value)
	if strings.Contains(value, "\n") || strings.HasPrefix(trimmed, "├") || strings.HasPrefix(trimmed, "|") {
		return FromText(value)
	}
	return FromFile(value)
}

// Describe returns a human-readable name for the source, used in error
// messages.
func (s Source) Describe() string {
	if s.inline {
		return "inline content"
	}
	return s.path
}

// Load reads the source and parses it into a Schedule.
func Load(src Source) (Schedule, error) {
	text := src.content
	if !src.inline {
		data, err := os.ReadFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("read schedule file: %w", err)
		}
		text = string(data)
	}
	sched, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, src.Describe())
	}
	return sched, nil
}
