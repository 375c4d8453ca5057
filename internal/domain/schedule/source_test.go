package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSourceFromEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		value      string
		wantInline bool
	}{
		{name: "plain path", value: "/etc/rotation/schedule.txt", wantInline: false},
		{name: "relative path", value: "schedule.txt", wantInline: false},
		{name: "multi-line content", value: "| Feb 9, 2026 | Fabio | Joep |\n| Feb 16, 2026 | Joep | Fabio |", wantInline: true},
		{name: "single line starting with pipe", value: "| Feb 9, 2026 | Fabio | Joep |", wantInline: true},
		{name: "starts with border", value: "├──────┤", wantInline: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := SourceFromEnv(tt.value)
			if src.inline != tt.wantInline {
				t.Fatalf("inline = %v, want %v", src.inline, tt.wantInline)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "schedule.txt")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatalf("write schedule file: %v", err)
	}

	sched, err := Load(FromFile(path))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(sched) != 5 {
		t.Fatalf("len = %d, want 5", len(sched))
	}
}

func TestLoadFromText(t *testing.T) {
	t.Parallel()
	sched, err := Load(FromText(sampleTable))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(sched) != 5 {
		t.Fatalf("len = %d, want 5", len(sched))
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(FromFile(filepath.Join(t.TempDir(), "does-not-exist.txt")))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadMalformedNamesSource(t *testing.T) {
	t.Parallel()
	_, err := Load(FromText("nothing parseable here"))
	if !errors.Is(err, ErrMalformedSchedule) {
		t.Fatalf("err = %v, want ErrMalformedSchedule", err)
	}
	if got := err.Error(); !strings.Contains(got, "inline content") {
		t.Fatalf("error should name the source, got: %q", got)
	}
}
