package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeChart(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing chart file: %v", err)
	}
	return path
}

func TestLoadRFC3339(t *testing.T) {
	t.Parallel()
	path := writeChart(t, `
name = "example"

[birth]
datetime = "1990-05-15T04:30:00Z"

[moon]
longitude = 95.41
ayanamsha = "LAHIRI"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Date(1990, 5, 15, 4, 30, 0, 0, time.UTC)
	if !c.Birth.Equal(want) {
		t.Errorf("Birth = %v, want %v", c.Birth, want)
	}
	if c.MoonLongitude != 95.41 {
		t.Errorf("MoonLongitude = %v, want 95.41", c.MoonLongitude)
	}
	if c.Name != "example" || c.Ayanamsha != "LAHIRI" {
		t.Errorf("Name/Ayanamsha = %q/%q, want example/LAHIRI", c.Name, c.Ayanamsha)
	}
}

func TestLoadZonedRFC3339(t *testing.T) {
	t.Parallel()
	path := writeChart(t, `
[birth]
datetime = "1990-05-15T10:00:00+05:30"

[moon]
longitude = 10.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Date(1990, 5, 15, 4, 30, 0, 0, time.UTC)
	if !c.Birth.Equal(want) {
		t.Errorf("Birth = %v, want %v", c.Birth, want)
	}
}

func TestLoadNaiveWithOffset(t *testing.T) {
	t.Parallel()
	path := writeChart(t, `
[birth]
datetime = "1990-05-15T10:00:00"
utc_offset_minutes = 330

[moon]
longitude = 0.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Date(1990, 5, 15, 4, 30, 0, 0, time.UTC)
	if !c.Birth.Equal(want) {
		t.Errorf("Birth = %v, want %v", c.Birth, want)
	}
}

func TestLoadNaiveFractionalSeconds(t *testing.T) {
	t.Parallel()
	path := writeChart(t, `
[birth]
datetime = "1990-05-15T10:00:00.25"
utc_offset_minutes = 330

[moon]
longitude = 0.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Date(1990, 5, 15, 4, 30, 0, 250_000_000, time.UTC)
	if !c.Birth.Equal(want) {
		t.Errorf("Birth = %v, want %v", c.Birth, want)
	}
}

func TestLoadNaiveDefaultsToUTC(t *testing.T) {
	t.Parallel()
	path := writeChart(t, `
[birth]
datetime = "2000-01-01T12:00:00"

[moon]
longitude = 180.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if !c.Birth.Equal(want) {
		t.Errorf("Birth = %v, want %v", c.Birth, want)
	}
}

func TestLoadZeroLongitudeIsValid(t *testing.T) {
	t.Parallel()
	path := writeChart(t, `
[birth]
datetime = "2000-01-01T00:00:00Z"

[moon]
longitude = 0.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MoonLongitude != 0 {
		t.Errorf("MoonLongitude = %v, want 0", c.MoonLongitude)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"missing datetime", "[moon]\nlongitude = 1.0\n", ErrInvalidChart},
		{"missing longitude", "[birth]\ndatetime = \"2000-01-01T00:00:00Z\"\n", ErrInvalidChart},
		{"bad toml", "= not toml", ErrInvalidChart},
		{"bad datetime", "[birth]\ndatetime = \"yesterday\"\n[moon]\nlongitude = 1.0\n", ErrInvalidChart},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeChart(t, tc.content)
			if _, err := Load(path); !errors.Is(err, tc.want) {
				t.Errorf("Load err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, ErrNoChart) {
		t.Errorf("Load err = %v, want ErrNoChart", err)
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	t.Parallel()
	path := writeChart(t, "[birth]\ndatetime = \"2000-01-01T00:00:00Z\"\n[moon]\nlongitude = 1.0\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[birth]\ndatetime = \"2001-01-01T00:00:00Z\"\n[moon]\nlongitude = 2.0\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case <-w.Changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(path, []byte("[birth]\ndatetime = \"2000-01-01T00:00:00Z\"\n[moon]\nlongitude = 1.0\n"), 0o644); err != nil {
		t.Fatalf("writing chart: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case <-w.Changes:
		t.Fatal("notification for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
