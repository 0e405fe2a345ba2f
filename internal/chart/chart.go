// Package chart loads birth-chart input files. A chart file is a small
// TOML document carrying the birth instant and the sidereal longitude of
// the Moon, the two inputs the timeline engine consumes. Ephemeris
// computation and ayanamsha correction happen upstream of this file; the
// longitude recorded here is the final corrected value.
package chart

import (
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrNoChart is returned when the chart file does not exist.
var ErrNoChart = errors.New("chart file not found")

// ErrInvalidChart is returned when the chart file is malformed or missing
// required fields.
var ErrInvalidChart = errors.New("invalid chart file")

// Chart is a resolved birth chart: the birth moment as an absolute UTC
// instant and the Moon's sidereal longitude in degrees.
type Chart struct {
	Name          string
	Birth         time.Time
	MoonLongitude float64
	Ayanamsha     string // informational label, e.g. "LAHIRI"
}

// chartFile mirrors the on-disk TOML layout.
type chartFile struct {
	Name  string    `toml:"name"`
	Birth birthSpec `toml:"birth"`
	Moon  moonSpec  `toml:"moon"`
}

type birthSpec struct {
	// Datetime is RFC 3339, or a naive local timestamp combined with
	// UTCOffsetMinutes.
	Datetime         string `toml:"datetime"`
	UTCOffsetMinutes *int   `toml:"utc_offset_minutes"`
}

type moonSpec struct {
	Longitude *float64 `toml:"longitude"`
	Ayanamsha string   `toml:"ayanamsha"`
}

// naiveLayout matches a timestamp with no zone designator.
const naiveLayout = "2006-01-02T15:04:05"

// Load reads and resolves a chart file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoChart, path)
		}
		return nil, fmt.Errorf("reading chart file: %w", err)
	}

	var raw chartFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}

	if raw.Birth.Datetime == "" {
		return nil, fmt.Errorf("%w: birth.datetime is required", ErrInvalidChart)
	}
	if raw.Moon.Longitude == nil {
		return nil, fmt.Errorf("%w: moon.longitude is required", ErrInvalidChart)
	}

	birth, err := resolveBirth(raw.Birth)
	if err != nil {
		return nil, err
	}

	return &Chart{
		Name:          raw.Name,
		Birth:         birth,
		MoonLongitude: *raw.Moon.Longitude,
		Ayanamsha:     raw.Moon.Ayanamsha,
	}, nil
}

// resolveBirth converts the on-disk birth spec to an absolute UTC instant.
// An explicit zone in the timestamp wins; a naive timestamp is interpreted
// through utc_offset_minutes, defaulting to UTC when neither is present.
func resolveBirth(spec birthSpec) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, spec.Datetime); err == nil {
		return t.UTC(), nil
	}

	naive, err := time.Parse(naiveLayout, spec.Datetime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth.datetime %q is neither RFC 3339 nor %s",
			ErrInvalidChart, spec.Datetime, naiveLayout)
	}

	offset := 0
	if spec.UTCOffsetMinutes != nil {
		offset = *spec.UTCOffsetMinutes
	}
	zone := time.FixedZone(offsetName(offset), offset*60)
	local := time.Date(naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(), zone)
	return local.UTC(), nil
}

// offsetName renders an offset in minutes as UTC±HH:MM.
func offsetName(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
