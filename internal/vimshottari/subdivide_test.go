package vimshottari

import (
	"math"
	"testing"
	"time"
)

var testEpoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

func approx(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", label, got, want, tol)
	}
}

func TestSubdivideSelfPeriodFirst(t *testing.T) {
	t.Parallel()
	for l := Lord(0); l < NumLords; l++ {
		children := Subdivide(l, testEpoch, 1000.0, LevelAntardasha)
		if len(children) != NumLords {
			t.Fatalf("Subdivide(%v) produced %d children, want %d", l, len(children), NumLords)
		}
		if children[0].Lord != l {
			t.Errorf("first child of %v is %v, want self", l, children[0].Lord)
		}
	}
}

func TestSubdivideCyclicOrder(t *testing.T) {
	t.Parallel()
	children := Subdivide(Saturn, testEpoch, 500.0, LevelAntardasha)
	lord := Saturn
	for i, c := range children {
		if c.Lord != lord {
			t.Errorf("child %d lord = %v, want %v", i, c.Lord, lord)
		}
		lord = lord.Next()
	}
}

func TestSubdivideProportions(t *testing.T) {
	t.Parallel()
	const parentDays = 3652.5 // a 10-year Moon mahadasha
	children := Subdivide(Moon, testEpoch, parentDays, LevelAntardasha)

	sum := 0.0
	for i, c := range children {
		want := parentDays * c.YearsShare / CycleYears
		approx(t, "child duration", c.DurationDays, want, 1e-6)
		approx(t, "durationDays vs span", c.DurationDays, daysBetween(c.Start, c.End), 1e-9)
		if c.Level != LevelAntardasha {
			t.Errorf("child %d level = %d, want %d", i, c.Level, LevelAntardasha)
		}
		sum += c.DurationDays
	}
	approx(t, "children total", sum, parentDays, 1e-6)
}

func TestSubdivideContiguousNoDrift(t *testing.T) {
	t.Parallel()
	const parentDays = 7154.123456
	children := Subdivide(Rahu, testEpoch, parentDays, LevelAntardasha)

	if !children[0].Start.Equal(testEpoch) {
		t.Errorf("first child starts %v, want parent start %v", children[0].Start, testEpoch)
	}
	for i := 1; i < len(children); i++ {
		if !children[i].Start.Equal(children[i-1].End) {
			t.Errorf("child %d start %v != child %d end %v",
				i, children[i].Start, i-1, children[i-1].End)
		}
	}
	parentEnd := addDays(testEpoch, parentDays)
	if !children[NumLords-1].End.Equal(parentEnd) {
		t.Errorf("last child ends %v, want parent end %v exactly",
			children[NumLords-1].End, parentEnd)
	}
}

// A truncated parent subdivides against its actual duration, so the
// children of a half-length mahadasha are each half their full size.
func TestSubdivideTruncatedParent(t *testing.T) {
	t.Parallel()
	fullDays := Ketu.Years() * DaysPerYear
	full := Subdivide(Ketu, testEpoch, fullDays, LevelAntardasha)
	half := Subdivide(Ketu, testEpoch, fullDays/2, LevelAntardasha)

	for i := range half {
		approx(t, "truncated child duration", half[i].DurationDays, full[i].DurationDays/2, 1e-6)
	}
}
