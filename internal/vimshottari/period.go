package vimshottari

import "time"

// Tree depth levels.
const (
	LevelMahadasha       = 1
	LevelAntardasha      = 2
	LevelPratyantardasha = 3
)

// MaxDepth is the deepest supported subdivision level.
const MaxDepth = LevelPratyantardasha

// Period is one node of the dasha tree. A Period is immutable once built:
// the engine returns fresh trees and never shares nodes across calls.
//
// Active is tri-state: nil means the caller supplied no reference instant,
// which is observably different from false for a consumer deciding whether
// activeness was requested at all. Children is nil (not empty) when the
// requested depth stops at this level.
type Period struct {
	Lord         Lord      `json:"lord"`
	Level        int       `json:"level"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationDays float64   `json:"durationDays"`
	YearsShare   float64   `json:"yearsShare"`
	Active       *bool     `json:"active,omitempty"`
	Children     []Period  `json:"children,omitempty"`
}

// Contains reports whether t falls within the period, start-inclusive and
// end-exclusive. Sibling boundaries are shared instants, so exactly one
// sibling contains any instant inside the parent.
func (p *Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// addDays returns t advanced by a fractional number of days. All period
// boundary arithmetic goes through here so rounding is uniform.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * float64(24*time.Hour)))
}

// daysBetween returns the span from a to b in fractional days.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Seconds() / 86400.0
}
