// Package render turns period trees into consumer-facing output. The
// engine's uniform Children field is presentation-mapped here into the
// traditional level vocabulary: antardasha lists inside a mahadasha,
// pratyantardasha lists inside an antardasha.
package render

import (
	"encoding/json"
	"time"

	"github.com/navagraha/dasha/internal/vimshottari"
)

// Document is the serialized response envelope: query metadata plus the
// ordered mahadasha timeline.
type Document struct {
	System   string `json:"system"`
	Depth    int    `json:"depth"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Timeline []Node `json:"timeline"`
}

// Node is one serialized period. Child lists are keyed by level name
// rather than a generic children field, matching the consumed interface.
type Node struct {
	Lord            string  `json:"lord"`
	Level           int     `json:"level"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationDays    float64 `json:"durationDays"`
	YearsShare      float64 `json:"yearsShare"`
	Active          *bool   `json:"active,omitempty"`
	Antardasha      []Node  `json:"antardasha,omitempty"`
	Pratyantardasha []Node  `json:"pratyantardasha,omitempty"`
}

// stamp renders an instant as ISO 8601 UTC with a Z designator.
func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// NewDocument maps an engine result into its serialized form.
func NewDocument(periods []vimshottari.Period, meta vimshottari.Metadata) Document {
	return Document{
		System:   meta.System,
		Depth:    meta.Depth,
		FromDate: stamp(meta.From),
		ToDate:   stamp(meta.To),
		Timeline: nodes(periods),
	}
}

// JSON serializes an engine result as indented JSON.
func JSON(periods []vimshottari.Period, meta vimshottari.Metadata) ([]byte, error) {
	return json.MarshalIndent(NewDocument(periods, meta), "", "  ")
}

func nodes(periods []vimshottari.Period) []Node {
	if periods == nil {
		return nil
	}
	out := make([]Node, 0, len(periods))
	for i := range periods {
		out = append(out, node(&periods[i]))
	}
	return out
}

func node(p *vimshottari.Period) Node {
	n := Node{
		Lord:         p.Lord.String(),
		Level:        p.Level,
		Start:        stamp(p.Start),
		End:          stamp(p.End),
		DurationDays: p.DurationDays,
		YearsShare:   p.YearsShare,
		Active:       p.Active,
	}
	switch p.Level {
	case vimshottari.LevelMahadasha:
		n.Antardasha = nodes(p.Children)
	case vimshottari.LevelAntardasha:
		n.Pratyantardasha = nodes(p.Children)
	}
	return n
}
