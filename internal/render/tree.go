package render

import (
	"fmt"
	"strings"

	"github.com/navagraha/dasha/internal/ansi"
	"github.com/navagraha/dasha/internal/vimshottari"
)

// TreeRenderer produces an indented text view of a period tree. Active
// periods are highlighted when UseColor is set; without color they carry
// a textual marker instead.
type TreeRenderer struct {
	UseColor bool
}

const dayFormat = "2006-01-02"

// Render returns the full text rendering of a timeline, header included.
func (r *TreeRenderer) Render(periods []vimshottari.Period, meta vimshottari.Metadata) string {
	var b strings.Builder

	header := fmt.Sprintf("%s timeline  %s → %s  (depth %d)",
		meta.System, meta.From.UTC().Format(dayFormat), meta.To.UTC().Format(dayFormat), meta.Depth)
	b.WriteString(r.style(ansi.Bold, header))
	b.WriteByte('\n')

	for i := range periods {
		r.writePeriod(&b, &periods[i])
	}
	return b.String()
}

func (r *TreeRenderer) writePeriod(b *strings.Builder, p *vimshottari.Period) {
	indent := strings.Repeat("  ", p.Level-1)
	line := fmt.Sprintf("%s%-10s %s … %s  %9.1fd",
		indent, p.Lord, p.Start.UTC().Format(dayFormat), p.End.UTC().Format(dayFormat), p.DurationDays)

	switch {
	case p.Active != nil && *p.Active:
		line = r.style(ansi.Green, line)
		if !r.UseColor {
			line += "  *active*"
		} else {
			line += r.style(ansi.Green, "  ● active")
		}
	case p.Level > vimshottari.LevelMahadasha:
		line = r.style(ansi.Dim, line)
	}

	b.WriteString(line)
	b.WriteByte('\n')
	for i := range p.Children {
		r.writePeriod(b, &p.Children[i])
	}
}

// style applies an SGR code only when color output is enabled.
func (r *TreeRenderer) style(code, s string) string {
	if !r.UseColor {
		return s
	}
	return ansi.Wrap(code, s)
}

// Summary renders the one-line nakshatra report used by the nakshatra
// subcommand.
func Summary(longitude float64, index int, fraction float64, lord vimshottari.Lord, remaining float64) string {
	return fmt.Sprintf("%.4f° → %s (nakshatra %d, %.1f%% traversed); %s mahadasha, balance %.1f%% (%.1f days)",
		longitude, vimshottari.NakshatraName(index), index, fraction*100,
		lord, remaining*100, lord.Years()*vimshottari.DaysPerYear*remaining)
}
