package vimshottari

import "time"

// Subdivide splits a parent period into its nine sub-periods at the next
// level. The first child is ruled by the parent's own lord, then the
// remaining lords follow in cycle order. Each child's duration is the
// parent's actual duration scaled by the child lord's year weight out of
// 120 — always relative to the immediate parent, never to a fresh cycle,
// so truncated parents subdivide consistently.
//
// Boundaries are derived from cumulative year prefixes scaled once by the
// parent duration rather than accumulated incrementally, and the last
// child's end is pinned to the parent's end instant itself; no float
// drift can separate them.
func Subdivide(parent Lord, start time.Time, durationDays float64, level int) []Period {
	return subdivideSpan(parent, start, addDays(start, durationDays), level)
}

// subdivideSpan is Subdivide against an explicit [start, end] span. The
// day count used for proportional boundaries is recomputed from the span;
// holding the end instant directly keeps the final boundary exact even
// when a cached day count has lost sub-nanosecond precision.
func subdivideSpan(parent Lord, start, end time.Time, level int) []Period {
	durationDays := daysBetween(start, end)
	children := make([]Period, 0, NumLords)
	cursor := start
	cum := 0.0
	for i := 0; i < NumLords; i++ {
		lord := Lord((int(parent) + i) % NumLords)
		cum += lord.Years()
		childEnd := end
		if i < NumLords-1 {
			childEnd = addDays(start, durationDays*cum/CycleYears)
		}
		children = append(children, Period{
			Lord:         lord,
			Level:        level,
			Start:        cursor,
			End:          childEnd,
			DurationDays: daysBetween(cursor, childEnd),
			YearsShare:   lord.Years(),
		})
		cursor = childEnd
	}
	return children
}

// expand recursively attaches sub-periods to p down to the requested
// depth. Children are laid out against p's actual start and end instants,
// not its cached day count, so nested boundaries stay coincident with
// their parents to the nanosecond.
func expand(p *Period, depth int) {
	if p.Level >= depth {
		return
	}
	p.Children = subdivideSpan(p.Lord, p.Start, p.End, p.Level+1)
	for i := range p.Children {
		expand(&p.Children[i], depth)
	}
}
