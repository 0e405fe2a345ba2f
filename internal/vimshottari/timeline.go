package vimshottari

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDepth is returned when the requested depth is outside 1..3.
var ErrInvalidDepth = errors.New("invalid depth")

// ErrInvalidRange is returned when the query window's from exceeds its to.
var ErrInvalidRange = errors.New("invalid range")

// Request carries the inputs for one timeline computation. Birth must be
// an absolute UTC instant; MoonLongitude is the sidereal longitude of the
// Moon in degrees, already ayanamsha-corrected upstream. From, To and At
// are optional: a nil From/To means no pruning beyond the natural
// 120-year cycle, a nil At means no active marking.
type Request struct {
	Birth         time.Time
	MoonLongitude float64
	Depth         int
	From          *time.Time
	To            *time.Time
	At            *time.Time
}

// Metadata describes the effective query a timeline answers.
type Metadata struct {
	System string    `json:"system"`
	Depth  int       `json:"depth"`
	From   time.Time `json:"fromDate"`
	To     time.Time `json:"toDate"`
}

// Build computes the ordered mahadasha sequence covering exactly one
// 120-year cycle from birth, each period expanded to the requested depth,
// window-pruned and active-marked per the request.
//
// The first mahadasha is start-truncated to the balance remaining at
// birth; the cycle consequently wraps, and the starting lord reappears as
// an end-truncated tail so that the final period ends exactly 120*365.25
// days after birth. All validation happens before any construction; on
// error no partial tree is returned.
func Build(req Request) ([]Period, Metadata, error) {
	if req.Depth < LevelMahadasha || req.Depth > MaxDepth {
		return nil, Metadata{}, fmt.Errorf("%w: depth %d outside 1..%d", ErrInvalidDepth, req.Depth, MaxDepth)
	}

	birth := req.Birth.UTC()
	cycleEnd := addDays(birth, CycleYears*DaysPerYear)

	from := birth
	if req.From != nil {
		from = req.From.UTC()
	}
	to := cycleEnd
	if req.To != nil {
		to = req.To.UTC()
	}
	if from.After(to) {
		return nil, Metadata{}, fmt.Errorf("%w: fromDate %s after toDate %s",
			ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	nakshatra, fraction, err := Locate(req.MoonLongitude)
	if err != nil {
		return nil, Metadata{}, err
	}
	startLord, remaining := Balance(nakshatra, fraction)

	roots := buildRoots(birth, cycleEnd, startLord, remaining)
	for i := range roots {
		expand(&roots[i], req.Depth)
	}

	roots = prune(roots, from, to)
	if req.At != nil {
		mark(roots, req.At.UTC())
	}

	meta := Metadata{System: "vimshottari", Depth: req.Depth, From: from, To: to}
	return roots, meta, nil
}

// buildRoots lays out the level-1 mahadashas over [birth, cycleEnd].
// Boundaries are derived from a running day total anchored at birth, so
// no drift accumulates across periods; the final boundary is pinned to
// cycleEnd directly.
func buildRoots(birth, cycleEnd time.Time, startLord Lord, remaining float64) []Period {
	roots := make([]Period, 0, NumLords+1)

	cursor := birth
	cum := startLord.Years() * DaysPerYear * remaining
	end := addDays(birth, cum)
	roots = append(roots, Period{
		Lord:         startLord,
		Level:        LevelMahadasha,
		Start:        cursor,
		End:          end,
		DurationDays: daysBetween(cursor, end),
		YearsShare:   startLord.Years(),
	})
	cursor = end

	lord := startLord
	for i := 1; i < NumLords; i++ {
		lord = lord.Next()
		cum += lord.Years() * DaysPerYear
		end = addDays(birth, cum)
		roots = append(roots, Period{
			Lord:         lord,
			Level:        LevelMahadasha,
			Start:        cursor,
			End:          end,
			DurationDays: daysBetween(cursor, end),
			YearsShare:   lord.Years(),
		})
		cursor = end
	}

	// The elapsed portion of the starting lord's period wraps around to
	// close the cycle. Zero-width when birth sat exactly on a nakshatra
	// boundary.
	if cursor.Before(cycleEnd) {
		roots = append(roots, Period{
			Lord:         startLord,
			Level:        LevelMahadasha,
			Start:        cursor,
			End:          cycleEnd,
			DurationDays: daysBetween(cursor, cycleEnd),
			YearsShare:   startLord.Years(),
		})
	}
	return roots
}

// prune drops periods lying entirely outside [from, to) at every level.
// Partially overlapping periods are kept whole; only fully-outside nodes
// and their subtrees are eliminated.
func prune(periods []Period, from, to time.Time) []Period {
	kept := periods[:0]
	for _, p := range periods {
		if !p.End.After(from) || !p.Start.Before(to) {
			continue
		}
		p.Children = prune(p.Children, from, to)
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// mark sets Active on every node in the output: true on the unique chain
// of periods containing at, false elsewhere.
func mark(periods []Period, at time.Time) {
	for i := range periods {
		active := periods[i].Contains(at)
		periods[i].Active = &active
		mark(periods[i].Children, at)
	}
}
