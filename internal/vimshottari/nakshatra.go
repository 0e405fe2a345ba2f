package vimshottari

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a longitude is not a finite number.
var ErrInvalidInput = errors.New("invalid input")

// Locate maps a sidereal longitude in degrees to its nakshatra index
// (0..26) and the fraction of that nakshatra already traversed (0..1).
// Longitudes outside [0, 360) are normalized silently; only non-finite
// values are rejected.
func Locate(longitude float64) (index int, fraction float64, err error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return 0, 0, fmt.Errorf("%w: longitude must be finite, got %v", ErrInvalidInput, longitude)
	}
	lon := math.Mod(longitude, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	index = int(lon / NakshatraSpan)
	// Guard the exact-360 edge where float division can land on 27.
	if index >= NumNakshatras {
		index = 0
		lon = 0
	}
	within := lon - float64(index)*NakshatraSpan
	return index, within / NakshatraSpan, nil
}

// StartingLord resolves a nakshatra index to the lord ruling it. The
// 9-lord cycle repeats exactly three times across the 27 nakshatras.
func StartingLord(nakshatra int) Lord {
	return Lord(nakshatra % NumLords)
}

// Balance returns the starting lord for a birth nakshatra together with
// the remaining fraction of that lord's mahadasha still ahead at birth.
func Balance(nakshatra int, fractionElapsed float64) (Lord, float64) {
	return StartingLord(nakshatra), 1.0 - fractionElapsed
}
