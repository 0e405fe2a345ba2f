// Package vimshottari computes Vimshottari dasha timelines: a deterministic,
// recursively subdivided calendar of planetary periods spanning 120 years
// from a birth instant, derived from the sidereal longitude of the Moon.
//
// The engine is pure computation. It performs no I/O, holds no mutable
// state, and is safe to invoke from any number of goroutines concurrently.
package vimshottari

// Lord identifies one of the nine period rulers. The zero value is Ketu;
// the declaration order below IS the fixed Vimshottari cycle — Lord(i+1)
// always succeeds Lord(i), wrapping from Mercury back to Ketu.
type Lord int

const (
	Ketu Lord = iota
	Venus
	Sun
	Moon
	Mars
	Rahu
	Jupiter
	Saturn
	Mercury
)

// NumLords is the length of the ruler cycle.
const NumLords = 9

// CycleYears is the total span of one full Vimshottari cycle.
const CycleYears = 120.0

// DaysPerYear is the fixed year length used for every duration in the
// system. It is applied uniformly at all levels so proportional math stays
// self-consistent; it is not calendar-accurate.
const DaysPerYear = 365.25

// NumNakshatras is the number of sectors in the nakshatra partition.
const NumNakshatras = 27

// NakshatraSpan is the width of one nakshatra in degrees (13°20').
const NakshatraSpan = 360.0 / NumNakshatras

// lordYears holds each lord's nominal mahadasha length in years, indexed
// by Lord. The values sum to exactly CycleYears.
var lordYears = [NumLords]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

var lordNames = [NumLords]string{
	Ketu:    "Ketu",
	Venus:   "Venus",
	Sun:     "Sun",
	Moon:    "Moon",
	Mars:    "Mars",
	Rahu:    "Rahu",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Mercury: "Mercury",
}

// nakshatraNames holds the 27 traditional nakshatra names, 0-indexed from
// Ashwini at 0°. nakshatra k is ruled by Lord(k % 9).
var nakshatraNames = [NumNakshatras]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Years returns the lord's nominal mahadasha length in years.
func (l Lord) Years() float64 { return lordYears[l] }

// Next returns the successor of l in the fixed cycle.
func (l Lord) Next() Lord { return (l + 1) % NumLords }

// String returns the lord's name.
func (l Lord) String() string {
	if l < 0 || l >= NumLords {
		return "Unknown"
	}
	return lordNames[l]
}

// MarshalText serializes the lord as its name, so Period trees encode
// to JSON with readable lord identities.
func (l Lord) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// NakshatraName returns the traditional name of nakshatra index 0..26.
func NakshatraName(index int) string {
	return nakshatraNames[index]
}
