// Package ansi provides ANSI escape code constants for terminal output.
// All colored/styled output should reference these constants to avoid
// duplication.
package ansi

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Wrap surrounds s with an SGR code and a reset. With an empty code it
// returns s unchanged, so call sites stay branch-free when color is off.
func Wrap(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + Reset
}
