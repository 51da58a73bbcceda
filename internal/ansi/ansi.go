// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import "regexp"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Italic  = "\033[3m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// sgrPattern matches SGR escape sequences.
var sgrPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// Strip removes SGR escape sequences from s.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
