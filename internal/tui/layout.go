package tui

import "unicode/utf8"

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the status bar and footer.
	CompactWidth = 60
	// defaultWidth is used before the first WindowSizeMsg arrives.
	defaultWidth = 80
	// defaultHeight is used before the first WindowSizeMsg arrives.
	defaultHeight = 24
	// chromeHeight is the rows taken by status bar, tab bar, notice and footer.
	chromeHeight = 6
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
func TruncateWithEllipsis(s string, maxLen int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
