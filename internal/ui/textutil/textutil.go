// Package textutil provides unicode-aware text helpers for table cells.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended to truncated text.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut. Wide runes (CJK, emoji) count as two columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}
