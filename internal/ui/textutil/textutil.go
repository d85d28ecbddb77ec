// Package textutil provides width-aware text helpers for menu rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending with Ellipsis when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= Width(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// SpreadLine lays out left and right within width columns: left is truncated
// if needed and the gap is filled with spaces so right ends at the last column.
// When width is too small for both, right wins only if it fits on its own.
func SpreadLine(left, right string, width int) string {
	rw := Width(right)
	if rw >= width {
		return Truncate(left, width)
	}
	left = Truncate(left, width-rw)
	gap := width - Width(left) - rw
	return left + runewidth.FillRight("", gap) + right
}
