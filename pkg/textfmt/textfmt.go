// Package textfmt holds the layout primitives shared by every document
// template: centering a heading line and drawing a full-width rule.
package textfmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the page width, in characters, used when a caller passes a
// non-positive width.
const DefaultWidth = 80

// Center pads text with spaces so that its rune length equals width. When the
// padding is odd the extra space goes to the right. Text at least as long as
// width is returned unchanged.
func Center(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	length := utf8.RuneCountInString(text)
	if length >= width {
		return text
	}

	pad := width - length
	left := pad / 2
	right := pad - left

	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// Rule returns width underscore characters.
func Rule(width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return strings.Repeat("_", width)
}
