package message

import (
	"regexp"
	"strings"
)

var (
	trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunRe      = regexp.MustCompile(`\n{4,}`)
)

// Normalize strips trailing horizontal whitespace from every line,
// collapses runs of four or more newlines down to exactly three, and trims
// leading and trailing whitespace from the whole string.
//
// Normalize is idempotent: applying it twice yields the same result as
// applying it once.
func Normalize(text string) string {
	text = trailingSpaceRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n\n")
	return strings.TrimSpace(text)
}
