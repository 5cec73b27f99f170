// ABOUTME: Text helpers for slugs and plain-text excerpts of article bodies
// ABOUTME: Excerpts strip markup and collapse whitespace for list views

package articles

import (
	"strings"
	"unicode"
)

// excerptLength is the maximum rune length of a generated excerpt.
const excerptLength = 200

// Slugify converts a title into a lowercase hyphenated slug.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// Excerpt returns a plain-text preview of an article body with tags removed
// and whitespace collapsed.
func Excerpt(body string) string {
	text := stripTags(body)
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptLength])) + "..."
}

// stripTags removes HTML tags from a string.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false

	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	return b.String()
}
