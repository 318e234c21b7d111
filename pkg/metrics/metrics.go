// Package metrics provides the text measurements used by the SEO analyzers.
// All functions are pure and never fail; empty input yields zero or not-found.
package metrics

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// NotFound is the sentinel returned by FirstIndex when the needle is absent
const NotFound = -1

// strict policy drops every tag, leaving text content only
var stripPolicy = bluemonday.StrictPolicy()

// Length returns the number of unicode codepoints in s, not bytes
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// StripTags removes markup from s and unescapes entities, leaving plain text
func StripTags(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// WordCount counts whitespace-delimited tokens after stripping markup
func WordCount(s string) int {
	return len(strings.Fields(StripTags(s)))
}

// Occurrences counts case-insensitive substring matches of needle in haystack
func Occurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(strings.ToLower(haystack), strings.ToLower(needle))
}

// Density returns keyword density as a percentage of the given word count
func Density(haystack, needle string, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return float64(Occurrences(haystack, needle)) * 100 / float64(wordCount)
}

// FirstIndex returns the character offset of the first case-insensitive match
// of needle in haystack, or NotFound
func FirstIndex(haystack, needle string) int {
	if needle == "" {
		return NotFound
	}
	lower := strings.ToLower(haystack)
	idx := strings.Index(lower, strings.ToLower(needle))
	if idx < 0 {
		return NotFound
	}
	return utf8.RuneCountInString(lower[:idx])
}
