package llm

import (
	"regexp"
	"strings"
)

// leading list markers: "1." / "2)" / "-" / "*"
var listMarkerRe = regexp.MustCompile(`^(?:\d+[.)]|[-*])\s*`)

// ExtractSingleValue trims whitespace and surrounding quote characters from a
// single-field provider response. It never fails; worst case it returns an
// empty string.
func ExtractSingleValue(text string) string {
	s := strings.TrimSpace(text)
	s = strings.Trim(s, "\"'`“”‘’")
	return strings.TrimSpace(s)
}

// ExtractList splits a provider response into list items: one item per
// non-empty line, leading list markers stripped, truncated to maxItems when
// maxItems is positive.
func ExtractList(text string, maxItems int) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = listMarkerRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
		if maxItems > 0 && len(items) >= maxItems {
			break
		}
	}
	return items
}

// Sections holds the parts recovered from a combined optimization response.
// Absent sections stay empty, which is not an error.
type Sections struct {
	Title       string
	Description string
	Points      []string
}

// ExtractSections locates the labeled sections of a combined response. Each
// section runs from its marker to the next known marker or end of text.
// Malformed input degrades to empty fields, the parser never fails.
func ExtractSections(text string, maxPoints int) Sections {
	markers := []string{sectionTitle, sectionDescription, sectionPoints}
	return Sections{
		Title:       ExtractSingleValue(section(text, sectionTitle, markers)),
		Description: ExtractSingleValue(section(text, sectionDescription, markers)),
		Points:      ExtractList(section(text, sectionPoints, markers), maxPoints),
	}
}

// section returns the raw text between marker and the closest following
// marker, or empty when the marker is absent
func section(text, marker string, markers []string) string {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(marker):]

	end := len(rest)
	for _, m := range markers {
		if m == marker {
			continue
		}
		if j := strings.Index(rest, m); j >= 0 && j < end {
			end = j
		}
	}
	return strings.TrimSpace(rest[:end])
}
