// Package seo implements the rule-based scoring engine. Each field analyzer
// applies a fixed ordered list of checks against the focus keyword and returns
// a score with human-readable issues; the aggregator folds the per-field
// results into an overall score and status. Analyzers never fail, they degrade
// to zero results.
package seo

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/metrics"
)

// per-issue penalties, field specific
const (
	penaltyTitle = 25
	penaltyBody  = 20
	penaltySlug  = 25
	penaltyMeta  = 25
)

// check thresholds
const (
	titleMinLen        = 30
	titleMaxLen        = 60
	titleKeywordWindow = 20 // keyword must start within this many characters

	bodyMinWords = 300
	densityMin   = 0.5
	densityMax   = 2.5

	slugMinLen = 3
	slugMaxLen = 75

	metaMinLen = 120
	metaMaxLen = 160
)

const issueKeywordNotSet = "focus keyword is not set"

// AnalyzeTitle checks title length, keyword presence and keyword position
func AnalyzeTitle(title, keyword string) domain.FieldResult {
	if keyword == "" {
		return keywordNotSet()
	}

	var issues []string
	if n := metrics.Length(title); n < titleMinLen || n > titleMaxLen {
		issues = append(issues, fmt.Sprintf("title is %d characters, should be between %d and %d", n, titleMinLen, titleMaxLen))
	}
	switch idx := metrics.FirstIndex(title, keyword); {
	case idx == metrics.NotFound:
		issues = append(issues, "focus keyword does not appear in the title")
	case idx > titleKeywordWindow:
		issues = append(issues, fmt.Sprintf("focus keyword appears after the first %d characters of the title", titleKeywordWindow))
	}
	return score(issues, penaltyTitle)
}

// AnalyzeBody checks word count, keyword usage and density, subheadings,
// keyword presence in headings, and image usage. Body may contain markup.
func AnalyzeBody(body, keyword string) domain.FieldResult {
	if keyword == "" {
		return keywordNotSet()
	}

	text := metrics.StripTags(body)
	words := len(strings.Fields(text))

	var issues []string
	if words < bodyMinWords {
		issues = append(issues, fmt.Sprintf("content has %d words, at least %d recommended", words, bodyMinWords))
	}

	// density is only meaningful when the keyword occurs at all, so exactly
	// one of the absence/density issues can fire for this slot
	if metrics.Occurrences(text, keyword) == 0 {
		issues = append(issues, "focus keyword does not appear in the content")
	} else {
		switch density := metrics.Density(text, keyword, words); {
		case density < densityMin:
			issues = append(issues, fmt.Sprintf("keyword density %.1f%% is below %.1f%%, keyword is too sparse", density, densityMin))
		case density > densityMax:
			issues = append(issues, fmt.Sprintf("keyword density %.1f%% is above %.1f%%, reads like keyword stuffing", density, densityMax))
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		doc = nil
	}
	if doc == nil || doc.Find("h2").Length() == 0 {
		issues = append(issues, "content has no h2 subheadings")
	}
	// the heading-keyword check applies only when headings exist, a body with
	// no headings at all is already penalized by the h2 check
	if doc != nil && doc.Find("h1,h2,h3,h4,h5,h6").Length() > 0 && !keywordInHeadings(doc, keyword) {
		issues = append(issues, "focus keyword does not appear in any heading")
	}
	if doc == nil || doc.Find("img").Length() == 0 {
		issues = append(issues, "content has no images")
	}

	return score(issues, penaltyBody)
}

// AnalyzeSlug checks slug length and whether it contains the slugified keyword
func AnalyzeSlug(slug, keyword string) domain.FieldResult {
	if keyword == "" {
		return keywordNotSet()
	}

	var issues []string
	if n := metrics.Length(slug); n < slugMinLen || n > slugMaxLen {
		issues = append(issues, fmt.Sprintf("URL slug is %d characters, should be between %d and %d", n, slugMinLen, slugMaxLen))
	}
	if !strings.Contains(strings.ToLower(slug), Slugify(keyword)) {
		issues = append(issues, "focus keyword is not part of the URL slug")
	}
	return score(issues, penaltySlug)
}

// AnalyzeMetaDescription checks the resolved description for presence, length
// and keyword usage. A missing description is terminal, no further checks run.
func AnalyzeMetaDescription(description, keyword string) domain.FieldResult {
	if keyword == "" {
		return keywordNotSet()
	}
	if strings.TrimSpace(description) == "" {
		return domain.FieldResult{Score: 0, Issues: []string{"meta description is missing"}}
	}

	var issues []string
	if n := metrics.Length(description); n < metaMinLen || n > metaMaxLen {
		issues = append(issues, fmt.Sprintf("meta description is %d characters, should be between %d and %d", n, metaMinLen, metaMaxLen))
	}
	if metrics.Occurrences(description, keyword) == 0 {
		issues = append(issues, "focus keyword does not appear in the meta description")
	}
	return score(issues, penaltyMeta)
}

// Slugify lowercases s and replaces runs of non-alphanumeric characters with
// single hyphens, trimming leading and trailing ones
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func keywordNotSet() domain.FieldResult {
	return domain.FieldResult{Score: 0, Issues: []string{issueKeywordNotSet}}
}

func keywordInHeadings(doc *goquery.Document, keyword string) bool {
	found := false
	doc.Find("h1,h2,h3,h4,h5,h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if metrics.Occurrences(sel.Text(), keyword) > 0 {
			found = true
			return false
		}
		return true
	})
	return found
}

// score converts an issue list into a FieldResult, 100 iff no issues
func score(issues []string, penalty int) domain.FieldResult {
	s := 100 - len(issues)*penalty
	if s < 0 {
		s = 0
	}
	return domain.FieldResult{Score: s, Issues: issues}
}
