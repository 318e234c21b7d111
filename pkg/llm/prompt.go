package llm

import (
	"fmt"
	"strings"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/metrics"
)

// section labels requested from the provider in combined prompts; the parser
// matches them verbatim, case-sensitive
const (
	sectionTitle       = "TITEL:"
	sectionDescription = "META-BESCHREIBUNG:"
	sectionPoints      = "INHALT-OPTIMIERUNGEN:"
)

// excerpt bounds for the content passed along with a prompt
const (
	excerptWords = 150  // title and meta description prompts
	excerptChars = 2000 // content suggestion prompts
)

// numeric constraints repeated to the model, same bounds the analyzer enforces
const (
	promptTitleMin = 30
	promptTitleMax = 60
	promptDescMin  = 120
	promptDescMax  = 160
)

var toneDirectives = map[domain.Tone]string{
	domain.ToneProfessional: "Keep the wording professional and authoritative.",
	domain.ToneFriendly:     "Use a friendly, approachable wording.",
	domain.ToneCasual:       "Keep the wording casual and conversational.",
	domain.ToneFormal:       "Use formal, precise wording.",
}

var intensityDirectives = map[domain.Intensity]string{
	domain.IntensityLight:      "Stay close to the original and change only what clearly helps.",
	domain.IntensityModerate:   "Rework the text where it helps while keeping the original intent.",
	domain.IntensityAggressive: "Rewrite freely and prioritize search performance over preserving the original wording.",
}

// KeywordsPrompt asks the provider to extract focus keyword candidates
func KeywordsPrompt(content domain.ContentItem, maxItems int) string {
	var sb strings.Builder
	sb.WriteString("You are an SEO specialist. Identify the focus keywords this page should target.\n\n")
	if content.Title != "" {
		fmt.Fprintf(&sb, "Page title: %s\n", content.Title)
	}
	fmt.Fprintf(&sb, "Page content:\n%s\n\n", excerptByChars(content.Body, excerptChars))
	fmt.Fprintf(&sb, "List the %d best focus keywords for this page, most relevant first, one per line.\n", maxItems)
	sb.WriteString("Respond with ONLY the keywords, no commentary, no quote marks.")
	return sb.String()
}

// TitlePrompt asks the provider to rewrite the page title
func TitlePrompt(content domain.ContentItem, keyword string, opts domain.SuggestionOptions) string {
	var sb strings.Builder
	sb.WriteString("You are an SEO specialist improving a page title.\n\n")
	fmt.Fprintf(&sb, "Current title: %s\n", content.Title)
	fmt.Fprintf(&sb, "Focus keyword: %s\n", keyword)
	fmt.Fprintf(&sb, "Page content for context:\n%s\n\n", excerptByWords(content.Body, excerptWords))
	fmt.Fprintf(&sb, "Write one improved title of %d to %d characters that contains the focus keyword near the start.\n", promptTitleMin, promptTitleMax)
	writeDirectives(&sb, opts)
	sb.WriteString("Respond with ONLY the new title, no commentary, no quote marks.")
	return sb.String()
}

// MetaDescriptionPrompt asks the provider to rewrite the meta description
func MetaDescriptionPrompt(content domain.ContentItem, keyword string, opts domain.SuggestionOptions) string {
	var sb strings.Builder
	sb.WriteString("You are an SEO specialist improving a meta description.\n\n")
	if content.MetaDescription != "" {
		fmt.Fprintf(&sb, "Current description: %s\n", content.MetaDescription)
	}
	fmt.Fprintf(&sb, "Page title: %s\n", content.Title)
	fmt.Fprintf(&sb, "Focus keyword: %s\n", keyword)
	fmt.Fprintf(&sb, "Page content for context:\n%s\n\n", excerptByWords(content.Body, excerptWords))
	fmt.Fprintf(&sb, "Write one meta description of %d to %d characters that contains the focus keyword and invites the click.\n", promptDescMin, promptDescMax)
	writeDirectives(&sb, opts)
	sb.WriteString("Respond with ONLY the new description, no commentary, no quote marks.")
	return sb.String()
}

// ContentPointsPrompt asks for concrete content improvement points
func ContentPointsPrompt(content domain.ContentItem, keyword string, opts domain.SuggestionOptions, maxItems int) string {
	var sb strings.Builder
	sb.WriteString("You are an SEO specialist reviewing page content.\n\n")
	fmt.Fprintf(&sb, "Page title: %s\n", content.Title)
	fmt.Fprintf(&sb, "Focus keyword: %s\n", keyword)
	fmt.Fprintf(&sb, "Page content:\n%s\n\n", excerptByChars(content.Body, excerptChars))
	fmt.Fprintf(&sb, "Give up to %d concrete, actionable improvements to make this content rank better for the focus keyword, as a numbered list with one improvement per line.\n", maxItems)
	writeDirectives(&sb, opts)
	sb.WriteString("Respond with ONLY the numbered list, no commentary.")
	return sb.String()
}

// FullPrompt asks for title, description and content points in one response,
// using the fixed section labels the parser anchors on
func FullPrompt(content domain.ContentItem, keyword string, opts domain.SuggestionOptions, maxItems int) string {
	var sb strings.Builder
	sb.WriteString("You are an SEO specialist doing a full optimization pass on a page.\n\n")
	fmt.Fprintf(&sb, "Current title: %s\n", content.Title)
	if content.MetaDescription != "" {
		fmt.Fprintf(&sb, "Current meta description: %s\n", content.MetaDescription)
	}
	fmt.Fprintf(&sb, "Focus keyword: %s\n", keyword)
	fmt.Fprintf(&sb, "Page content:\n%s\n\n", excerptByChars(content.Body, excerptChars))
	fmt.Fprintf(&sb, "Produce an improved title (%d-%d characters, keyword near the start), an improved meta description (%d-%d characters, containing the keyword) and up to %d content improvements.\n",
		promptTitleMin, promptTitleMax, promptDescMin, promptDescMax, maxItems)
	writeDirectives(&sb, opts)
	sb.WriteString("Format the response exactly as:\n")
	fmt.Fprintf(&sb, "%s <improved title>\n\n", sectionTitle)
	fmt.Fprintf(&sb, "%s <improved meta description>\n\n", sectionDescription)
	fmt.Fprintf(&sb, "%s\n1. <first improvement>\n2. <second improvement>\n", sectionPoints)
	sb.WriteString("No commentary outside these sections, no quote marks.")
	return sb.String()
}

func writeDirectives(sb *strings.Builder, opts domain.SuggestionOptions) {
	tone, ok := toneDirectives[opts.Tone]
	if !ok {
		tone = toneDirectives[domain.ToneProfessional]
	}
	intensity, ok := intensityDirectives[opts.Intensity]
	if !ok {
		intensity = intensityDirectives[domain.IntensityModerate]
	}
	sb.WriteString(tone)
	sb.WriteString(" ")
	sb.WriteString(intensity)
	sb.WriteString("\n")
}

// excerptByWords strips markup and keeps the first max words
func excerptByWords(s string, max int) string {
	words := strings.Fields(metrics.StripTags(s))
	if len(words) <= max {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:max], " ") + "..."
}

// excerptByChars strips markup and keeps the first max characters
func excerptByChars(s string, max int) string {
	text := strings.TrimSpace(metrics.StripTags(s))
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
