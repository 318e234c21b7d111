package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/postwise/seoscope/pkg/domain"
)

func TestTitlePrompt(t *testing.T) {
	content := domain.ContentItem{
		Title: "Old Title",
		Body:  "<p>" + strings.Repeat("word ", 300) + "</p>",
	}

	prompt := TitlePrompt(content, "seo", domain.SuggestionOptions{})

	assert.Contains(t, prompt, "Old Title")
	assert.Contains(t, prompt, "Focus keyword: seo")
	assert.Contains(t, prompt, "30 to 60 characters")
	assert.Contains(t, prompt, "ONLY the new title")
	assert.Contains(t, prompt, toneDirectives[domain.ToneProfessional], "professional is the default tone")
	assert.Contains(t, prompt, intensityDirectives[domain.IntensityModerate], "moderate is the default intensity")
	assert.NotContains(t, prompt, "<p>", "markup must be stripped from the excerpt")

	// body excerpt is capped at 150 words plus ellipsis
	assert.Contains(t, prompt, "...")
	assert.Less(t, len(prompt), 2500)
}

func TestMetaDescriptionPrompt_Options(t *testing.T) {
	content := domain.ContentItem{Title: "T", Body: "body text", MetaDescription: "old description"}
	opts := domain.SuggestionOptions{Tone: domain.ToneCasual, Intensity: domain.IntensityAggressive}

	prompt := MetaDescriptionPrompt(content, "seo", opts)

	assert.Contains(t, prompt, "old description")
	assert.Contains(t, prompt, "120 to 160 characters")
	assert.Contains(t, prompt, toneDirectives[domain.ToneCasual])
	assert.Contains(t, prompt, intensityDirectives[domain.IntensityAggressive])
}

func TestKeywordsPrompt(t *testing.T) {
	content := domain.ContentItem{Title: "Guide", Body: strings.Repeat("x", 3000)}

	prompt := KeywordsPrompt(content, 5)

	assert.Contains(t, prompt, "5 best focus keywords")
	assert.Contains(t, prompt, "ONLY the keywords")
	// content excerpt capped at 2000 characters
	assert.Contains(t, prompt, strings.Repeat("x", 2000)+"...")
	assert.NotContains(t, prompt, strings.Repeat("x", 2001))
}

func TestContentPointsPrompt(t *testing.T) {
	content := domain.ContentItem{Title: "Guide", Body: "short body"}

	prompt := ContentPointsPrompt(content, "seo", domain.SuggestionOptions{}, 7)

	assert.Contains(t, prompt, "up to 7 concrete")
	assert.Contains(t, prompt, "numbered list")
}

func TestFullPrompt_SectionLabels(t *testing.T) {
	content := domain.ContentItem{Title: "Guide", Body: "body"}

	prompt := FullPrompt(content, "seo", domain.SuggestionOptions{}, 5)

	// the parser anchors on these labels verbatim
	assert.Contains(t, prompt, sectionTitle)
	assert.Contains(t, prompt, sectionDescription)
	assert.Contains(t, prompt, sectionPoints)
	assert.Contains(t, prompt, "Focus keyword: seo")
}

func TestWriteDirectives_UnknownValuesFallBack(t *testing.T) {
	var sb strings.Builder
	writeDirectives(&sb, domain.SuggestionOptions{Tone: "sarcastic", Intensity: "nuclear"})

	assert.Contains(t, sb.String(), toneDirectives[domain.ToneProfessional])
	assert.Contains(t, sb.String(), intensityDirectives[domain.IntensityModerate])
}
