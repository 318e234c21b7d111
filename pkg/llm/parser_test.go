package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSingleValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Better SEO Title", "Better SEO Title"},
		{"surrounding whitespace", "  Better SEO Title \n", "Better SEO Title"},
		{"double quotes", `"Better SEO Title"`, "Better SEO Title"},
		{"single quotes", "'Better SEO Title'", "Better SEO Title"},
		{"curly quotes", "“Better SEO Title”", "Better SEO Title"},
		{"quotes then whitespace", "\" Better SEO Title \"", "Better SEO Title"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSingleValue(tt.input))
		})
	}
}

func TestExtractList(t *testing.T) {
	t.Run("numbered list with limit", func(t *testing.T) {
		got := ExtractList("1. Foo\n2. Bar\n\n3. Baz", 2)
		assert.Equal(t, []string{"Foo", "Bar"}, got)
	})

	t.Run("mixed markers", func(t *testing.T) {
		got := ExtractList("- first\n* second\n3) third\nplain fourth", 0)
		assert.Equal(t, []string{"first", "second", "third", "plain fourth"}, got)
	})

	t.Run("blank and marker-only lines skipped", func(t *testing.T) {
		got := ExtractList("1.\n\n2. real item\n   \n-", 5)
		assert.Equal(t, []string{"real item"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ExtractList("", 5))
	})
}

func TestExtractSections(t *testing.T) {
	t.Run("all sections present", func(t *testing.T) {
		text := "TITEL: Hello\n\nMETA-BESCHREIBUNG: World\n\nINHALT-OPTIMIERUNGEN:\n1. A\n2. B"
		got := ExtractSections(text, 5)
		assert.Equal(t, "Hello", got.Title)
		assert.Equal(t, "World", got.Description)
		assert.Equal(t, []string{"A", "B"}, got.Points)
	})

	t.Run("subset of sections", func(t *testing.T) {
		got := ExtractSections("META-BESCHREIBUNG: only this one", 5)
		assert.Empty(t, got.Title)
		assert.Equal(t, "only this one", got.Description)
		assert.Empty(t, got.Points)
	})

	t.Run("sections out of order", func(t *testing.T) {
		text := "INHALT-OPTIMIERUNGEN:\n1. A\n\nTITEL: Later Title"
		got := ExtractSections(text, 5)
		assert.Equal(t, "Later Title", got.Title)
		assert.Equal(t, []string{"A"}, got.Points)
	})

	t.Run("points respect limit", func(t *testing.T) {
		text := "INHALT-OPTIMIERUNGEN:\n1. A\n2. B\n3. C"
		got := ExtractSections(text, 2)
		assert.Equal(t, []string{"A", "B"}, got.Points)
	})

	t.Run("markers are case sensitive", func(t *testing.T) {
		got := ExtractSections("titel: lowercase does not count", 5)
		assert.Empty(t, got.Title)
	})

	t.Run("no markers at all", func(t *testing.T) {
		got := ExtractSections("free-form commentary without any structure", 5)
		assert.Empty(t, got.Title)
		assert.Empty(t, got.Description)
		assert.Empty(t, got.Points)
	})

	t.Run("quoted section values are unquoted", func(t *testing.T) {
		got := ExtractSections("TITEL: \"Quoted Title\"", 5)
		assert.Equal(t, "Quoted Title", got.Title)
	})
}
