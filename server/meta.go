package server

import (
	"strings"

	"github.com/postwise/seoscope/pkg/domain"
	"github.com/postwise/seoscope/pkg/metrics"
)

// excerptRunes caps the body excerpt used as a description fallback
const excerptRunes = 160

// resolveMetaDescription fills the item's meta description before analysis.
// Configured sources are checked in order against the request's metadata map,
// then the item's own description, then a body excerpt. First non-empty wins.
func (s *Server) resolveMetaDescription(item *domain.ContentItem, meta map[string]string) {
	if len(meta) > 0 {
		for _, source := range s.config.GetMetaSources() {
			if value := strings.TrimSpace(meta[source]); value != "" {
				item.MetaDescription = value
				return
			}
		}
	}

	if strings.TrimSpace(item.MetaDescription) != "" {
		return
	}

	item.MetaDescription = bodyExcerpt(item.Body)
}

// bodyExcerpt returns the leading plain text of the body, whitespace
// collapsed and capped at excerptRunes runes
func bodyExcerpt(body string) string {
	text := strings.Join(strings.Fields(metrics.StripTags(body)), " ")
	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptRunes]))
}
