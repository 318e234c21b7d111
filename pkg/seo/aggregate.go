package seo

import (
	"math"

	"github.com/postwise/seoscope/pkg/domain"
)

// overall status thresholds
const (
	statusGoodMin = 80
	statusOKMin   = 50
)

// Analyze runs all four field analyzers against the content item and
// aggregates the results. It is a pure function: identical input yields an
// identical result.
func Analyze(item domain.ContentItem, keyword string) domain.OverallResult {
	fields := map[domain.FieldName]domain.FieldResult{
		domain.FieldTitle:           AnalyzeTitle(item.Title, keyword),
		domain.FieldBody:            AnalyzeBody(item.Body, keyword),
		domain.FieldSlug:            AnalyzeSlug(item.Slug, keyword),
		domain.FieldMetaDescription: AnalyzeMetaDescription(item.MetaDescription, keyword),
	}

	score, status := Aggregate(fields)
	return domain.OverallResult{Score: score, Status: status, Fields: fields}
}

// Aggregate averages the scores of contributing fields and classifies the
// result. Fields scoring 0 are excluded from the denominator, whether the zero
// came from an unset keyword or from enough real issues to exhaust the score;
// the two cases are distinguishable only through the issues text. When every
// field is excluded the score is 0 and the status unknown.
func Aggregate(fields map[domain.FieldName]domain.FieldResult) (score int, status domain.Status) {
	sum, count := 0, 0
	for _, f := range fields {
		if f.Score > 0 {
			sum += f.Score
			count++
		}
	}
	if count > 0 {
		score = int(math.Round(float64(sum) / float64(count)))
	}

	switch {
	case score >= statusGoodMin:
		status = domain.StatusGood
	case score >= statusOKMin:
		status = domain.StatusOK
	case score > 0:
		status = domain.StatusPoor
	default:
		status = domain.StatusUnknown
	}
	return score, status
}
