package extract

import "github.com/siherrmann/annotator/model"

// Filter keeps only the spans whose label is in the allowed set, preserving
// relative order. An empty allowed set yields an empty result; selected
// labels no model ever emits simply never match.
func Filter(spans []model.Span, allowed model.LabelSet) []model.Span {
	filtered := make([]model.Span, 0, len(spans))
	for _, span := range spans {
		if allowed.Has(span.Label) {
			filtered = append(filtered, span)
		}
	}
	return filtered
}
