package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/siherrmann/annotator/model"
)

// Highlight renders the source text as HTML with every span wrapped in a
// colored mark tag, in the style of displacy entity rendering. Spans are
// expected ordered by start offset; spans that overlap a previous span or
// fall outside the text are skipped. The colors map assigns a CSS background
// per label (see model.DefaultColors); unmapped labels get a neutral one.
func Highlight(text string, spans []model.Span, colors map[string]string) string {
	var b strings.Builder
	b.WriteString(`<div class="entities" style="line-height: 2.5; direction: ltr">`)

	pos := 0
	for _, span := range spans {
		if span.Start < pos || span.End > len(text) || span.Start >= span.End {
			continue
		}

		b.WriteString(template.HTMLEscapeString(text[pos:span.Start]))

		background, ok := colors[span.Label]
		if !ok {
			background = "#dddddd"
		}

		fmt.Fprintf(&b, `<mark class="entity" style="background: %s; padding: 0.45em 0.6em; margin: 0 0.25em; border-radius: 0.35em;">`, background)
		b.WriteString(template.HTMLEscapeString(text[span.Start:span.End]))
		fmt.Fprintf(&b, `<span style="font-size: 0.8em; font-weight: bold; margin-left: 0.5rem">%s</span></mark>`, template.HTMLEscapeString(span.Label))

		pos = span.End
	}

	b.WriteString(template.HTMLEscapeString(text[pos:]))
	b.WriteString(`</div>`)

	return b.String()
}

// HighlightPage wraps Highlight in a standalone HTML document, matching the
// downloadable highlighted-entities file of the original annotation views
func HighlightPage(title string, text string, spans []model.Span, colors map[string]string) string {
	return fmt.Sprintf(
		"<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s\n</body>\n</html>\n",
		template.HTMLEscapeString(title),
		Highlight(text, spans, colors),
	)
}
