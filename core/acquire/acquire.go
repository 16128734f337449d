// Package acquire turns user input into a single string of source text.
// Uploaded files are dispatched on their extension to a plain text, PDF or
// DOCX reader. Parser failures are deliberately non-fatal: they surface as a
// visible error placeholder in place of the extracted text, so downstream
// stages always receive a string and the process never crashes on a bad file.
package acquire

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// Format is the declared format of an uploaded file
type Format int

const (
	FormatText Format = iota
	FormatPDF
	FormatDOCX
)

// FormatFromFilename resolves the file format from the filename extension.
// Unknown extensions fall back to plain text, matching the upload contract
// of TXT/PDF/DOCX inputs.
func FormatFromFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatText
	}
}

// FromFile extracts text from an uploaded file, dispatching on the filename
// extension. The format decision happens once, here.
func FromFile(filename string, data []byte) string {
	switch FormatFromFilename(filename) {
	case FormatPDF:
		return PDF(data)
	case FormatDOCX:
		return DOCX(data)
	default:
		return Text(data)
	}
}

// Text decodes raw bytes as UTF-8 text
func Text(data []byte) string {
	if !utf8.Valid(data) {
		return "[Text decoding error] file is not valid UTF-8"
	}
	return string(data)
}

// PDF extracts the text of every page, in page order, joined by newlines.
// Pages without extractable text (e.g. scanned images) contribute an empty
// string. A malformed file yields the error placeholder instead of text.
func PDF(data []byte) (text string) {
	// The pdf parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("[PDF extraction error] %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("[PDF extraction error] %v", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n")
}

// DOCX extracts paragraph texts in document order, joined by newlines.
// A malformed file yields the error placeholder instead of text.
func DOCX(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("[DOCX extraction error] %v", r)
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("[DOCX extraction error] %v", err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if paragraph, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, paragraph.String())
		}
	}

	return strings.Join(paragraphs, "\n")
}
