package acquire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"report.pdf", FormatPDF},
		{"Report.PDF", FormatPDF},
		{"notes.docx", FormatDOCX},
		{"notes.DOCX", FormatDOCX},
		{"plain.txt", FormatText},
		{"no_extension", FormatText},
		{"archive.tar.gz", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFromFilename(tt.filename))
		})
	}
}

func TestText(t *testing.T) {
	t.Run("Decode valid UTF-8", func(t *testing.T) {
		text := Text([]byte("Alice works at Acme Corp in Paris."))
		assert.Equal(t, "Alice works at Acme Corp in Paris.", text)
	})

	t.Run("Decode empty input", func(t *testing.T) {
		assert.Equal(t, "", Text(nil))
	})

	t.Run("Invalid UTF-8 yields error placeholder not a crash", func(t *testing.T) {
		text := Text([]byte{0xff, 0xfe, 0xfd})
		assert.Contains(t, text, "[Text decoding error]", "Expected decoding failure to surface as placeholder text")
	})
}

func TestPDF(t *testing.T) {
	t.Run("Malformed PDF yields error placeholder", func(t *testing.T) {
		text := PDF([]byte("this is not a pdf"))
		assert.True(t, strings.HasPrefix(text, "[PDF extraction error]"),
			"Expected parse failure to surface as placeholder text, got %q", text)
	})

	t.Run("Empty input yields error placeholder", func(t *testing.T) {
		text := PDF(nil)
		assert.True(t, strings.HasPrefix(text, "[PDF extraction error]"),
			"Expected parse failure to surface as placeholder text, got %q", text)
	})
}

func TestDOCX(t *testing.T) {
	t.Run("Malformed DOCX yields error placeholder", func(t *testing.T) {
		text := DOCX([]byte("this is not a docx"))
		assert.True(t, strings.HasPrefix(text, "[DOCX extraction error]"),
			"Expected parse failure to surface as placeholder text, got %q", text)
	})
}

func TestFromFile(t *testing.T) {
	t.Run("Dispatches txt to text decoding", func(t *testing.T) {
		text := FromFile("input.txt", []byte("some plain text"))
		assert.Equal(t, "some plain text", text)
	})

	t.Run("Dispatches pdf to PDF extraction", func(t *testing.T) {
		text := FromFile("input.pdf", []byte("bogus"))
		assert.Contains(t, text, "[PDF extraction error]")
	})

	t.Run("Dispatches docx to DOCX extraction", func(t *testing.T) {
		text := FromFile("input.docx", []byte("bogus"))
		assert.Contains(t, text, "[DOCX extraction error]")
	})

	t.Run("Unknown extension falls back to text", func(t *testing.T) {
		text := FromFile("input.md", []byte("# heading"))
		assert.Equal(t, "# heading", text)
	})
}
