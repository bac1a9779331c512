// Package extract pulls plain text out of uploaded contract documents.
// Supported formats are plain text, PDF and DOCX; everything downstream
// operates on the extracted text only.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned when the requested format has no extractor.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractionError wraps a format-specific parse failure.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Text extracts plain text from data in the given format. Format values are
// "txt", "pdf" and "docx"; "text" is accepted as an alias for "txt".
func Text(data []byte, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt", "text":
		return string(data), nil
	case "pdf":
		return pdfText(data)
	case "docx":
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatForPath maps a file name to the extraction format for its extension.
// Returns "" when the extension is not recognized.
func FormatForPath(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return "txt"
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	default:
		return ""
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Err: err}
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Err: err}
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &ExtractionError{Format: "pdf", Err: err}
	}
	return buf.String(), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Err: err}
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Format: "docx", Err: err}
		}
		defer rc.Close()
		text, err := wordXMLText(rc)
		if err != nil {
			return "", &ExtractionError{Format: "docx", Err: err}
		}
		return text, nil
	}
	return "", &ExtractionError{Format: "docx", Err: errors.New("word/document.xml not found")}
}

// wordXMLText walks the WordprocessingML token stream collecting the text
// runs. Paragraph ends become blank lines so paragraph-based analysis keeps
// working on the extracted text.
func wordXMLText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inRun := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRun = true
			case "tab":
				b.WriteByte(' ')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				b.WriteString("\n\n")
			}
		case xml.CharData:
			if inRun {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
