package docparse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"github.com/richardlehane/mscfb"
)

// Supported upload MIME types.
const (
	MimePDF        = "application/pdf"
	MimeWordLegacy = "application/msword"
	MimeWordModern = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlainText  = "text/plain"
)

// Sentinel errors for document ingestion.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrNoQuestionsFound  = errors.New("no questions found in document")
)

// SupportedFormat reports whether uploads of the given MIME type are accepted.
func SupportedFormat(mimeType string) bool {
	switch mimeType {
	case MimePDF, MimeWordLegacy, MimeWordModern, MimePlainText:
		return true
	}
	return false
}

// ExtractText converts raw document bytes into plain text. The MIME type
// selects the extraction path; the question parser only ever sees the
// resulting text. Extraction failures wrap ErrExtractionFailed.
func ExtractText(data []byte, mimeType string) (string, error) {
	var (
		text string
		err  error
	)

	switch mimeType {
	case MimePDF:
		text, err = extractPDF(data)
	case MimeWordModern:
		text, err = extractDocx(data)
	case MimeWordLegacy:
		text, err = extractDoc(data)
	case MimePlainText:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("copy pdf text: %w", err)
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// extractDoc reads the WordDocument stream out of a legacy .doc compound file
// and salvages its readable text. A full FIB/piece-table walk is deliberately
// not attempted; upload templates are simple enough that a printable-run scan
// recovers the question text reliably.
func extractDoc(data []byte) (string, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open compound file: %w", err)
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name != "WordDocument" {
			continue
		}
		raw := make([]byte, entry.Size)
		n, rerr := io.ReadFull(entry, raw)
		if rerr != nil && rerr != io.ErrUnexpectedEOF && rerr != io.EOF {
			return "", fmt.Errorf("read WordDocument stream: %w", rerr)
		}
		return scavengeDocText(raw[:n]), nil
	}

	return "", errors.New("no WordDocument stream in compound file")
}

// scavengeDocText keeps printable runs from a raw WordDocument stream and
// maps Word's paragraph (0x0D), cell (0x07) and line-break (0x0B) control
// characters to newlines. Zero high bytes of UTF-16LE text are skipped.
func scavengeDocText(raw []byte) string {
	var sb strings.Builder
	inRun := false
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b == 0x0D || b == 0x07 || b == 0x0B || b == '\n':
			sb.WriteByte('\n')
			inRun = false
			if i+1 < len(raw) && raw[i+1] == 0x00 {
				i++
			}
		case b == '\t' || (b >= 0x20 && b < 0x7F):
			if i+1 < len(raw) && raw[i+1] == 0x00 {
				i++
			}
			sb.WriteByte(b)
			inRun = true
		default:
			if inRun {
				sb.WriteByte(' ')
			}
			inRun = false
		}
	}
	return sb.String()
}
