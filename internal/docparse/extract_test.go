package docparse

import (
	"errors"
	"testing"
)

func TestSupportedFormat(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{MimePDF, true},
		{MimeWordLegacy, true},
		{MimeWordModern, true},
		{MimePlainText, true},
		{"image/png", false},
		{"application/json", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := SupportedFormat(tt.mime); got != tt.want {
			t.Errorf("SupportedFormat(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}

func TestExtractTextPlainPassthrough(t *testing.T) {
	in := "Q1. What is 2+2?\nA) 3\nB) 4\n"
	out, err := ExtractText([]byte(in), MimePlainText)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if out != in {
		t.Errorf("plain text changed: %q", out)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText([]byte("data"), "image/png")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf at all"), MimePDF)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("error = %v, want ErrExtractionFailed", err)
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText([]byte("not a zip archive"), MimeWordModern)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("error = %v, want ErrExtractionFailed", err)
	}
}

func TestScavengeDocText(t *testing.T) {
	// UTF-16LE "Q1. Hi" followed by a paragraph mark.
	raw := []byte{
		'Q', 0x00, '1', 0x00, '.', 0x00, ' ', 0x00, 'H', 0x00, 'i', 0x00,
		0x0D, 0x00,
		'A', 0x00, ')', 0x00, ' ', 0x00, 'x', 0x00,
	}
	got := scavengeDocText(raw)
	want := "Q1. Hi\nA) x"
	if got != want {
		t.Errorf("scavenge = %q, want %q", got, want)
	}
}

func TestScavengeDocTextSkipsBinaryRuns(t *testing.T) {
	raw := append([]byte{0x01, 0x02, 0xFF}, []byte("Question 1. Text")...)
	got := scavengeDocText(raw)
	if got != "Question 1. Text" {
		t.Errorf("scavenge = %q", got)
	}
}
