package document

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	apperrors "resumetric/internal/errors"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.txt", true},
		{"resume.md", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", false},
		{"resume.png", false},
		{"resume", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.filename); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestExtractBytesPlainText(t *testing.T) {
	got, err := ExtractBytes([]byte("  Jane Doe\nPython developer\n"), "resume.txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if got != "Jane Doe\nPython developer" {
		t.Errorf("text = %q, want trimmed content", got)
	}
}

func TestExtractBytesTruncatesOnRuneBoundary(t *testing.T) {
	// The byte limit lands mid-rune here; truncation must back off.
	text := strings.Repeat("a", maxTextLength-1) + strings.Repeat("é", 10)
	got, err := ExtractBytes([]byte(text), "resume.txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) > maxTextLength {
		t.Errorf("len = %d, want at most %d", len(got), maxTextLength)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated text is not valid UTF-8")
	}
}

func TestExtractBytesUnsupported(t *testing.T) {
	_, err := ExtractBytes([]byte("x"), "resume.odt")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrCodeUnsupportedFile {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.ErrCodeUnsupportedFile)
	}
}

func TestExtractBytesCorruptPDF(t *testing.T) {
	_, err := ExtractBytes([]byte("not a pdf"), "resume.pdf")
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Type != apperrors.ErrorTypeDocument {
		t.Errorf("type = %q, want document error", appErr.Type)
	}
}

func TestExtractBytesTruncates(t *testing.T) {
	long := strings.Repeat("resume text ", 20_000)
	got, err := ExtractBytes([]byte(long), "resume.txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(got) != maxTextLength {
		t.Errorf("len = %d, want truncation to %d", len(got), maxTextLength)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "absent.txt"))
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrCodeFileNotFound {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.ErrCodeFileNotFound)
	}
}

func TestFlattenDocxXML(t *testing.T) {
	xml := `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Python &amp; Go developer</w:t></w:r></w:p></w:body></w:document>`

	got := flattenDocxXML(xml)
	want := "Jane Doe\nPython & Go developer\n"
	if got != want {
		t.Errorf("flattenDocxXML = %q, want %q", got, want)
	}
}
