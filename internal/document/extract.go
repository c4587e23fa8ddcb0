// Package document turns resume files into plain text. Plain text and
// markdown pass through, PDF and DOCX are parsed.
package document

import (
	"bytes"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dslipak/pdf"
	"github.com/nguyenthenguyen/docx"

	apperrors "resumetric/internal/errors"
)

// Extraction output larger than this is truncated to keep the scoring
// pipeline bounded.
const maxTextLength = 100_000

var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".pdf":  true,
	".docx": true,
}

var (
	paragraphEndPattern = regexp.MustCompile(`</w:p>`)
	xmlTagPattern       = regexp.MustCompile(`<[^>]+>`)
)

// IsSupported reports whether the filename carries an extension this package
// can extract.
func IsSupported(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Extract reads the file and returns its plain text content.
func Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.NewIOError(apperrors.ErrCodeFileNotFound, "file does not exist", err).
				WithContext("path", path)
		}
		return "", apperrors.NewIOError(apperrors.ErrCodeFileNotReadable, "failed to read file", err).
			WithContext("path", path)
	}
	return ExtractBytes(data, filepath.Base(path))
}

// ExtractBytes returns the plain text content of an in-memory document. The
// filename is only consulted for its extension.
func ExtractBytes(data []byte, filename string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		text = string(data)
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		return "", apperrors.NewDocumentError(apperrors.ErrCodeUnsupportedFile, "unsupported file type", nil).
			WithContext("filename", filename)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if len(text) > maxTextLength {
		cut := maxTextLength
		// Back off to a rune boundary so truncation never splits a character
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewDocumentError(apperrors.ErrCodeExtractionFailed, "failed to parse PDF", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", apperrors.NewDocumentError(apperrors.ErrCodeExtractionFailed, "failed to extract PDF text", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", apperrors.NewDocumentError(apperrors.ErrCodeExtractionFailed, "failed to read PDF text", err)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewDocumentError(apperrors.ErrCodeExtractionFailed, "failed to parse DOCX", err)
	}
	defer doc.Close()

	return flattenDocxXML(doc.Editable().GetContent()), nil
}

// flattenDocxXML converts document.xml markup to plain text: paragraph ends
// become newlines, remaining tags are dropped, entities are unescaped.
func flattenDocxXML(content string) string {
	content = paragraphEndPattern.ReplaceAllString(content, "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
