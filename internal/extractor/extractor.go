package extractor

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// ErrUnsupportedFormat marks payloads this extractor cannot turn into plain
// text. The analysis router excludes such items from the batch without
// aborting it.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// TextExtractor converts a fetched payload into plain text suitable for an
// analysis prompt. Implementations for binary document formats (PDF, word
// processors) are pluggable collaborators; the default handles text and HTML.
type TextExtractor interface {
	Extract(body []byte, ext string) (string, error)
}

// Formats that require a dedicated document parser. Without one plugged in,
// these are excluded from analysis rather than fed to a prompt as raw bytes.
var binaryFormats = map[string]struct{}{
	"pdf": {}, "doc": {}, "docx": {}, "pptx": {}, "xls": {}, "xlsx": {},
	"zip": {}, "tar.gz": {}, "tgz": {}, "tar": {}, "gz": {}, "7z": {}, "rar": {},
	"exe": {}, "dll": {}, "bin": {}, "iso": {}, "img": {}, "apk": {}, "msi": {},
	"dmg": {}, "deb": {}, "rpm": {}, "db": {},
}

// DefaultExtractor passes textual payloads through unchanged and strips
// markup from HTML ones (archive snapshots frequently wrap content in HTML).
type DefaultExtractor struct {
	logger zerolog.Logger
}

// NewDefaultExtractor creates the default text extractor.
func NewDefaultExtractor(logger zerolog.Logger) *DefaultExtractor {
	return &DefaultExtractor{
		logger: logger.With().Str("component", "TextExtractor").Logger(),
	}
}

// Extract implements TextExtractor.
func (e *DefaultExtractor) Extract(body []byte, ext string) (string, error) {
	if _, binary := binaryFormats[ext]; binary {
		return "", ErrUnsupportedFormat
	}

	if isHTML(body) {
		return extractHTMLText(body)
	}
	return string(body), nil
}

func isHTML(body []byte) bool {
	contentType := http.DetectContentType(body)
	return strings.HasPrefix(contentType, "text/html")
}

func extractHTMLText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text()), nil
}
