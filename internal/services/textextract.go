package services

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	mimeTextPlain = "text/plain"
	mimePDF       = "application/pdf"
	mimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
	blankLineRunRe = regexp.MustCompile(`\n\s*\n`)
)

type TextExtractorService interface {
	ExtractText(mimeType string, data []byte) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractText decodes the file bytes as plain text regardless of the
// declared MIME type. This is not a real PDF/DOCX parser: binary inputs
// typically yield garbled text, which the caller accepts as-is.
func (t *textExtractorService) ExtractText(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case mimeTextPlain, mimePDF, mimeDOCX:
		return NormalizeText(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s (upload PDF, DOCX, or TXT)", ErrUnsupportedFileType, mimeType)
	}
}

// NormalizeText collapses runs of spaces and tabs to a single space and
// runs of blank lines to a single newline.
func NormalizeText(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankLineRunRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
