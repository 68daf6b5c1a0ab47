package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfParserService struct{}

// NewPDFParserService returns a TextExtractor for paginated PDF documents.
func NewPDFParserService() TextExtractor {
	return &pdfParserService{}
}

// ExtractText concatenates the plain text of every page. A page that fails
// to extract contributes nothing.
func (p *pdfParserService) ExtractText(filePath string) (text string, err error) {
	// the pdf reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}
