package services

import (
	"fmt"

	"code.sajari.com/docconv"
)

type documentParserService struct{}

// NewDocumentParserService returns a TextExtractor for Word documents.
func NewDocumentParserService() TextExtractor {
	return &documentParserService{}
}

func (d *documentParserService) ExtractText(filePath string) (string, error) {
	res, err := docconv.ConvertPath(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to convert document: %w", err)
	}
	return res.Body, nil
}
