package services

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

type ocrService struct {
	language string
}

// NewOCRService returns a TextExtractor that runs tesseract over raster images.
func NewOCRService() TextExtractor {
	return &ocrService{language: "eng"}
}

func (o *ocrService) ExtractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(o.language); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to recognise text: %w", err)
	}
	return text, nil
}
