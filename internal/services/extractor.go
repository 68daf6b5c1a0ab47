package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// TextExtractor is a single extraction strategy.
type TextExtractor interface {
	ExtractText(filePath string) (string, error)
}

// Extraction is the outcome of a best-effort extraction. Text is empty
// whenever Err is set.
type Extraction struct {
	Text string
	Err  error
}

func (e Extraction) OK() bool {
	return e.Err == nil
}

type ExtractorService interface {
	// Extract never fails the caller; failures degrade to empty text.
	Extract(filePath string) Extraction
}

type extractorService struct {
	strategies map[string]TextExtractor
}

// NewExtractorService wires the PDF, Word and OCR strategies by extension.
func NewExtractorService(pdfParser, docParser, ocr TextExtractor) ExtractorService {
	return &extractorService{
		strategies: map[string]TextExtractor{
			".pdf":  pdfParser,
			".doc":  docParser,
			".docx": docParser,
			".png":  ocr,
			".jpg":  ocr,
			".jpeg": ocr,
		},
	}
}

func (e *extractorService) Extract(filePath string) Extraction {
	if filePath == "" {
		return Extraction{}
	}
	if _, err := os.Stat(filePath); err != nil {
		return Extraction{Err: fmt.Errorf("file not available: %w", err)}
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	strategy, ok := e.strategies[ext]
	if !ok || strategy == nil {
		err := fmt.Errorf("unsupported file type: %s", ext)
		log.Printf("⚠️  Extraction skipped for %s: %v\n", filepath.Base(filePath), err)
		return Extraction{Err: err}
	}

	text, err := strategy.ExtractText(filePath)
	if err != nil {
		log.Printf("⚠️  Extraction failed for %s: %v\n", filepath.Base(filePath), err)
		return Extraction{Err: err}
	}

	log.Printf("📄 Extracted %d characters from %s\n", len(text), filepath.Base(filePath))
	return Extraction{Text: text}
}
