package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"doc":  true,
	"docx": true,
}

type StorageService interface {
	// SaveFile stores an uploaded form file. It returns an empty path when
	// the file is absent or its extension is not allowed.
	SaveFile(file *multipart.FileHeader, fileType string) (string, error)
	Store(src io.Reader, filename, fileType string) (string, error)
	GetFilePath(filename string) string
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, fileType string) (string, error) {
	if file == nil || !IsAllowedFile(file.Filename) {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.Store(src, file.Filename, fileType)
}

func (s *storageService) Store(src io.Reader, filename, fileType string) (string, error) {
	if !IsAllowedFile(filename) {
		return "", nil
	}

	if err := s.EnsureUploadDir(); err != nil {
		return "", err
	}

	storedName := fmt.Sprintf("%s_%s", fileType, SecureFilename(filename))
	filePath := filepath.Join(s.uploadPath, storedName)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filepath.Base(filename))
}

// IsAllowedFile reports whether filename has one of the accepted extensions.
func IsAllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces a client supplied name to a flat ASCII filename
// made of letters, digits, '_', '.' and '-'. The extension of the original
// name is kept even when nothing of the base name survives.
func SecureFilename(filename string) string {
	name := toASCII(filename)
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if name == "" {
		name = "file"
	}

	ext := unsafeFilenameChars.ReplaceAllString(toASCII(filepath.Ext(filename)), "")
	if ext != "" && ext != "." && !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}

func toASCII(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
