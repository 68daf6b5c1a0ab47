package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"mindworx/profile-builder/internal/services"
)

type FileHandler struct {
	storageService services.StorageService
}

func NewFileHandler(storageService services.StorageService) *FileHandler {
	return &FileHandler{storageService: storageService}
}

// HandleUploadedFile handles GET /uploads/:filename
func (h *FileHandler) HandleUploadedFile(c *fiber.Ctx) error {
	path := h.storageService.GetFilePath(c.Params("filename"))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fiber.ErrNotFound
	}

	return c.SendFile(path)
}
