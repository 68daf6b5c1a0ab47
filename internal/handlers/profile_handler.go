package handlers

import (
	"errors"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindworx/profile-builder/internal/models"
	"mindworx/profile-builder/internal/repositories"
	"mindworx/profile-builder/internal/services"
	"mindworx/profile-builder/internal/views"
)

const similarLimit = 5

type ProfileHandler struct {
	candidateRepo repositories.CandidateRepository
	index         services.ProfileIndex
}

func NewProfileHandler(candidateRepo repositories.CandidateRepository, index services.ProfileIndex) *ProfileHandler {
	return &ProfileHandler{
		candidateRepo: candidateRepo,
		index:         index,
	}
}

// HandleGetProfile handles GET /profile/:id
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	candidate, ok := h.lookup(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Profile not found")
	}

	return c.Render("profile", fiber.Map{
		"Profile":  candidate.Profile(),
		"PhotoURL": photoURL(candidate.PictureFilePath),
		"Now":      time.Now(),
	})
}

// HandleSimilar handles GET /profile/:id/similar
func (h *ProfileHandler) HandleSimilar(c *fiber.Ctx) error {
	if !h.index.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Profile index is not configured",
		})
	}

	candidate, ok := h.lookup(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	similar, err := h.index.FindSimilar(c.UserContext(), candidate.ID.String(), candidate.Profile(), similarLimit)
	if err != nil {
		log.Printf("❌ Similar profile search failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search similar profiles",
		})
	}

	return c.JSON(models.SimilarResponse{
		CandidateID: candidate.ID.String(),
		Similar:     similar,
	})
}

// lookup resolves the :id param. A malformed id, a missing row and a failed
// query all report not found; only the last one is logged.
func (h *ProfileHandler) lookup(c *fiber.Ctx) (*models.Candidate, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, false
	}

	candidate, err := h.candidateRepo.FindByID(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, repositories.ErrCandidateNotFound) {
			log.Printf("❌ Error retrieving candidate %s: %v\n", id, err)
		}
		return nil, false
	}

	return candidate, true
}

func photoURL(picturePath string) string {
	if picturePath == "" {
		return views.DefaultAvatar
	}
	return "/uploads/" + filepath.Base(picturePath)
}
