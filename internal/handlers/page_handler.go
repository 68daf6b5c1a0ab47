package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"mindworx/profile-builder/internal/services"
)

const sessionCandidateKey = "candidate_id"

type PageHandler struct {
	generator services.ProfileGenerator
	index     services.ProfileIndex
	sessions  *session.Store
}

func NewPageHandler(generator services.ProfileGenerator, index services.ProfileIndex, sessions *session.Store) *PageHandler {
	return &PageHandler{
		generator: generator,
		index:     index,
		sessions:  sessions,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	var lastCandidateID string
	if sess, err := h.sessions.Get(c); err == nil {
		if id, ok := sess.Get(sessionCandidateKey).(string); ok {
			lastCandidateID = id
		}
	} else {
		log.Printf("⚠️  Failed to load session: %v\n", err)
	}

	return c.Render("index", fiber.Map{
		"AIEnabled":       h.generator.AIEnabled(),
		"LastCandidateID": lastCandidateID,
		"Accept":          ".pdf,.doc,.docx,.png,.jpg,.jpeg",
	})
}

// HandleHealth handles GET /health
func (h *PageHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":        "healthy",
		"time":          time.Now(),
		"ai_enabled":    h.generator.AIEnabled(),
		"index_enabled": h.index.Enabled(),
	})
}
