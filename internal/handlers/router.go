package handlers

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"mindworx/profile-builder/internal/repositories"
	"mindworx/profile-builder/internal/services"
	"mindworx/profile-builder/internal/views"
)

const genericErrorMessage = "We could not process your request. Please try again."

type AppConfig struct {
	BodyLimit      int
	SecretKey      string
	SessionStorage fiber.Storage

	CandidateRepo  repositories.CandidateRepository
	StorageService services.StorageService
	Extractor      services.ExtractorService
	Generator      services.ProfileGenerator
	Index          services.ProfileIndex
}

// NewApp builds the fiber application with its middleware and routes.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Profile Builder",
		Views:        views.NewEngine(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	sessions := session.New(session.Config{
		Storage:        cfg.SessionStorage,
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(cfg.SecretKey),
	}))

	pageHandler := NewPageHandler(cfg.Generator, cfg.Index, sessions)
	uploadHandler := NewUploadHandler(
		cfg.CandidateRepo,
		cfg.StorageService,
		cfg.Extractor,
		cfg.Generator,
		cfg.Index,
		sessions,
	)
	profileHandler := NewProfileHandler(cfg.CandidateRepo, cfg.Index)
	fileHandler := NewFileHandler(cfg.StorageService)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root: views.Static(),
	}))

	app.Get("/", pageHandler.HandleIndex)
	app.Get("/health", pageHandler.HandleHealth)
	app.Post("/upload", uploadHandler.HandleUpload)
	app.Get("/profile/:id", profileHandler.HandleGetProfile)
	app.Get("/profile/:id/similar", profileHandler.HandleSimilar)
	app.Get("/uploads/:filename", fileHandler.HandleUploadedFile)

	return app
}

// CookieKey derives the 32-byte encryptcookie key from the configured secret.
func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := genericErrorMessage

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		log.Printf("❌ Request %s %s failed: %v\n", c.Method(), c.Path(), err)
	}

	if renderErr := c.Status(code).Render("error", fiber.Map{"Error": message}); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
