package handlers

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"mindworx/profile-builder/internal/models"
	"mindworx/profile-builder/internal/repositories"
	"mindworx/profile-builder/internal/services"
)

// documentKinds lists the file parts of the upload form in processing order.
var documentKinds = []string{
	models.DocumentCV,
	models.DocumentTranscript,
	models.DocumentQualifications,
	models.DocumentPicture,
}

type UploadHandler struct {
	candidateRepo  repositories.CandidateRepository
	storageService services.StorageService
	extractor      services.ExtractorService
	generator      services.ProfileGenerator
	index          services.ProfileIndex
	sessions       *session.Store
}

func NewUploadHandler(
	candidateRepo repositories.CandidateRepository,
	storageService services.StorageService,
	extractor services.ExtractorService,
	generator services.ProfileGenerator,
	index services.ProfileIndex,
	sessions *session.Store,
) *UploadHandler {
	return &UploadHandler{
		candidateRepo:  candidateRepo,
		storageService: storageService,
		extractor:      extractor,
		generator:      generator,
		index:          index,
		sessions:       sessions,
	}
}

// HandleUpload handles POST /upload: store files, extract text, generate the
// profile, persist it and redirect to the profile page.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	var form models.UploadForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("⚠️  Failed to parse upload form: %v\n", err)
	}
	form.Trim()

	var files map[string][]*multipart.FileHeader
	if multipartForm, err := c.MultipartForm(); err == nil {
		files = multipartForm.File
	}

	filePaths := models.FilePaths{}
	extractedTexts := map[string]string{}

	for _, kind := range documentKinds {
		headers := files[kind]
		if len(headers) == 0 {
			continue
		}

		path, err := h.storageService.SaveFile(headers[0], kind)
		if err != nil {
			log.Printf("❌ Error processing upload: %v\n", err)
			return fmt.Errorf("failed to store %s: %w", kind, err)
		}
		if path == "" {
			log.Printf("⚠️  Skipped %s upload %q: file type not allowed\n", kind, headers[0].Filename)
			continue
		}

		setFilePath(&filePaths, kind, path)
		if kind != models.DocumentPicture {
			extractedTexts[kind] = h.extractor.Extract(path).Text
		}
	}

	answers := form.Questionnaire()

	log.Println("🤖 Generating profile...")
	generation := h.generator.Generate(c.UserContext(), extractedTexts, answers)
	if generation.Err != nil {
		log.Printf("⚠️  Profile generated by fallback: %v\n", generation.Err)
	}

	log.Println("💾 Saving candidate profile...")
	candidateID, err := h.candidateRepo.Save(c.UserContext(), form.PersonalDetails(), filePaths, answers, generation.Profile)
	if err != nil {
		log.Printf("❌ Error processing upload: %v\n", err)
		return err
	}
	log.Printf("✅ Profile %s created (%s)\n", candidateID, generation.Source)

	if h.index.Enabled() {
		if err := h.index.IndexProfile(c.UserContext(), candidateID.String(), generation.Profile); err != nil {
			log.Printf("⚠️  Failed to index profile %s: %v\n", candidateID, err)
		}
	}

	if sess, err := h.sessions.Get(c); err == nil {
		sess.Set(sessionCandidateKey, candidateID.String())
		if err := sess.Save(); err != nil {
			log.Printf("⚠️  Failed to save session: %v\n", err)
		}
	}

	return c.Redirect("/profile/"+candidateID.String(), fiber.StatusFound)
}

func setFilePath(paths *models.FilePaths, kind, path string) {
	switch kind {
	case models.DocumentCV:
		paths.CV = path
	case models.DocumentTranscript:
		paths.Transcript = path
	case models.DocumentQualifications:
		paths.Qualifications = path
	case models.DocumentPicture:
		paths.Picture = path
	}
}
