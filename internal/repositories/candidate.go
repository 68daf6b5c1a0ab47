package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mindworx/profile-builder/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Save(ctx context.Context, details models.PersonalDetails, files models.FilePaths, answers models.Questionnaire, profile models.GeneratedProfile) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	FindAll(ctx context.Context) ([]models.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Save writes a new candidate row and returns its freshly generated id.
// The insert runs on a dedicated connection inside a transaction.
func (r *candidateRepository) Save(
	ctx context.Context,
	details models.PersonalDetails,
	files models.FilePaths,
	answers models.Questionnaire,
	profile models.GeneratedProfile,
) (uuid.UUID, error) {
	if answers == nil {
		answers = models.Questionnaire{}
	}
	profile.Normalize()

	candidate := &models.Candidate{
		ID:                     uuid.New(),
		FullName:               details.FullName,
		Email:                  details.Email,
		Phone:                  details.Phone,
		Location:               details.Location,
		CurrentRole:            details.CurrentRole,
		ProfessionalSummary:    details.ProfessionalSummary,
		CVFilePath:             files.CV,
		TranscriptFilePath:     files.Transcript,
		QualificationsFilePath: files.Qualifications,
		PictureFilePath:        files.Picture,
		QuestionnaireAnswers:   datatypes.NewJSONType(answers),
		GeneratedProfile:       datatypes.NewJSONType(profile),
		CreatedAt:              time.Now(),
	}

	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			return tx.Create(candidate).Error
		})
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save candidate: %w", err)
	}

	return candidate.ID, nil
}

// FindByID returns ErrCandidateNotFound when no row matches.
func (r *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Where("candidate_id = ?", id).First(&candidate).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Order("created_at ASC").Find(&candidates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}
