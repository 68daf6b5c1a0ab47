package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mindworx/profile-builder/internal/models"
)

func newTestRepository(t *testing.T) CandidateRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "profiles.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Candidate{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return NewCandidateRepository(db)
}

func sampleProfile() models.GeneratedProfile {
	return models.GeneratedProfile{
		PersonalInfo: models.PersonalInfo{
			Name:     "Jane Doe",
			Title:    "Data Engineer",
			Email:    "jane@example.com",
			Phone:    "+27 11 555 0100",
			Location: "Johannesburg, South Africa",
			Summary:  "Builds pipelines.",
		},
		Skills: models.Skills{
			Technical: []string{"Go", "SQL"},
			Soft:      []string{"Mentoring"},
		},
		Experience: []models.Experience{
			{Position: "Data Engineer", Company: "Acme", Period: "2021 - Present", Description: "Pipelines"},
		},
		Education: []models.Education{
			{Degree: "BSc", Institution: "Wits", Year: "2020", Description: "Computer Science"},
		},
		Projects: []models.Project{
			{Name: "Ingest", Description: "Batch loader", Technologies: []string{"Go", "Postgres"}},
		},
	}
}

func TestCandidateRepository_SaveAndFindRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	details := models.PersonalDetails{
		FullName:            "Jane Doe",
		Email:               "jane@example.com",
		Phone:               "+27 11 555 0100",
		Location:            "Johannesburg, South Africa",
		CurrentRole:         "Data Engineer",
		ProfessionalSummary: "Builds pipelines.",
	}
	files := models.FilePaths{
		CV:      "uploads/cv_jane.pdf",
		Picture: "uploads/picture_jane.png",
	}
	answers := models.Questionnaire{
		models.AnswerFullName:        "Jane Doe",
		models.AnswerTechnicalSkills: "Go, SQL",
		"custom_key":                 "free text",
	}
	profile := sampleProfile()

	id, err := repo.Save(ctx, details, files, answers, profile)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, details, got.PersonalDetails())
	assert.Equal(t, files, got.FilePaths())
	assert.Equal(t, answers, got.Answers())
	assert.Equal(t, profile, got.Profile())
}

func TestCandidateRepository_SaveAssignsDistinctIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Save(ctx, models.PersonalDetails{}, models.FilePaths{}, nil, models.GeneratedProfile{})
	require.NoError(t, err)
	second, err := repo.Save(ctx, models.PersonalDetails{}, models.FilePaths{}, nil, models.GeneratedProfile{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCandidateRepository_SaveNormalizesEmptyProfile(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Save(ctx, models.PersonalDetails{}, models.FilePaths{}, nil, models.GeneratedProfile{})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	profile := got.Profile()
	assert.NotNil(t, profile.Skills.Technical)
	assert.NotNil(t, profile.Skills.Soft)
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Projects)
	assert.Equal(t, models.Questionnaire{}, got.Answers())
	assert.Equal(t, models.FilePaths{}, got.FilePaths())
}

func TestCandidateRepository_FindByIDUnknown(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrCandidateNotFound))
}

func TestCandidateRepository_FindAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, models.PersonalDetails{}, models.FilePaths{}, nil, sampleProfile())
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
