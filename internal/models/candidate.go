package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Questionnaire holds the free-form answers captured from the upload form.
type Questionnaire map[string]string

// Questionnaire keys populated by the upload form.
const (
	AnswerFullName            = "full_name"
	AnswerEmail               = "email"
	AnswerPhone               = "phone"
	AnswerLocation            = "location"
	AnswerCurrentRole         = "current_role"
	AnswerProfessionalSummary = "professional_summary"
	AnswerTechnicalSkills     = "technical_skills"
	AnswerSoftSkills          = "soft_skills"
	AnswerYearsExperience     = "years_experience"
	AnswerProjects            = "projects_description"
)

// Document kinds, also used as the stored filename prefix.
const (
	DocumentCV             = "cv"
	DocumentTranscript     = "transcript"
	DocumentQualifications = "qualifications"
	DocumentPicture        = "picture"
)

type PersonalDetails struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	CurrentRole         string `json:"current_role"`
	ProfessionalSummary string `json:"professional_summary"`
}

// FilePaths references stored uploads. An empty string means no file.
type FilePaths struct {
	CV             string `json:"cv"`
	Transcript     string `json:"transcript"`
	Qualifications string `json:"qualifications"`
	Picture        string `json:"picture"`
}

type Candidate struct {
	ID                     uuid.UUID                            `gorm:"column:candidate_id;type:uuid;primaryKey" json:"candidate_id"`
	FullName               string                               `gorm:"type:text" json:"full_name"`
	Email                  string                               `gorm:"type:text" json:"email"`
	Phone                  string                               `gorm:"type:text" json:"phone"`
	Location               string                               `gorm:"type:text" json:"location"`
	CurrentRole            string                               `gorm:"column:current_role;type:text" json:"current_role"`
	ProfessionalSummary    string                               `gorm:"type:text" json:"professional_summary"`
	CVFilePath             string                               `gorm:"column:cv_file_path;type:text" json:"cv_file_path"`
	TranscriptFilePath     string                               `gorm:"type:text" json:"transcript_file_path"`
	QualificationsFilePath string                               `gorm:"type:text" json:"qualifications_file_path"`
	PictureFilePath        string                               `gorm:"type:text" json:"picture_file_path"`
	QuestionnaireAnswers   datatypes.JSONType[Questionnaire]    `json:"questionnaire_answers"`
	GeneratedProfile       datatypes.JSONType[GeneratedProfile] `json:"generated_profile"`
	CreatedAt              time.Time                            `json:"created_at"`
}

func (Candidate) TableName() string {
	return "candidate_profiles"
}

func (c *Candidate) PersonalDetails() PersonalDetails {
	return PersonalDetails{
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		Location:            c.Location,
		CurrentRole:         c.CurrentRole,
		ProfessionalSummary: c.ProfessionalSummary,
	}
}

func (c *Candidate) FilePaths() FilePaths {
	return FilePaths{
		CV:             c.CVFilePath,
		Transcript:     c.TranscriptFilePath,
		Qualifications: c.QualificationsFilePath,
		Picture:        c.PictureFilePath,
	}
}

func (c *Candidate) Answers() Questionnaire {
	answers := c.QuestionnaireAnswers.Data()
	if answers == nil {
		return Questionnaire{}
	}
	return answers
}

func (c *Candidate) Profile() GeneratedProfile {
	return c.GeneratedProfile.Data()
}
