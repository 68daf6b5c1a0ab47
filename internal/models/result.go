package models

import "strings"

// UploadForm is the text part of the multipart upload. Every field is
// optional and defaults to the empty string.
type UploadForm struct {
	FullName            string `form:"full_name"`
	Email               string `form:"email"`
	Phone               string `form:"phone"`
	Location            string `form:"location"`
	CurrentRole         string `form:"current_role"`
	ProfessionalSummary string `form:"professional_summary"`
	TechnicalSkills     string `form:"technical_skills"`
	SoftSkills          string `form:"soft_skills"`
	YearsExperience     string `form:"years_experience"`
	Projects            string `form:"projects"`
}

// Trim strips surrounding whitespace from every field.
func (f *UploadForm) Trim() {
	for _, field := range []*string{
		&f.FullName, &f.Email, &f.Phone, &f.Location, &f.CurrentRole,
		&f.ProfessionalSummary, &f.TechnicalSkills, &f.SoftSkills,
		&f.YearsExperience, &f.Projects,
	} {
		*field = strings.TrimSpace(*field)
	}
}

func (f UploadForm) PersonalDetails() PersonalDetails {
	return PersonalDetails{
		FullName:            f.FullName,
		Email:               f.Email,
		Phone:               f.Phone,
		Location:            f.Location,
		CurrentRole:         f.CurrentRole,
		ProfessionalSummary: f.ProfessionalSummary,
	}
}

func (f UploadForm) Questionnaire() Questionnaire {
	return Questionnaire{
		AnswerFullName:            f.FullName,
		AnswerEmail:               f.Email,
		AnswerPhone:               f.Phone,
		AnswerLocation:            f.Location,
		AnswerCurrentRole:         f.CurrentRole,
		AnswerProfessionalSummary: f.ProfessionalSummary,
		AnswerTechnicalSkills:     f.TechnicalSkills,
		AnswerSoftSkills:          f.SoftSkills,
		AnswerYearsExperience:     f.YearsExperience,
		AnswerProjects:            f.Projects,
	}
}

type SimilarProfile struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Score       float32 `json:"score"`
}

type SimilarResponse struct {
	CandidateID string           `json:"candidate_id"`
	Similar     []SimilarProfile `json:"similar"`
}
