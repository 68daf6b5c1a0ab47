package services

import (
	"strings"

	"mindworx/profile-builder/internal/models"
)

const (
	defaultName    = "Professional Candidate"
	defaultTitle   = "Professional"
	defaultSummary = "Experienced professional."
)

// BuildFallbackProfile copies questionnaire answers into the profile shape
// with one placeholder experience, education and project entry. It is pure.
func BuildFallbackProfile(answers models.Questionnaire) models.GeneratedProfile {
	title := answerOr(answers, models.AnswerCurrentRole, defaultTitle)

	return models.GeneratedProfile{
		PersonalInfo: models.PersonalInfo{
			Name:     answerOr(answers, models.AnswerFullName, defaultName),
			Title:    title,
			Email:    answers[models.AnswerEmail],
			Phone:    answers[models.AnswerPhone],
			Location: answers[models.AnswerLocation],
			Summary:  answerOr(answers, models.AnswerProfessionalSummary, defaultSummary),
		},
		Skills: models.Skills{
			Technical: SplitSkills(answers[models.AnswerTechnicalSkills]),
			Soft:      SplitSkills(answers[models.AnswerSoftSkills]),
		},
		Experience: []models.Experience{
			{
				Position:    title,
				Company:     "Previous Company",
				Period:      "2020 - Present",
				Description: "Responsible for various professional duties.",
			},
		},
		Education: []models.Education{
			{
				Degree:      "Bachelor's Degree",
				Institution: "University",
				Year:        "2020",
				Description: "Relevant educational background",
			},
		},
		Projects: []models.Project{
			{
				Name:         "Professional Project",
				Description:  "Significant project demonstrating skills and experience",
				Technologies: []string{"Technology 1", "Technology 2"},
			},
		},
	}
}

// SplitSkills splits a comma separated list into trimmed, non-empty tokens.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func answerOr(answers models.Questionnaire, key, fallback string) string {
	if v := strings.TrimSpace(answers[key]); v != "" {
		return v
	}
	return fallback
}
