package services

import (
	"encoding/json"
	"fmt"

	"mindworx/profile-builder/internal/models"
)

// Per-document excerpt limits, in characters.
const (
	cvExcerptLimit             = 3000
	transcriptExcerptLimit     = 2000
	qualificationsExcerptLimit = 2000
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfilePrompt creates the single profile generation prompt.
func (pb *PromptBuilder) BuildProfilePrompt(texts map[string]string, answers models.Questionnaire) string {
	if answers == nil {
		answers = models.Questionnaire{}
	}
	answersJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		answersJSON = []byte("{}")
	}

	return fmt.Sprintf(`Create a professional profile in JSON format using this information:

EXTRACTED DOCUMENT CONTENT:
CV: %s
Transcripts: %s
Qualifications: %s

QUESTIONNAIRE RESPONSES:
%s

Return ONLY valid JSON in this exact structure:
{
  "personal_info": {
    "name": "Full Name",
    "title": "Job Title",
    "email": "email@example.com",
    "phone": "Phone Number",
    "location": "City, Country",
    "summary": "Professional summary here"
  },
  "skills": {
    "technical": ["Skill1", "Skill2", "Skill3"],
    "soft": ["Skill1", "Skill2", "Skill3"]
  },
  "experience": [
    {
      "position": "Job Title",
      "company": "Company Name",
      "period": "2020 - Present",
      "description": "Job description"
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "institution": "Institution Name",
      "year": "2020",
      "description": "Additional details"
    }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "Project description",
      "technologies": ["Tech1", "Tech2", "Tech3"]
    }
  ]
}`,
		truncateRunes(texts[models.DocumentCV], cvExcerptLimit),
		truncateRunes(texts[models.DocumentTranscript], transcriptExcerptLimit),
		truncateRunes(texts[models.DocumentQualifications], qualificationsExcerptLimit),
		answersJSON,
	)
}

// BuildEmbeddingText flattens a profile into the text indexed for similarity search.
func (pb *PromptBuilder) BuildEmbeddingText(profile models.GeneratedProfile) string {
	text := fmt.Sprintf("%s\n%s\n%s\nTechnical skills: %v\nSoft skills: %v\n",
		profile.PersonalInfo.Title,
		profile.PersonalInfo.Location,
		profile.PersonalInfo.Summary,
		profile.Skills.Technical,
		profile.Skills.Soft,
	)
	for _, exp := range profile.Experience {
		text += fmt.Sprintf("%s at %s (%s): %s\n", exp.Position, exp.Company, exp.Period, exp.Description)
	}
	for _, edu := range profile.Education {
		text += fmt.Sprintf("%s, %s %s\n", edu.Degree, edu.Institution, edu.Year)
	}
	for _, project := range profile.Projects {
		text += fmt.Sprintf("%s: %s %v\n", project.Name, project.Description, project.Technologies)
	}
	return text
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
