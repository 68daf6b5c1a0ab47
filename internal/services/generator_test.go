package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindworx/profile-builder/internal/models"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

const validReply = `Sure! Here is the profile:
` + "```json" + `
{
  "personal_info": {"name": "Jane Doe", "title": "Data Engineer", "email": "jane@example.com",
    "phone": "", "location": "Cape Town", "summary": "Builds pipelines."},
  "skills": {"technical": ["Go", "SQL"], "soft": ["Mentoring"]},
  "experience": [{"position": "Engineer", "company": "Acme", "period": "2021 - Present", "description": "ETL"}],
  "education": [{"degree": "BSc", "institution": "UCT", "year": "2019", "description": ""}],
  "projects": [{"name": "Loader", "description": "Bulk loader", "technologies": ["Go"]}]
}
` + "```"

func assertWellFormed(t *testing.T, profile models.GeneratedProfile) {
	t.Helper()
	assert.NotNil(t, profile.Skills.Technical)
	assert.NotNil(t, profile.Skills.Soft)
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Projects)
	for _, p := range profile.Projects {
		assert.NotNil(t, p.Technologies)
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "SQL", "Go"}, SplitSkills("Python, SQL,  Go"))
	assert.Equal(t, []string{"SQL"}, SplitSkills("SQL"))
	assert.Equal(t, []string{"a", "b"}, SplitSkills(" a ,, ,b,"))
	assert.Equal(t, []string{}, SplitSkills(""))
}

func TestBuildFallbackProfile_CopiesAnswers(t *testing.T) {
	answers := models.Questionnaire{
		models.AnswerFullName:            "Jane Doe",
		models.AnswerEmail:               "jane@example.com",
		models.AnswerPhone:               "555",
		models.AnswerLocation:            "Durban",
		models.AnswerCurrentRole:         "Analyst",
		models.AnswerProfessionalSummary: "Numbers person.",
		models.AnswerTechnicalSkills:     "Python, SQL,  Go",
		models.AnswerSoftSkills:          "Teamwork",
	}

	profile := BuildFallbackProfile(answers)

	assert.Equal(t, models.PersonalInfo{
		Name:     "Jane Doe",
		Title:    "Analyst",
		Email:    "jane@example.com",
		Phone:    "555",
		Location: "Durban",
		Summary:  "Numbers person.",
	}, profile.PersonalInfo)
	assert.Equal(t, []string{"Python", "SQL", "Go"}, profile.Skills.Technical)
	assert.Equal(t, []string{"Teamwork"}, profile.Skills.Soft)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Analyst", profile.Experience[0].Position)
	assert.Len(t, profile.Education, 1)
	assert.Len(t, profile.Projects, 1)
}

func TestBuildFallbackProfile_DefaultsForBlankFields(t *testing.T) {
	profile := BuildFallbackProfile(models.Questionnaire{models.AnswerFullName: "  "})

	assert.Equal(t, "Professional Candidate", profile.PersonalInfo.Name)
	assert.Equal(t, "Professional", profile.PersonalInfo.Title)
	assert.Equal(t, "Experienced professional.", profile.PersonalInfo.Summary)
	assert.Equal(t, "Professional", profile.Experience[0].Position)
	assert.Empty(t, profile.Skills.Technical)
	assertWellFormed(t, profile)
}

func TestBuildFallbackProfile_Pure(t *testing.T) {
	answers := models.Questionnaire{models.AnswerFullName: "Jane Doe", models.AnswerTechnicalSkills: "SQL"}

	assert.Equal(t, BuildFallbackProfile(answers), BuildFallbackProfile(answers))
}

func TestProfileGenerator_DisabledUsesFallback(t *testing.T) {
	generator := NewProfileGenerator(nil)
	answers := models.Questionnaire{models.AnswerFullName: "Jane Doe", models.AnswerTechnicalSkills: "SQL"}

	result := generator.Generate(context.Background(), map[string]string{}, answers)

	assert.False(t, generator.AIEnabled())
	assert.Equal(t, SourceFallback, result.Source)
	assert.NoError(t, result.Err)
	assert.Equal(t, "Jane Doe", result.Profile.PersonalInfo.Name)
	assert.Equal(t, []string{"SQL"}, result.Profile.Skills.Technical)
	assert.Len(t, result.Profile.Experience, 1)
	assert.Len(t, result.Profile.Education, 1)
	assert.Len(t, result.Profile.Projects, 1)
}

func TestProfileGenerator_ModelErrorFallsBack(t *testing.T) {
	model := &fakeModel{err: errors.New("dial tcp: connection refused")}
	generator := NewProfileGenerator(model)
	answers := models.Questionnaire{models.AnswerFullName: "Jane Doe"}

	result := generator.Generate(context.Background(), nil, answers)

	assert.True(t, generator.AIEnabled())
	assert.Equal(t, SourceFallback, result.Source)
	assert.Error(t, result.Err)
	assert.Equal(t, BuildFallbackProfile(answers).PersonalInfo, result.Profile.PersonalInfo)
	assertWellFormed(t, result.Profile)
}

func TestProfileGenerator_MalformedRepliesFallBack(t *testing.T) {
	replies := map[string]string{
		"no braces":      "I cannot help with that.",
		"reversed":       "} nope {",
		"invalid json":   "{ personal_info: oops }",
		"wrong shape":    `{"personal_info": {}, "skills": {"technical": "Go", "soft": []}, "experience": [], "education": [], "projects": []}`,
		"missing keys":   `{"personal_info": {"name": "X"}}`,
		"null lists":     `{"personal_info": {}, "skills": {"technical": [], "soft": []}, "experience": null, "education": [], "projects": []}`,
		"empty response": "",
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			generator := NewProfileGenerator(&fakeModel{reply: reply})

			result := generator.Generate(context.Background(), nil, models.Questionnaire{})

			assert.Equal(t, SourceFallback, result.Source)
			assert.Error(t, result.Err)
			assertWellFormed(t, result.Profile)
		})
	}
}

func TestProfileGenerator_ParsesModelReply(t *testing.T) {
	model := &fakeModel{reply: validReply}
	generator := NewProfileGenerator(model)
	answers := models.Questionnaire{models.AnswerFullName: "Jane Doe", models.AnswerPhone: "021 555 0100"}

	result := generator.Generate(context.Background(), map[string]string{models.DocumentCV: "CV body"}, answers)

	require.NoError(t, result.Err)
	assert.Equal(t, SourceModel, result.Source)
	assert.Equal(t, "Data Engineer", result.Profile.PersonalInfo.Title)
	assert.Equal(t, "021 555 0100", result.Profile.PersonalInfo.Phone)
	assert.Equal(t, []string{"Go", "SQL"}, result.Profile.Skills.Technical)
	assert.Equal(t, "Acme", result.Profile.Experience[0].Company)
	assert.Equal(t, []string{"Go"}, result.Profile.Projects[0].Technologies)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "CV: CV body")
}

func TestParseProfileResponse_NormalizesMissingTechnologies(t *testing.T) {
	reply := `{"personal_info": {}, "skills": {"technical": [], "soft": []}, "experience": [], "education": [],
		"projects": [{"name": "P", "description": "D"}]}`

	profile, err := ParseProfileResponse(reply)

	require.NoError(t, err)
	assertWellFormed(t, profile)
}

func TestBuildProfilePrompt_TruncatesExcerpts(t *testing.T) {
	texts := map[string]string{
		models.DocumentCV:             strings.Repeat("c", 3500),
		models.DocumentTranscript:     strings.Repeat("t", 2500),
		models.DocumentQualifications: strings.Repeat("q", 2001),
	}
	answers := models.Questionnaire{models.AnswerYearsExperience: "7"}

	prompt := NewPromptBuilder().BuildProfilePrompt(texts, answers)

	assert.Contains(t, prompt, "CV: "+strings.Repeat("c", 3000)+"\n")
	assert.NotContains(t, prompt, strings.Repeat("c", 3001))
	assert.Contains(t, prompt, "Transcripts: "+strings.Repeat("t", 2000)+"\n")
	assert.NotContains(t, prompt, strings.Repeat("t", 2001))
	assert.Contains(t, prompt, "Qualifications: "+strings.Repeat("q", 2000)+"\n")
	assert.NotContains(t, prompt, strings.Repeat("q", 2001))
	assert.Contains(t, prompt, `"years_experience": "7"`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestTruncateRunes_MultiByte(t *testing.T) {
	assert.Equal(t, "日本", truncateRunes("日本語", 2))
	assert.Equal(t, "abc", truncateRunes("abc", 10))
}

func TestProfileGenerator_KeepsReplyWithMissingLists(t *testing.T) {
	reply := `{"personal_info": {"name": "Jane Doe", "title": "Analyst"}, "skills": {"technical": ["SQL"]}}`
	generator := NewProfileGenerator(&fakeModel{reply: reply})

	result := generator.Generate(context.Background(), nil, models.Questionnaire{})

	require.NoError(t, result.Err)
	assert.Equal(t, SourceModel, result.Source)
	assert.Equal(t, "Analyst", result.Profile.PersonalInfo.Title)
	assert.Equal(t, []string{"SQL"}, result.Profile.Skills.Technical)
	assert.Empty(t, result.Profile.Skills.Soft)
	assert.Empty(t, result.Profile.Experience)
	assertWellFormed(t, result.Profile)
}

func TestEmbeddingInput_CutsOnRuneBoundary(t *testing.T) {
	text := strings.Repeat("é", maxEmbeddingChars+10)

	got := embeddingInput(text)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxEmbeddingChars, utf8.RuneCountInString(got))
	assert.Equal(t, "short", embeddingInput("short"))
}
