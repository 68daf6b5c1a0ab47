package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"mindworx/profile-builder/internal/models"
)

type ProfileSource string

const (
	SourceModel    ProfileSource = "model"
	SourceFallback ProfileSource = "fallback"
)

const profileTemperature = 0.4

var errNoJSONObject = errors.New("no JSON object in model reply")

// Generation is the outcome of profile generation. Profile is always well
// formed; Err records why the model output was discarded, if it was.
type Generation struct {
	Profile models.GeneratedProfile
	Source  ProfileSource
	Err     error
}

type ProfileGenerator interface {
	Generate(ctx context.Context, texts map[string]string, answers models.Questionnaire) Generation
	AIEnabled() bool
}

type profileGenerator struct {
	model         TextGenerator
	promptBuilder *PromptBuilder
}

// NewProfileGenerator selects the strategy once: a nil model means every
// call uses the deterministic fallback.
func NewProfileGenerator(model TextGenerator) ProfileGenerator {
	return &profileGenerator{
		model:         model,
		promptBuilder: NewPromptBuilder(),
	}
}

func (g *profileGenerator) AIEnabled() bool {
	return g.model != nil
}

func (g *profileGenerator) Generate(ctx context.Context, texts map[string]string, answers models.Questionnaire) Generation {
	if g.model == nil {
		return g.fallback(answers, nil)
	}

	prompt := g.promptBuilder.BuildProfilePrompt(texts, answers)
	log.Printf("📝 Profile prompt length: %d characters\n", len(prompt))

	response, err := g.model.GenerateText(ctx, prompt, profileTemperature)
	if err != nil {
		log.Printf("❌ Gemini generation failed: %v\n", err)
		return g.fallback(answers, err)
	}

	profile, err := ParseProfileResponse(response)
	if err != nil {
		log.Printf("❌ Failed to parse profile response: %v\n", err)
		return g.fallback(answers, err)
	}

	fillPersonalInfo(&profile.PersonalInfo, BuildFallbackProfile(answers).PersonalInfo)
	return Generation{Profile: profile, Source: SourceModel}
}

func (g *profileGenerator) fallback(answers models.Questionnaire, cause error) Generation {
	profile := BuildFallbackProfile(answers)
	profile.Normalize()
	return Generation{Profile: profile, Source: SourceFallback, Err: cause}
}

// ParseProfileResponse takes the text between the first '{' and the last '}'
// of a model reply and decodes it as a profile.
func ParseProfileResponse(response string) (models.GeneratedProfile, error) {
	var profile models.GeneratedProfile

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return profile, errNoJSONObject
	}
	jsonStr := response[start : end+1]

	if err := ValidateProfileJSON(jsonStr); err != nil {
		return profile, err
	}

	if err := json.Unmarshal([]byte(jsonStr), &profile); err != nil {
		return profile, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	profile.Normalize()
	return profile, nil
}

// fillPersonalInfo fills blank fields of info from defaults.
func fillPersonalInfo(info *models.PersonalInfo, defaults models.PersonalInfo) {
	for _, pair := range []struct {
		field    *string
		fallback string
	}{
		{&info.Name, defaults.Name},
		{&info.Title, defaults.Title},
		{&info.Email, defaults.Email},
		{&info.Phone, defaults.Phone},
		{&info.Location, defaults.Location},
		{&info.Summary, defaults.Summary},
	} {
		if strings.TrimSpace(*pair.field) == "" {
			*pair.field = pair.fallback
		}
	}
}
