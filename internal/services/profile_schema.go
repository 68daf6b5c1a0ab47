package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const profileSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personal_info", "skills"],
  "properties": {
    "personal_info": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "title": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "summary": {"type": "string"}
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "technical": {"type": "array", "items": {"type": "string"}},
        "soft": {"type": "array", "items": {"type": "string"}}
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "position": {"type": "string"},
          "company": {"type": "string"},
          "period": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "institution": {"type": "string"},
          "year": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var profileSchema = gojsonschema.NewStringLoader(profileSchemaJSON)

// ValidateProfileJSON checks a model reply against the fixed profile shape.
func ValidateProfileJSON(doc string) error {
	res, err := gojsonschema.Validate(profileSchema, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate profile JSON: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
