package service

import (
	"time"

	"github.com/folio-site/folio-backend/internal/locale"
)

const (
	// MaxQueryLen caps the user text forwarded upstream.
	MaxQueryLen = 6000

	// Temperature is kept low so repeated calls stay close to reproducible.
	Temperature = 0.2

	// SchemaVersion tags the output contract; bump when SchemaJSON changes.
	SchemaVersion = "v1"

	DefaultTimeout = 60 * time.Second

	// parseSampleLen bounds the diagnostic sample attached to parse errors.
	parseSampleLen = 400
)

// SchemaJSON is the published contract for domain.Output. It is sent to the
// completion API as a strict response_format schema and mirrored by the
// required-key check in ParseOutput.
const SchemaJSON = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["scope", "architecture", "dataModel", "apiSurface", "deliveryPlan", "costEstimate", "diagrams", "risks", "clarifyingQuestions"],
  "properties": {
    "scope": {
      "type": "object",
      "additionalProperties": false,
      "required": ["summary", "goals", "outOfScope"],
      "properties": {
        "summary": {"type": "string"},
        "goals": {"type": "array", "items": {"type": "string"}},
        "outOfScope": {"type": "array", "items": {"type": "string"}}
      }
    },
    "architecture": {
      "type": "object",
      "additionalProperties": false,
      "required": ["style", "components"],
      "properties": {
        "style": {"type": "string"},
        "components": {
          "type": "array",
          "items": {
            "type": "object",
            "additionalProperties": false,
            "required": ["name", "responsibility"],
            "properties": {
              "name": {"type": "string"},
              "responsibility": {"type": "string"}
            }
          }
        }
      }
    },
    "dataModel": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name", "fields"],
        "properties": {
          "name": {"type": "string"},
          "fields": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["name", "type"],
              "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "apiSurface": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["method", "path", "description"],
        "properties": {
          "method": {"type": "string"},
          "path": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "deliveryPlan": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name", "weeks", "deliverables"],
        "properties": {
          "name": {"type": "string"},
          "weeks": {"type": "integer"},
          "deliverables": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "costEstimate": {
      "type": "object",
      "additionalProperties": false,
      "required": ["currency", "min", "max", "notes"],
      "properties": {
        "currency": {"type": "string"},
        "min": {"type": "integer"},
        "max": {"type": "integer"},
        "notes": {"type": "string"}
      }
    },
    "diagrams": {
      "type": "object",
      "additionalProperties": false,
      "required": ["flow", "erd"],
      "properties": {
        "flow": {"type": "string"},
        "erd": {"type": "string"}
      }
    },
    "risks": {"type": "array", "items": {"type": "string"}},
    "clarifyingQuestions": {"type": "array", "items": {"type": "string"}}
  }
}`

// requiredKeys is the shallow contract check applied after JSON parsing,
// before the payload is trusted as domain.Output.
var requiredKeys = []string{
	"scope",
	"architecture",
	"dataModel",
	"apiSurface",
	"deliveryPlan",
	"costEstimate",
	"diagrams",
	"risks",
	"clarifyingQuestions",
}

var systemPrompts = map[locale.Locale]string{
	locale.English: `You are a senior software consultant preparing a project plan for a client of a freelance web studio.
Respond with STRICT JSON only, no markdown fences and no prose, matching exactly this JSON Schema:
` + SchemaJSON + `
All free-text values must be written in English. Keep the plan realistic for a small studio: modest scope, concrete deliverables, cost in USD.`,

	locale.Hebrew: `You are a senior software consultant preparing a project plan for a client of a freelance web studio.
Respond with STRICT JSON only, no markdown fences and no prose, matching exactly this JSON Schema:
` + SchemaJSON + `
All free-text values must be written in Hebrew. Keys stay in English exactly as in the schema. Keep the plan realistic for a small studio: modest scope, concrete deliverables, cost in USD.`,
}

// SystemPrompt returns the fixed instruction for the given locale.
func SystemPrompt(loc locale.Locale) string {
	if p, ok := systemPrompts[loc]; ok {
		return p
	}
	return systemPrompts[locale.Default]
}

// TruncateQuery caps the user text at MaxQueryLen characters before it is
// forwarded upstream. Character-based, so a Hebrew query keeps its full
// budget and the cut never produces invalid UTF-8.
func TruncateQuery(q string) string {
	return sample(q, MaxQueryLen)
}
