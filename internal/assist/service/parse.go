package service

import (
	"encoding/json"
	"fmt"

	"github.com/folio-site/folio-backend/internal/assist/domain"
)

// ParseOutput parses the model text into the output contract. Beyond the
// bare JSON parse it checks the required top-level keys, so a structurally
// wrong answer is rejected here instead of reaching the renderer.
func ParseOutput(text string) (*domain.Output, error) {
	var shallow map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &shallow); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := shallow[key]; !ok {
			return nil, fmt.Errorf("model output missing %q", key)
		}
	}

	var out domain.Output
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	return &out, nil
}

// Sample returns the leading diagnostic slice of a failed payload.
func Sample(text string) string {
	return sample(text, parseSampleLen)
}
