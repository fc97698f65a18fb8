package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// narrativeTemplate is the fixed prompt shape sent to the generative provider.
const narrativeTemplate = `You are a brand strategist. Explain in 2-3 short paragraphs why %s scored %d out of 100 in the "%s" category of a brand equity analysis. Ground the explanation in the analysis data below and suggest one concrete improvement. Do not mention that you are an AI.

Analysis data:
%s`

// NarrativeService builds the generative prompt for category score explanations.
type NarrativeService struct {
	DefaultBusinessName string
}

// NewNarrativeService creates a prompt builder with a fallback subject name.
func NewNarrativeService(defaultBusinessName string) *NarrativeService {
	if strings.TrimSpace(defaultBusinessName) == "" {
		defaultBusinessName = "the business"
	}
	return &NarrativeService{DefaultBusinessName: defaultBusinessName}
}

// BuildPrompt renders the template for one category score. The score is
// clamped into 0-100 before rendering, matching the persisted breakdown.
func (s *NarrativeService) BuildPrompt(category string, score int, analysisData map[string]any, businessName string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", errors.New("category is required")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	name := strings.TrimSpace(businessName)
	if name == "" {
		name = s.DefaultBusinessName
	}

	blob := "{}"
	if len(analysisData) > 0 {
		raw, err := json.Marshal(analysisData)
		if err != nil {
			return "", fmt.Errorf("serialize analysis data: %w", err)
		}
		blob = string(raw)
	}

	return fmt.Sprintf(narrativeTemplate, name, score, category, blob), nil
}
