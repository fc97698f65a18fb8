package entity

import (
	"time"

	"github.com/google/uuid"
)

// BrandReport aggregates category scores and the free-form analysis blob for a business.
// AnalysisData is merged additively as partial analyses complete; it is never replaced
// wholesale by a single enrichment.
type BrandReport struct {
	ID           uuid.UUID      `json:"id"`
	BusinessID   uuid.UUID      `json:"business_id"`
	Status       string         `json:"status"`
	OverallScore *int           `json:"overall_score,omitempty"`
	Scores       map[string]int `json:"scores,omitempty"`
	AnalysisData map[string]any `json:"analysis_data"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
