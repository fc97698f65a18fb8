package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business represents a subject business an analysis is performed for.
type Business struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Address             *string   `json:"address,omitempty"`
	Website             *string   `json:"website,omitempty"`
	Industry            *string   `json:"industry,omitempty"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	AnalyticsPropertyID *string   `json:"analytics_property_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
