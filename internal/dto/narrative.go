package dto

// NarrativeRequest asks for a natural-language explanation of one category score.
type NarrativeRequest struct {
	Category     string         `json:"category"`
	Score        int            `json:"score"`
	AnalysisData map[string]any `json:"analysisData"`
	BusinessName string         `json:"businessName,omitempty"`
}

// NarrativeResponse returns the generated breakdown text verbatim.
type NarrativeResponse struct {
	Success   bool   `json:"success"`
	Breakdown string `json:"breakdown,omitempty"`
	Error     string `json:"error,omitempty"`
}
