package dto

// ScoreComputeRequest carries the gathered brand signals to score. Absent
// signals stay nil and score differently from a measured zero. ReportID, when
// present, persists the breakdown onto that brand report.
type ScoreComputeRequest struct {
	ReportID string `json:"reportId,omitempty"`

	PerformanceScore *int     `json:"performanceScore"`
	SEOScore         *int     `json:"seoScore"`
	GoogleRating     *float64 `json:"googleRating"`
	GoogleReviews    *int     `json:"googleReviews"`
	TrustpilotScore  *float64 `json:"trustpilotScore"`
	TrustpilotCount  *int     `json:"trustpilotCount"`
	TotalFollowers   *int64   `json:"totalFollowers"`
	VerifiedProfiles int      `json:"verifiedProfiles,omitempty"`
	AuthorityScore   *int     `json:"authorityScore"`
	OrganicKeywords  *int64   `json:"organicKeywords"`
}

// ScoreComputeResponse returns the overall score and per-category breakdown.
type ScoreComputeResponse struct {
	Success      bool           `json:"success"`
	OverallScore int            `json:"overallScore"`
	Scores       map[string]int `json:"scores"`
	Error        string         `json:"error,omitempty"`
}
