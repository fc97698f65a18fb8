package dto

// AnalyticsReportRequest asks for a traffic report for one GA4 property. The
// configured service account takes priority; a caller-supplied OAuth token is
// only used when no service account resolves. ReportID, when present, merges
// the result into that brand report's analysis blob.
type AnalyticsReportRequest struct {
	PropertyID  string `json:"propertyId"`
	AccessToken string `json:"accessToken,omitempty"`
	BusinessID  string `json:"businessId,omitempty"`
	ReportID    string `json:"reportId,omitempty"`
}

// AnalyticsMetrics is the fixed five-metric traffic snapshot for the 30-day window.
type AnalyticsMetrics struct {
	Sessions           *int64   `json:"sessions"`
	Users              *int64   `json:"users"`
	Pageviews          *int64   `json:"pageviews"`
	AvgSessionDuration *float64 `json:"avg_session_duration"`
	BounceRate         *float64 `json:"bounce_rate"`
}

// AnalyticsReportResponse is the analytics envelope. A missing credential or
// upstream failure keeps HTTP 200 and flips Success instead.
type AnalyticsReportResponse struct {
	Success bool              `json:"success"`
	Data    *AnalyticsMetrics `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}
