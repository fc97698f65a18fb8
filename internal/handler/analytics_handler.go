package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
	"github.com/octobees/brand-equity/api/internal/repository"
	"github.com/octobees/brand-equity/api/internal/service"
)

// analysisKeyAnalytics is the stable key traffic metrics are merged under in
// a report's analysis blob.
const analysisKeyAnalytics = "analytics"

// TokenSource mints OAuth access tokens for the analytics API.
type TokenSource interface {
	Configured() bool
	Token(ctx context.Context) (string, error)
}

// AnalyticsHandler runs GA4 traffic reports and optionally persists the
// result into a brand report.
type AnalyticsHandler struct {
	analytics  *provider.AnalyticsClient
	tokens     TokenSource
	businesses repository.BusinessesRepository
	reports    repository.ReportsRepository
}

// NewAnalyticsHandler constructs the analytics handler. Both repositories may
// be nil when the API runs without a database; persistence is then skipped.
func NewAnalyticsHandler(analytics *provider.AnalyticsClient, tokens TokenSource, businesses repository.BusinessesRepository, reports repository.ReportsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:  analytics,
		tokens:     tokens,
		businesses: businesses,
		reports:    reports,
	}
}

// Report handles POST /api/analytics/report. The bearer credential resolves
// in fixed priority: the configured service account is tried first, and a
// caller-supplied access token is only a fallback. Persistence of the result
// is best effort: a storage failure is reported in the envelope's error field
// while the metrics themselves still come back with success true.
func (h *AnalyticsHandler) Report(c echo.Context) error {
	var req dto.AnalyticsReportRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	req.PropertyID = strings.TrimSpace(req.PropertyID)
	if req.PropertyID == "" {
		return badRequest(c, "propertyId is required")
	}

	ctx := c.Request().Context()

	token, err := h.resolveToken(ctx, strings.TrimSpace(req.AccessToken))
	if err != nil {
		return c.JSON(http.StatusOK, dto.AnalyticsReportResponse{
			Error: upstreamError("analytics", err),
		})
	}
	if token == "" {
		return c.JSON(http.StatusOK, dto.AnalyticsReportResponse{
			Error: "analytics is currently unavailable",
		})
	}

	metrics, err := h.analytics.RunReport(ctx, req.PropertyID, token)
	if err != nil {
		return c.JSON(http.StatusOK, dto.AnalyticsReportResponse{
			Error: upstreamError("analytics", err),
		})
	}

	resp := dto.AnalyticsReportResponse{Success: true, Data: metrics}

	if req.ReportID != "" && h.reports != nil {
		if err := h.persistMetrics(ctx, req.ReportID, metrics); err != nil {
			resp.Error = "metrics fetched but not persisted: " + err.Error()
		}
	}
	if req.BusinessID != "" && h.businesses != nil {
		if businessID, err := uuid.Parse(req.BusinessID); err == nil {
			// Linking the property to the business is advisory only.
			_ = h.businesses.UpdateAnalyticsPropertyID(ctx, businessID, req.PropertyID)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// resolveToken picks the bearer credential: the service account always takes
// priority, a caller token only covers the gaps (not configured, or a failed
// mint). An empty result with a nil error means no credential resolved at all.
func (h *AnalyticsHandler) resolveToken(ctx context.Context, callerToken string) (string, error) {
	if h.tokens == nil || !h.tokens.Configured() {
		return callerToken, nil
	}
	minted, err := h.tokens.Token(ctx)
	if err != nil {
		if callerToken != "" {
			return callerToken, nil
		}
		return "", err
	}
	return minted, nil
}

// persistMetrics merges the traffic snapshot into the report's analysis blob
// under a stable key, preserving whatever other categories already live there.
func (h *AnalyticsHandler) persistMetrics(ctx context.Context, reportID string, metrics *dto.AnalyticsMetrics) error {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return err
	}
	report, err := h.reports.GetByID(ctx, id)
	if err != nil {
		return err
	}

	merged, err := service.DeepMerge(report.AnalysisData, map[string]any{
		analysisKeyAnalytics: metricsAsMap(metrics),
	})
	if err != nil {
		return err
	}
	return h.reports.SetAnalysisData(ctx, id, merged)
}

func metricsAsMap(metrics *dto.AnalyticsMetrics) map[string]any {
	raw, err := json.Marshal(metrics)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}
