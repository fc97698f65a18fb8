package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/repository"
	"github.com/octobees/brand-equity/api/internal/service/scoring"
)

// ScoresHandler computes the weighted category scores from gathered signals.
type ScoresHandler struct {
	reports repository.ReportsRepository
}

// NewScoresHandler constructs the score computation handler. A nil repository
// disables persistence.
func NewScoresHandler(reports repository.ReportsRepository) *ScoresHandler {
	return &ScoresHandler{reports: reports}
}

// Compute handles POST /api/scores/compute. The breakdown always contains
// every category so the dashboard shape is stable. Persisting onto a report
// is best effort and reported in the error field.
func (h *ScoresHandler) Compute(c echo.Context) error {
	var req dto.ScoreComputeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	result := scoring.ComputeScore(scoring.BrandSignals{
		PerformanceScore: req.PerformanceScore,
		SEOScore:         req.SEOScore,
		GoogleRating:     req.GoogleRating,
		GoogleReviews:    req.GoogleReviews,
		TrustpilotScore:  req.TrustpilotScore,
		TrustpilotCount:  req.TrustpilotCount,
		TotalFollowers:   req.TotalFollowers,
		VerifiedProfiles: req.VerifiedProfiles,
		AuthorityScore:   req.AuthorityScore,
		OrganicKeywords:  req.OrganicKeywords,
	})

	resp := dto.ScoreComputeResponse{
		Success:      true,
		OverallScore: result.Overall,
		Scores:       result.Breakdown,
	}

	if req.ReportID != "" && h.reports != nil {
		if id, err := uuid.Parse(req.ReportID); err != nil {
			resp.Error = "scores computed but not persisted: invalid reportId"
		} else if err := h.reports.UpdateScores(c.Request().Context(), id, result.Overall, result.Breakdown); err != nil {
			resp.Error = "scores computed but not persisted: " + err.Error()
		}
	}

	return c.JSON(http.StatusOK, resp)
}
