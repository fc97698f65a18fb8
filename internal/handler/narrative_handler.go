package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
	"github.com/octobees/brand-equity/api/internal/service"
)

// Completer generates text from a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NarrativeHandler turns a category score into a natural-language breakdown
// through the Perplexity chat API.
type NarrativeHandler struct {
	completer Completer
	narrative *service.NarrativeService
}

// NewNarrativeHandler constructs the score narrative handler.
func NewNarrativeHandler(completer Completer, narrative *service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{completer: completer, narrative: narrative}
}

// Breakdown handles POST /api/scores/narrative. Unlike every other endpoint,
// quota failures from the generation provider keep their upstream status:
// a 429 or 402 passes through so the dashboard can tell the user to retry
// later rather than showing a broken narrative.
func (h *NarrativeHandler) Breakdown(c echo.Context) error {
	var req dto.NarrativeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if req.Category == "" {
		return badRequest(c, "category is required")
	}

	prompt, err := h.narrative.BuildPrompt(req.Category, req.Score, req.AnalysisData, req.BusinessName)
	if err != nil {
		return badRequest(c, err.Error())
	}

	text, err := h.completer.Complete(c.Request().Context(), prompt)
	if err != nil {
		var statusErr *provider.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.Code == http.StatusTooManyRequests || statusErr.Code == http.StatusPaymentRequired) {
			return c.JSON(statusErr.Code, dto.NarrativeResponse{
				Error: "narrative provider rejected the request",
			})
		}
		return c.JSON(http.StatusOK, dto.NarrativeResponse{
			Error: upstreamError("narrative", err),
		})
	}

	return c.JSON(http.StatusOK, dto.NarrativeResponse{
		Success:   true,
		Breakdown: text,
	})
}
