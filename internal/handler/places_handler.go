package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
)

const autocompleteMinInput = 3

// PlacesHandler serves place autocomplete for the dashboard address picker.
type PlacesHandler struct {
	places *provider.PlacesClient
}

// NewPlacesHandler constructs the autocomplete handler.
func NewPlacesHandler(places *provider.PlacesClient) *PlacesHandler {
	return &PlacesHandler{places: places}
}

// Autocomplete handles GET and POST /api/places/autocomplete. GET reads the
// input from the query string; POST from the JSON body. Inputs shorter than
// three characters return an empty prediction list without an upstream call.
func (h *PlacesHandler) Autocomplete(c echo.Context) error {
	input := strings.TrimSpace(c.QueryParam("input"))
	if input == "" && c.Request().Method == http.MethodPost {
		var req struct {
			Input string `json:"input"`
		}
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
		input = strings.TrimSpace(req.Input)
	}

	resp := dto.AutocompleteResponse{
		Success:     true,
		Predictions: []dto.AutocompletePrediction{},
	}
	if len(input) < autocompleteMinInput {
		return c.JSON(http.StatusOK, resp)
	}

	predictions, err := h.places.Autocomplete(c.Request().Context(), input)
	if err != nil {
		resp.Error = upstreamError("autocomplete", err)
		return c.JSON(http.StatusOK, resp)
	}

	for _, p := range predictions {
		resp.Predictions = append(resp.Predictions, dto.AutocompletePrediction{
			Description: p.Description,
			PlaceID:     p.PlaceID,
			StructuredFormatting: dto.StructuredFormatting{
				MainText:      p.MainText,
				SecondaryText: p.SecondaryText,
			},
		})
	}
	return c.JSON(http.StatusOK, resp)
}
