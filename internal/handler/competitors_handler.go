package handler

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
)

const (
	defaultCompetitorLimit = 5
	maxReviewsPerPlace     = 5
)

// CompetitorsHandler resolves nearby competitors and their reviews through
// the Google Places adapter.
type CompetitorsHandler struct {
	places *provider.PlacesClient
}

// NewCompetitorsHandler constructs the competitor discovery handler.
func NewCompetitorsHandler(places *provider.PlacesClient) *CompetitorsHandler {
	return &CompetitorsHandler{places: places}
}

// Search handles POST /api/competitors/search: geocode the subject address,
// run a nearby keyword search and return competitors with the subject itself
// excluded. Upstream failures degrade to an empty list inside a 200 envelope.
func (h *CompetitorsHandler) Search(c echo.Context) error {
	var req dto.CompetitorSearchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.Address = strings.TrimSpace(req.Address)
	if req.BusinessName == "" {
		return badRequest(c, "businessName is required")
	}
	if req.Address == "" {
		return badRequest(c, "address is required")
	}
	if req.Limit <= 0 {
		req.Limit = defaultCompetitorLimit
	}

	resp := dto.CompetitorSearchResponse{
		Success:          true,
		Competitors:      []dto.Competitor{},
		SearchedBusiness: req.BusinessName,
	}

	ctx := c.Request().Context()
	loc, err := h.places.Geocode(ctx, req.Address)
	if err != nil {
		resp.Error = upstreamError("competitor search", err)
		return c.JSON(http.StatusOK, resp)
	}

	places, err := h.places.NearbySearch(ctx, *loc, req.Radius, req.BusinessName)
	if err != nil {
		resp.Error = upstreamError("competitor search", err)
		return c.JSON(http.StatusOK, resp)
	}

	for _, place := range places {
		if strings.EqualFold(place.Name, req.BusinessName) {
			continue
		}
		resp.Competitors = append(resp.Competitors, dto.Competitor{
			Name:        place.Name,
			Address:     place.Vicinity,
			Rating:      place.Rating,
			ReviewCount: place.ReviewCount,
			PlaceID:     place.PlaceID,
			Category:    place.Category,
		})
		if len(resp.Competitors) >= req.Limit {
			break
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Reviews handles POST /api/competitors/reviews: fetch place details for one
// or many place ids concurrently. Places that fail to resolve are dropped
// from the result rather than failing the batch.
func (h *CompetitorsHandler) Reviews(c echo.Context) error {
	var req dto.CompetitorReviewsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	ids := req.PlaceIDs
	if single := strings.TrimSpace(req.PlaceID); single != "" {
		ids = append([]string{single}, ids...)
	}
	if len(ids) == 0 {
		return badRequest(c, "placeId or placeIds is required")
	}

	ctx := c.Request().Context()
	results := make([]*dto.PlaceReviews, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, placeID string) {
			defer wg.Done()
			detail, err := h.places.Details(ctx, placeID)
			if err != nil {
				return
			}
			results[i] = placeReviewsFromDetail(placeID, detail)
		}(i, id)
	}
	wg.Wait()

	resp := dto.CompetitorReviewsResponse{
		Success:            true,
		CompetitorsReviews: []dto.PlaceReviews{},
	}
	for _, r := range results {
		if r != nil {
			resp.CompetitorsReviews = append(resp.CompetitorsReviews, *r)
		}
	}
	if len(resp.CompetitorsReviews) == 0 {
		resp.Error = "no reviews could be fetched"
	}

	return c.JSON(http.StatusOK, resp)
}

func placeReviewsFromDetail(placeID string, detail *provider.PlaceDetail) *dto.PlaceReviews {
	out := &dto.PlaceReviews{
		BusinessName: detail.Name,
		PlaceID:      placeID,
		Rating:       detail.Rating,
		ReviewCount:  detail.ReviewCount,
		Reviews:      []dto.Review{},
	}
	for _, r := range detail.Reviews {
		if len(out.Reviews) >= maxReviewsPerPlace {
			break
		}
		out.Reviews = append(out.Reviews, dto.Review{
			Author:       r.Author,
			Rating:       r.Rating,
			Text:         r.Text,
			Time:         time.Unix(r.Time, 0).UTC().Format(time.RFC3339),
			RelativeTime: r.RelativeTime,
			AvatarURL:    r.AvatarURL,
		})
	}
	return out
}
