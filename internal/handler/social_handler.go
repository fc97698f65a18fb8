package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
	"github.com/octobees/brand-equity/api/internal/service"
)

// SocialHandler enriches social profiles with follower counts through the
// aggregated social-counts provider.
type SocialHandler struct {
	counts *provider.SocialCountsClient
}

// NewSocialHandler constructs the follower resolution handler.
func NewSocialHandler(counts *provider.SocialCountsClient) *SocialHandler {
	return &SocialHandler{counts: counts}
}

// Followers handles POST /api/social/followers: resolve each profile
// concurrently and sum whatever could be resolved. A profile whose lookup
// fails keeps a nil follower count; it never contributes zero to the total.
func (h *SocialHandler) Followers(c echo.Context) error {
	var req dto.SocialFollowersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if len(req.Profiles) == 0 {
		return badRequest(c, "profiles is required")
	}

	resp := dto.SocialFollowersResponse{
		Success:  true,
		Profiles: make([]dto.SocialProfile, len(req.Profiles)),
	}
	copy(resp.Profiles, req.Profiles)
	for i := range resp.Profiles {
		resp.Profiles[i].Followers = nil
	}

	if !h.counts.Configured() {
		resp.Error = "social follower counts are currently unavailable"
		return c.JSON(http.StatusOK, resp)
	}

	ctx := c.Request().Context()
	var wg sync.WaitGroup
	for i := range resp.Profiles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			profile := &resp.Profiles[i]
			payload, err := h.counts.Lookup(ctx, profile.Platform, profile.URL)
			if err != nil {
				return
			}
			profile.Followers = service.ExtractFollowers(payload, profile.Platform)
		}(i)
	}
	wg.Wait()

	for _, profile := range resp.Profiles {
		if profile.Followers != nil {
			resp.TotalFollowers += *profile.Followers
		}
	}

	return c.JSON(http.StatusOK, resp)
}
