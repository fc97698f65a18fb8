package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/dto"
	"github.com/octobees/brand-equity/api/internal/provider"
	"github.com/octobees/brand-equity/api/internal/service"
)

// SignalsHandler exposes the per-provider brand signal endpoints. Each one is
// a thin pass-through: validate the identifying field, call the adapter, wrap
// the result. All upstream failures degrade inside a 200 envelope.
type SignalsHandler struct {
	pagespeed  *provider.PageSpeedClient
	github     *provider.GitHubClient
	youtube    *provider.YouTubeClient
	twitter    *provider.TwitterClient
	trustpilot *provider.TrustpilotClient
	semrush    *provider.SemrushClient
}

// NewSignalsHandler constructs the signal endpoints handler.
func NewSignalsHandler(pagespeed *provider.PageSpeedClient, github *provider.GitHubClient, youtube *provider.YouTubeClient, twitter *provider.TwitterClient, trustpilot *provider.TrustpilotClient, semrush *provider.SemrushClient) *SignalsHandler {
	return &SignalsHandler{
		pagespeed:  pagespeed,
		github:     github,
		youtube:    youtube,
		twitter:    twitter,
		trustpilot: trustpilot,
		semrush:    semrush,
	}
}

// PageSpeed handles POST /api/pagespeed.
func (h *SignalsHandler) PageSpeed(c echo.Context) error {
	var req dto.PageSpeedRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return badRequest(c, "url is required")
	}

	siteURL, err := service.NormalizeWebsiteURL(req.URL)
	if err != nil {
		return badRequest(c, "url is not a valid website address")
	}

	scores, err := h.pagespeed.Run(c.Request().Context(), siteURL, req.Strategy)
	if err != nil {
		return c.JSON(http.StatusOK, dto.PageSpeedResponse{Error: upstreamError("pagespeed", err)})
	}
	return c.JSON(http.StatusOK, dto.PageSpeedResponse{Success: true, Data: scores})
}

// GitHubStats handles POST /api/github/stats.
func (h *SignalsHandler) GitHubStats(c echo.Context) error {
	var req dto.GitHubStatsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return badRequest(c, "username is required")
	}

	stats, err := h.github.Stats(c.Request().Context(), req.Username)
	if err != nil {
		return c.JSON(http.StatusOK, dto.GitHubStatsResponse{Error: upstreamError("github", err)})
	}
	return c.JSON(http.StatusOK, dto.GitHubStatsResponse{Success: true, Data: stats})
}

// YouTubeChannel handles POST /api/youtube/channel.
func (h *SignalsHandler) YouTubeChannel(c echo.Context) error {
	var req dto.YouTubeChannelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	req.ChannelID = strings.TrimSpace(req.ChannelID)
	if req.ChannelID == "" {
		return badRequest(c, "channelId is required")
	}

	stats, err := h.youtube.ChannelStats(c.Request().Context(), req.ChannelID)
	if err != nil {
		return c.JSON(http.StatusOK, dto.YouTubeChannelResponse{Error: upstreamError("youtube", err)})
	}
	return c.JSON(http.StatusOK, dto.YouTubeChannelResponse{Success: true, Data: stats})
}

// TwitterFollowers handles POST /api/twitter/followers.
func (h *SignalsHandler) TwitterFollowers(c echo.Context) error {
	var req dto.TwitterFollowersRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	req.Username = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(req.Username), "@"))
	if req.Username == "" {
		return badRequest(c, "username is required")
	}

	followers, err := h.twitter.Followers(c.Request().Context(), req.Username)
	if err != nil {
		return c.JSON(http.StatusOK, dto.TwitterFollowersResponse{Error: upstreamError("twitter", err)})
	}
	return c.JSON(http.StatusOK, dto.TwitterFollowersResponse{Success: true, Data: followers})
}

// TrustpilotReviews handles POST /api/trustpilot/reviews.
func (h *SignalsHandler) TrustpilotReviews(c echo.Context) error {
	var req dto.TrustpilotRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	domain, err := service.NormalizeDomain(req.Domain)
	if err != nil {
		return badRequest(c, "domain is required")
	}

	summary, err := h.trustpilot.Reviews(c.Request().Context(), domain)
	if err != nil {
		return c.JSON(http.StatusOK, dto.TrustpilotResponse{Error: upstreamError("trustpilot", err)})
	}
	return c.JSON(http.StatusOK, dto.TrustpilotResponse{Success: true, Data: summary})
}

// SemrushDomain handles POST /api/semrush/domain.
func (h *SignalsHandler) SemrushDomain(c echo.Context) error {
	var req dto.SemrushRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	domain, err := service.NormalizeDomain(req.Domain)
	if err != nil {
		return badRequest(c, "domain is required")
	}

	metrics, err := h.semrush.DomainOverview(c.Request().Context(), domain)
	if err != nil {
		return c.JSON(http.StatusOK, dto.SemrushResponse{Error: upstreamError("semrush", err)})
	}
	return c.JSON(http.StatusOK, dto.SemrushResponse{Success: true, Data: metrics})
}
