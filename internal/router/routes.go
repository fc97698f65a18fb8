package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/brand-equity/api/internal/config"
	"github.com/octobees/brand-equity/api/internal/handler"
	middlewarepkg "github.com/octobees/brand-equity/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Competitors *handler.CompetitorsHandler
	Places      *handler.PlacesHandler
	Social      *handler.SocialHandler
	Analytics   *handler.AnalyticsHandler
	Narrative   *handler.NarrativeHandler
	Scores      *handler.ScoresHandler
	Signals     *handler.SignalsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", handler.Healthz)

	api := e.Group("/api")

	api.POST("/competitors/search", handlers.Competitors.Search)
	api.POST("/competitors/reviews", handlers.Competitors.Reviews)

	api.GET("/places/autocomplete", handlers.Places.Autocomplete)
	api.POST("/places/autocomplete", handlers.Places.Autocomplete)

	api.POST("/social/followers", handlers.Social.Followers)
	api.POST("/analytics/report", handlers.Analytics.Report)

	api.POST("/scores/compute", handlers.Scores.Compute)
	api.POST("/scores/narrative", handlers.Narrative.Breakdown,
		middlewarepkg.NarrativeRateLimiter(cfg.RateLimitNarrative))

	api.POST("/pagespeed", handlers.Signals.PageSpeed)
	api.POST("/github/stats", handlers.Signals.GitHubStats)
	api.POST("/youtube/channel", handlers.Signals.YouTubeChannel)
	api.POST("/twitter/followers", handlers.Signals.TwitterFollowers)
	api.POST("/trustpilot/reviews", handlers.Signals.TrustpilotReviews)
	api.POST("/semrush/domain", handlers.Signals.SemrushDomain)
}
