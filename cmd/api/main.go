package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/brand-equity/api/internal/auth"
	"github.com/octobees/brand-equity/api/internal/config"
	"github.com/octobees/brand-equity/api/internal/database"
	"github.com/octobees/brand-equity/api/internal/handler"
	middlewarepkg "github.com/octobees/brand-equity/api/internal/middleware"
	"github.com/octobees/brand-equity/api/internal/provider"
	"github.com/octobees/brand-equity/api/internal/repository"
	"github.com/octobees/brand-equity/api/internal/router"
	"github.com/octobees/brand-equity/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	for _, status := range cfg.Report() {
		if !status.Configured {
			log.Printf("provider %s not configured; its endpoints degrade", status.Provider)
		}
	}

	var businessesRepo repository.BusinessesRepository
	var reportsRepo repository.ReportsRepository
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer pool.Close()

		businessesRepo = repository.NewPGXBusinessesRepository(pool)
		reportsRepo = repository.NewPGXReportsRepository(pool)
	} else {
		log.Print("DATABASE_URL not set; report persistence disabled")
	}

	places := provider.NewPlacesClient(nil, cfg.MapsAPIKey, "")
	pagespeed := provider.NewPageSpeedClient(nil, cfg.PageSpeedAPIKey, "")
	github := provider.NewGitHubClient(nil, cfg.GitHubToken, "")
	youtube := provider.NewYouTubeClient(nil, cfg.YouTubeAPIKey, "")
	twitter := provider.NewTwitterClient(nil, cfg.TwitterBearerToken, "")
	trustpilot := provider.NewTrustpilotClient(nil, cfg.ScraperAPIKey, "")
	semrush := provider.NewSemrushClient(nil, cfg.ScraperAPIKey, "")
	perplexity := provider.NewPerplexityClient(nil, cfg.PerplexityAPIKey, "")
	analytics := provider.NewAnalyticsClient(nil, "")
	socialCounts := provider.NewSocialCountsClient(nil, cfg.SocialCountsAPIKey, "")

	tokens := auth.NewServiceAccountTokenSource(cfg.AnalyticsClientEmail, cfg.AnalyticsPrivateKey, nil, "")
	narrative := service.NewNarrativeService("the business")

	handlers := router.Handlers{
		Competitors: handler.NewCompetitorsHandler(places),
		Places:      handler.NewPlacesHandler(places),
		Social:      handler.NewSocialHandler(socialCounts),
		Analytics:   handler.NewAnalyticsHandler(analytics, tokens, businessesRepo, reportsRepo),
		Narrative:   handler.NewNarrativeHandler(perplexity, narrative),
		Scores:      handler.NewScoresHandler(reportsRepo),
		Signals:     handler.NewSignalsHandler(pagespeed, github, youtube, twitter, trustpilot, semrush),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logFilter := middlewarepkg.NewLogFilter(cfg.LogSuppress, nil)

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logFilter))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
