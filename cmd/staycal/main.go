package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"staycal/internal/app/handlers/calendarview"
	"staycal/internal/app/queries"
	"staycal/internal/app/view"
	"staycal/internal/infra/config"
	"staycal/internal/infra/feeds"
	ginserver "staycal/internal/infra/http/gin"
	"staycal/internal/infra/obs"
	"staycal/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app := buildApplication(cfg, logger)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, app.handlers)

	fixturesPath := cfg.PropertyFixtures
	if fixturesPath == "" {
		fixturesPath = defaultPropertyFixturesPath()
	}
	if err := app.loadPropertyFixtures(ctx, fixturesPath, logger); err != nil {
		logger.Warn("property fixtures load failed", "error", err, "path", fixturesPath)
	}

	if err := app.controller.Reload(ctx); err != nil {
		// Not fatal: the calendar renders empty and reloads on demand.
		logger.Warn("initial reservation load failed", "error", err)
	}

	app.refresher.Start()
	defer app.refresher.Stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers   ginserver.Handlers
	controller *view.Controller
	refresher  *feeds.Refresher
	properties *memory.PropertyRepository
}

func buildApplication(cfg config.Config, logger *slog.Logger) application {
	properties := memory.NewPropertyRepository()
	source := feeds.NewClient(cfg.ReservationsAPI, cfg.FeedTimeout, logger)
	controller := view.NewController(source, properties, logger)

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, calendarview.GetMonthQuery{}.Key(), &calendarview.GetMonthHandler{Controller: controller})
	queries.RegisterHandler(queryBus, calendarview.GetListQuery{}.Key(), &calendarview.GetListHandler{Controller: controller})
	queries.RegisterHandler(queryBus, calendarview.GetReservationQuery{}.Key(), &calendarview.GetReservationHandler{Controller: controller})
	queries.RegisterHandler(queryBus, calendarview.GetTooltipQuery{}.Key(), &calendarview.GetTooltipHandler{Controller: controller})

	return application{
		handlers: ginserver.Handlers{
			Calendar:    ginserver.CalendarHandler{Queries: queryBus},
			View:        ginserver.ViewHandler{Queries: queryBus, Controller: controller},
			Reservation: ginserver.ReservationHandler{Queries: queryBus, Controller: controller},
			Property:    ginserver.PropertyHandler{Repo: properties},
		},
		controller: controller,
		refresher:  feeds.NewRefresher(controller, cfg.FeedRefresh, logger),
		properties: properties,
	}
}

type propertyFixture struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a application) loadPropertyFixtures(ctx context.Context, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("property fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("property fixtures file empty", "path", path)
		return nil
	}

	var fixtures []propertyFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, fx := range fixtures {
		prop := view.Property{ID: strings.TrimSpace(fx.ID), Name: strings.TrimSpace(fx.Name)}
		if prop.ID == "" || prop.Name == "" {
			logger.Error("fixture invalid", "property_id", fx.ID)
			continue
		}
		if err := a.properties.Save(ctx, prop); err != nil {
			logger.Error("cannot store fixture property", "property_id", prop.ID, "error", err)
			continue
		}
		logger.Info("property fixture imported", "property_id", prop.ID)
	}
	return nil
}

func defaultPropertyFixturesPath() string {
	candidates := []string{
		filepath.Join("data", "properties.json"),
		filepath.Join("cmd", "staycal", "data", "properties.json"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return candidates[0]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
