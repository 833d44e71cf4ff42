package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dayflow/config"
	_ "dayflow/docs" // Swagger docs
	"dayflow/internal/database"
	"dayflow/internal/httpserver"
	"dayflow/internal/jobs"
	"dayflow/pkg/authclient"
	"dayflow/pkg/gcalendar"
	"dayflow/pkg/llmprovider"
	"dayflow/pkg/log"
	"dayflow/pkg/timemath"
)

// @title       Dayflow API
// @description Personal task scheduling: LLM-parsed tasks, generated day plans, drag-and-drop reordering.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting dayflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Planner calendar
	cal, err := timemath.NewCalendar(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		cal, _ = timemath.NewCalendar("UTC")
	}

	// 4. Database
	db, err := database.New(cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}

	// 5. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, cfg.LLM.FallbackEnabled, logger)

	// 6. Auth backend
	verifier := authclient.NewClient(cfg.Auth.BaseURL, cfg.Auth.APIKey)

	// 7. Google Calendar client (optional)
	var calendarClient gcalendar.EventCreator
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 8. HTTP server (wires all domains)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		LLM:         llm,
		Verifier:    verifier,
		Calendar:    calendarClient,
		Cal:         cal,
		AppConfig:   cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Nightly rollover job
	rollover := jobs.NewRolloverJob(cal.Location(), httpServer.TaskUseCase(), logger)
	if err := rollover.Schedule(cfg.Planner.RolloverTime); err != nil {
		logger.Error(ctx, "Failed to schedule rollover job: ", err)
		return
	}
	defer rollover.Stop()

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
