package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"llm-personal-assistant/config"
	_ "llm-personal-assistant/docs" // Swagger docs
	"llm-personal-assistant/internal/calendar"
	calendarUC "llm-personal-assistant/internal/calendar/usecase"
	"llm-personal-assistant/internal/httpserver"
	"llm-personal-assistant/internal/intent"
	promptPostgre "llm-personal-assistant/internal/prompt/repository/postgre"
	promptUsecase "llm-personal-assistant/internal/prompt/usecase"
	"llm-personal-assistant/internal/scheduler"
	taskPostgre "llm-personal-assistant/internal/task/repository/postgre"
	taskUsecase "llm-personal-assistant/internal/task/usecase"
	"llm-personal-assistant/pkg/anthropic"
	"llm-personal-assistant/pkg/datemath"
	"llm-personal-assistant/pkg/gcalendar"
	"llm-personal-assistant/pkg/log"
	"llm-personal-assistant/pkg/ticktick"
)

// @title       LLM Personal Assistant API
// @description Task management, cadence prompts and the prompt-response pipeline.
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

	logger.Info(ctx, "Starting LLM Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}

	taskRepo := taskPostgre.New(db, logger)
	promptRepo := promptPostgre.New(db, logger)
	if err := promptRepo.Seed(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to seed prompt catalog: %v", err)
	}

	// 4. Date parsing
	dateParser, dtErr := datemath.NewParser(cfg.Pipeline.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Pipeline.Timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. External services
	llmClient := anthropic.NewClient(anthropic.Config{
		APIKey:        cfg.Anthropic.APIKey,
		Model:         cfg.Anthropic.Model,
		MaxTokens:     cfg.Anthropic.MaxTokens,
		RatePerMinute: cfg.Anthropic.RatePerMinute,
	})

	var mirror taskUsecase.TaskMirror
	if cfg.TickTick.ClientID != "" && cfg.TickTick.RefreshToken != "" {
		mirror = ticktick.NewClient(ticktick.Config{
			ClientID:     cfg.TickTick.ClientID,
			ClientSecret: cfg.TickTick.ClientSecret,
			RefreshToken: cfg.TickTick.RefreshToken,
		})
		logger.Info(ctx, "TickTick mirror initialized")
	} else {
		logger.Info(ctx, "TickTick not configured, tasks stay local only")
	}

	var calUC calendar.UseCase
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calUC = calendarUC.New(logger, calClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Domains
	taskUC := taskUsecase.New(logger, taskRepo, mirror)

	extractor := intent.NewExtractor(logger, llmClient)
	var events intent.EventCreator
	if calUC != nil {
		events = calUC
	}
	dispatcher := intent.NewDispatcher(logger, taskUC, events, dateParser)

	promptUC := promptUsecase.New(logger, promptRepo, extractor, dispatcher)

	// 7. Scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(logger, promptUC, scheduler.Config{
			DailySpec:   cfg.Scheduler.DailySpec,
			WeeklySpec:  cfg.Scheduler.WeeklySpec,
			MonthlySpec: cfg.Scheduler.MonthlySpec,
		})
		if err := sched.Start(); err != nil {
			logger.Fatalf(ctx, "Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUC:          taskUC,
		PromptUC:        promptUC,
		CalendarUC:      calUC,
		PipelineTimeout: cfg.Pipeline.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
