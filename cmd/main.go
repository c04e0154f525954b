package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdigest/internal/config"
	"newsdigest/internal/gemini"
	"newsdigest/internal/newsapi"
	"newsdigest/internal/output"
	"newsdigest/internal/pipeline"
	"newsdigest/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A missing .env is fine; CI supplies the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WarnContext(ctx, "Failed to load .env file",
			"error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		os.Exit(1)
	}

	source := newsapi.NewClient(newsapi.Config{
		APIKey: cfg.NewsAPIKey,
	}, log.With("component", "newsapi"))

	summarizer := gemini.NewClient(gemini.Config{
		APIKey: cfg.GeminiAPIKey,
	}, log.With("component", "gemini"))

	writer := output.NewWriter(cfg.OutputPath, log.With("component", "output"))

	pipe := pipeline.New(pipeline.Deps{
		Source:     source,
		Summarizer: summarizer,
		Writer:     writer,
		Query:      cfg.Keywords,
		PageSize:   cfg.PageSize,
		Log:        log.With("component", "pipeline"),
	})

	if cfg.CronSpec == "" {
		doc, runErr := pipe.Run(ctx)
		if runErr != nil {
			log.ErrorContext(ctx, "Run failed",
				"error", runErr,
				"outputPath", cfg.OutputPath)

			os.Exit(1)
		}

		log.InfoContext(ctx, "Run finished",
			"outputPath", cfg.OutputPath,
			"articleCount", len(doc.Articles),
			"elapsedSeconds", time.Since(start).Seconds())

		return
	}

	job := func(jobCtx context.Context) error {
		_, jobErr := pipe.Run(jobCtx)
		return jobErr
	}

	sched := scheduler.New(ctx, cfg.CronSpec, job, log.With("component", "scheduler"))
	if err = sched.Start(); err != nil {
		log.ErrorContext(ctx, "Failed to start scheduler",
			"error", err,
			"spec", cfg.CronSpec)

		os.Exit(1)
	}
	defer sched.Stop()
	log.InfoContext(ctx, "Scheduler is started",
		"spec", cfg.CronSpec,
		"timezone", scheduler.Timezone)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	cancel()

	log.InfoContext(ctx, "Exiting...",
		"signal", sig.String(),
		"uptimeSeconds", time.Since(start).Seconds())
}
