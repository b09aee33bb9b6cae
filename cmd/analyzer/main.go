package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/clients/newsapi"
	"github.com/aristath/pli-alpha/internal/clients/yahoo"
	"github.com/aristath/pli-alpha/internal/config"
	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/analysis"
	"github.com/aristath/pli-alpha/internal/modules/insights"
	"github.com/aristath/pli-alpha/internal/modules/tracker"
	"github.com/aristath/pli-alpha/internal/modules/universe"
	"github.com/aristath/pli-alpha/internal/scheduler"
	"github.com/aristath/pli-alpha/internal/server"
	"github.com/aristath/pli-alpha/pkg/logger"
)

func main() {
	live := flag.Bool("live", false, "use live market data instead of the static company set")
	updateReadme := flag.Bool("update-readme", false, "refresh the README from the latest snapshot after the run")
	serve := flag.Bool("serve", false, "expose the pipeline over HTTP instead of running once")
	schedule := flag.String("schedule", "", "cron expression for recurring runs, e.g. \"30 9 * * MON-FRI\"")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting PLI Alpha Generator")

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directories")
	}

	// Expert overlay: shipped config asset, compiled-in defaults otherwise
	ins, err := insights.Load(cfg.InsightsPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load expert insights")
	}

	news := newsapi.NewClient(cfg.NewsAPIKey, cfg.NewsLookback, log)
	static := universe.NewStaticProvider()
	liveProvider := universe.NewLiveProvider(yahoo.NewClient(log), nil, log)

	svc := analysis.New(cfg, news, static, liveProvider, ins, log)

	variant := domain.VariantStatic
	if *live {
		variant = domain.VariantLive
	}

	var updater *tracker.Updater
	if *updateReadme {
		updater = tracker.NewUpdater(cfg, log)
	}

	switch {
	case *serve:
		runServer(cfg, svc, log)
	case *schedule != "":
		runScheduled(*schedule, svc, variant, updater, log)
	default:
		job := scheduler.NewAnalysisJob(svc, variant, updater, log)
		if err := job.Run(); err != nil {
			log.Fatal().Err(err).Msg("Analysis run failed")
		}
	}
}

// runServer blocks until SIGINT/SIGTERM, then shuts down gracefully.
func runServer(cfg *config.Config, svc *analysis.Service, log zerolog.Logger) {
	srv := server.New(cfg, svc, log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// runScheduled registers the analysis job on the given cron expression
// and blocks until interrupted.
func runScheduled(schedule string, svc *analysis.Service, variant domain.Variant, updater *tracker.Updater, log zerolog.Logger) {
	sched := scheduler.New(log)

	job := scheduler.NewAnalysisJob(svc, variant, updater, log)
	if err := sched.AddJob(schedule, job); err != nil {
		log.Fatal().Err(err).Msg("Failed to register analysis job")
	}

	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
