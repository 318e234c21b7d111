package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/postwise/seoscope/pkg/config"
	"github.com/postwise/seoscope/pkg/content"
	"github.com/postwise/seoscope/pkg/llm"
	"github.com/postwise/seoscope/pkg/repository"
	"github.com/postwise/seoscope/pkg/scheduler"
	"github.com/postwise/seoscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug)

	log.Printf("[INFO] starting seoscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads the configuration, wires dependencies and runs the server until
// the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// keep provider keys out of log output
	var secrets []string
	for _, p := range cfg.Providers {
		if p.APIKey != "" {
			secrets = append(secrets, p.APIKey)
		}
	}
	SetupLog(opts.Debug, secrets...)

	repos, err := repository.NewRepositories(ctx, dbConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close storage: %v", closeErr)
		}
	}()

	suggestCfg := cfg.GetSuggestConfig()
	orchestrator := llm.NewOrchestrator(suggestCfg.Timeout, suggestCfg.Retries)

	var extractor server.Extractor
	if extCfg := cfg.GetExtractionConfig(); extCfg.Enabled {
		extractor = content.NewHTTPExtractor(extCfg.Timeout, extCfg.UserAgent, extCfg.MinTextLength)
		log.Printf("[INFO] page extraction enabled")
	}

	store := server.NewRepositoryAdapter(repos)

	if schedCfg := cfg.GetSchedulerConfig(); schedCfg.Enabled {
		sched := scheduler.New(store, scheduler.Config{
			Interval:   schedCfg.Interval,
			BatchSize:  schedCfg.BatchSize,
			MaxWorkers: schedCfg.MaxWorkers,
		})
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, store, orchestrator, extractor, revision, opts.Debug)
	return srv.Run(ctx)
}

// dbConfig maps the database section onto repository settings. The config
// keeps conn_max_lifetime in seconds.
func dbConfig(cfg *config.Config) repository.Config {
	return repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	}
}

// SetupLog configures the logger, optionally masking secrets in output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
