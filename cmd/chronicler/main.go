package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chronicle-hq/digital-chronicler/internal/chronicler"
	"github.com/chronicle-hq/digital-chronicler/internal/config"
	"github.com/chronicle-hq/digital-chronicler/internal/domain"
	"github.com/chronicle-hq/digital-chronicler/internal/logger"
	"github.com/chronicle-hq/digital-chronicler/pkg/sinks"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chronicler start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "optional config file (YAML/JSON)")
		mode       = flag.String("mode", "cycle", "operation to run: cycle, input, or similar")
		title      = flag.String("title", "", "article title for input mode")
		topic      = flag.String("topic", "general", "article topic for input mode")
		content    = flag.String("content", "", "article content for input mode")
		seed       = flag.String("seed", "", "seed label for similar mode")
		sinksFile  = flag.String("sinks", "", "sinks registry file (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chron, err := chronicler.NewFromConfig(cfg, log)
	if err != nil {
		return fmt.Errorf("init chronicler: %w", err)
	}

	fanout, err := buildFanout(ctx, cfg, *sinksFile, log)
	if err != nil {
		return fmt.Errorf("build sinks: %w", err)
	}
	defer fanout.Close()

	var (
		operation string
		articles  []domain.Article
	)
	switch *mode {
	case "cycle":
		operation = "run_cycle"
		articles, err = chron.RunCycle(ctx)
	case "input":
		if *title == "" && *content == "" {
			return errors.New("input mode requires -title or -content")
		}
		operation = "direct_input"
		var article domain.Article
		article, err = chron.ProcessDirectInput(ctx, *title, *topic, *content)
		if err == nil {
			articles = []domain.Article{article}
		}
	case "similar":
		if *seed == "" {
			return errors.New("similar mode requires -seed")
		}
		operation = "similar_articles"
		articles, err = chron.GenerateSimilar(ctx, *seed)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	for _, article := range articles {
		delivered, err := fanout.Deliver(ctx, sinks.NewEvent(operation, article))
		if err != nil {
			log.ErrorObj("sink delivery incomplete", "delivery_error", map[string]any{
				"title":     article.GeneratedTitle,
				"delivered": delivered,
				"error":     err.Error(),
			})
		}
	}

	log.InfoObj("chronicler finished", "stats", chron.Stats())
	return nil
}

// buildFanout resolves the sink set: an explicit registry file when given,
// otherwise a single file sink at the configured output directory.
func buildFanout(ctx context.Context, cfg *config.Config, sinksFile string, log logger.Logger) (*sinks.Fanout, error) {
	path := sinksFile
	if path == "" {
		path = cfg.SinksFile
	}

	if path == "" {
		fileSink, err := sinks.NewFileSink("output", cfg.OutputDirectory, cfg.OutputFormat)
		if err != nil {
			return nil, err
		}
		return sinks.NewFanout([]sinks.Sink{fileSink}), nil
	}

	reg, err := sinks.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load sinks registry: %w", err)
	}
	enabled := reg.Enabled()
	if len(enabled) == 0 {
		return nil, errors.New("no sinks enabled")
	}

	built, err := sinks.BuildAll(ctx, sinks.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, err
	}
	log.InfoObj("sinks registry loaded", "sinks_meta", map[string]any{
		"count": len(built),
	})
	return sinks.NewFanout(built), nil
}
