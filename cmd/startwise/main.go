// Package main is the StartWise CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/startwise/startwise/internal/cli"
	"github.com/startwise/startwise/internal/config"
	"github.com/startwise/startwise/internal/corpus"
	"github.com/startwise/startwise/internal/llm"
	"github.com/startwise/startwise/internal/models"
	"github.com/startwise/startwise/internal/search"
	"github.com/startwise/startwise/internal/server"
	"github.com/startwise/startwise/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/startwise/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Missing files fall back to pure defaults so the CLI works with
// no config at all.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, err := os.Getwd(); err == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			var cfg config.Config
			config.ApplyDefaults(&cfg)
			return &cfg, nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "ask":
		runAsk()
	case "discover":
		runDiscover()
	case "version", "--version", "-v":
		fmt.Printf("startwise version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`startwise - startup discovery and analysis engine

Usage:
  startwise server   [-config path] [-debug]         start the HTTP API server
  startwise search   [-config path] <query>          search the startup corpus
  startwise ask      [-config path] <question>       ask a question (search + model answer)
  startwise discover [-config path] <idea>           find startups similar to an idea
  startwise version                                  print version
`)
}

type components struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *corpus.Store
	engine   *search.Engine
	pipeline *search.Pipeline
}

// initComponents builds the store, engine, and pipeline shared by every
// subcommand. The model client is optional: when the Ollama server is
// unreachable the pipeline degrades to synthesized answers.
func initComponents(configPath string, debug bool) (*components, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store := corpus.NewStore(cfg.Corpus.Path, logger)
	if err := store.Load(); err != nil {
		return nil, err
	}

	engine := search.NewEngine(store, &cfg.Scoring, logger)

	generator, err := llm.NewOllamaGenerator(
		cfg.LLM.URL,
		cfg.LLM.Model,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}
	pipeline := search.NewPipeline(engine, generator, logger)

	return &components{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		engine:   engine,
		pipeline: pipeline,
	}, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	c, err := initComponents(*configPath, *debug)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	logger := c.logger
	defer logger.Sync()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if c.cfg.Corpus.Watch {
		w := corpus.NewWatcher(c.store, logger)
		if err := w.Start(watchCtx); err != nil {
			logger.Warn("corpus watch unavailable", zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	srv := server.NewServer(c.pipeline, c.engine, c.store, &c.cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	maxResults := fs.Int("limit", 5, "number of results")
	threshold := fs.Float64("threshold", 0, "minimum relevance score (0 = default)")
	category := fs.String("category", "", "filter by category")
	source := fs.String("source", "", "filter by source")
	asJSON := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(os.Args[2:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Println("Usage: startwise search [flags] <query>")
		os.Exit(1)
	}

	c, err := initComponents(*configPath, false)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.logger.Sync()

	result := c.engine.Search(&models.SearchQuery{
		Query:          query,
		MaxResults:     *maxResults,
		Threshold:      *threshold,
		CategoryFilter: *category,
		SourceFilter:   *source,
	})

	if err := cli.WriteSearchResult(os.Stdout, result, outputFormat(*asJSON)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func outputFormat(asJSON bool) cli.OutputFormat {
	if asJSON {
		return cli.OutputJSON
	}
	return cli.OutputText
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	maxResults := fs.Int("limit", 5, "number of supporting results")
	asJSON := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(os.Args[2:])

	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		fmt.Println("Usage: startwise ask [flags] <question>")
		os.Exit(1)
	}

	c, err := initComponents(*configPath, false)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.logger.Sync()

	answer := c.pipeline.Ask(context.Background(), &models.SearchQuery{
		Query:      question,
		MaxResults: *maxResults,
	})

	if err := cli.WriteAnswer(os.Stdout, answer, outputFormat(*asJSON)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func runDiscover() {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	maxResults := fs.Int("limit", 5, "number of similar startups")
	asJSON := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(os.Args[2:])

	idea := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if idea == "" {
		fmt.Println("Usage: startwise discover [flags] <idea>")
		os.Exit(1)
	}

	c, err := initComponents(*configPath, false)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.logger.Sync()

	analysis := c.pipeline.AnalyzeIdea(context.Background(), &models.IdeaQuery{
		Idea:       idea,
		MaxResults: *maxResults,
	})

	if err := cli.WriteDiscovery(os.Stdout, analysis, outputFormat(*asJSON)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}
