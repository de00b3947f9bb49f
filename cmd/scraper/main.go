package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"copenhagen-vendor-scraper/internal/config"
	"copenhagen-vendor-scraper/internal/crawler"
	"copenhagen-vendor-scraper/internal/store"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	var (
		configFlag  = flag.String("config", "", "Path to YAML configuration file")
		urlsFlag    = flag.String("urls", "", "Comma-separated start URLs (overrides config)")
		outputFlag  = flag.String("output", "", "Output JSON file path (overrides config)")
		sqliteFlag  = flag.String("sqlite", "", "SQLite secondary sink path (overrides config)")
		delayFlag   = flag.Duration("delay", 0, "Delay between requests (overrides config)")
		timeoutFlag = flag.Duration("run-timeout", 30*time.Minute, "Overall run timeout")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	// Load configuration, then apply flag overrides.
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			logger.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *urlsFlag != "" {
		cfg.Crawler.StartURLs = nil
		for _, u := range strings.Split(*urlsFlag, ",") {
			if u = strings.TrimSpace(u); u != "" {
				cfg.Crawler.StartURLs = append(cfg.Crawler.StartURLs, u)
			}
		}
	}
	if *outputFlag != "" {
		cfg.Output.Path = *outputFlag
	}
	if *sqliteFlag != "" {
		cfg.Sinks.SQLitePath = *sqliteFlag
	}
	if *delayFlag > 0 {
		cfg.Crawler.RequestDelayMs = int(*delayFlag / time.Millisecond)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	// Log level: LOG_LEVEL env wins, then -verbose, then config.
	switch {
	case os.Getenv("LOG_LEVEL") != "":
		if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			logger.SetLevel(level)
		}
	case *verbose:
		logger.SetLevel(logrus.DebugLevel)
	default:
		if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
			logger.SetLevel(level)
		}
	}

	st := store.New(cfg.Output.Path, logger)
	st.Load()

	if cfg.Sinks.SQLitePath != "" {
		sink, err := store.OpenSQLite(cfg.Sinks.SQLitePath)
		if err != nil {
			// The secondary sink is optional: failure to open it must not
			// abort the run.
			logger.Errorf("Failed to open SQLite sink: %v", err)
		} else {
			st.SetSecondary(sink)
			logger.Infof("SQLite sink enabled: %s", cfg.Sinks.SQLitePath)
		}
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	startTime := time.Now()
	logger.Infof("Starting crawl of %d start URLs", len(cfg.Crawler.StartURLs))

	c := crawler.New(cfg.Runtime(), st, logger)
	defer c.Close()
	c.Run(ctx, cfg.Crawler.StartURLs)

	logger.Infof("Crawl completed in %v, %d records collected", time.Since(startTime), st.Len())

	// The final flush is the only failure that must reach the operator: it
	// means the run's collected work was lost.
	if err := st.Flush(); err != nil {
		logger.Fatalf("Failed to flush store: %v", err)
	}
}
