// Package summarize implements the fetch, extract and summarize pipeline
// behind the summarize command.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/suenkler-ai/scraper-summarizer/internal/common"
	"github.com/suenkler-ai/scraper-summarizer/models"
	"github.com/suenkler-ai/scraper-summarizer/pkg/browser"
	"github.com/suenkler-ai/scraper-summarizer/pkg/caching"
	"github.com/suenkler-ai/scraper-summarizer/pkg/db"
	"github.com/suenkler-ai/scraper-summarizer/pkg/detector"
	"github.com/suenkler-ai/scraper-summarizer/pkg/fetcher"
	"github.com/suenkler-ai/scraper-summarizer/pkg/normalizer"
	"github.com/suenkler-ai/scraper-summarizer/pkg/parser"
	"github.com/suenkler-ai/scraper-summarizer/pkg/storage"
	"github.com/suenkler-ai/scraper-summarizer/pkg/summarizer"
	"github.com/urfave/cli/v2"
)

const cacheDir = ".scraper-cache"

// Action is the CLI entry point for the summarize command.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	if c.IsSet("max-words") {
		cfg.MaxWords = c.Int("max-words")
	}
	if c.IsSet("timeout") {
		cfg.PageLoadTimeout = c.Duration("timeout")
	}

	// Fail fast on missing credentials, before any browser or network work.
	if err := cfg.RequireAPIKey(); err != nil {
		logger.Error("configuration error", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			return cli.Exit(err.Error(), 2)
		}
	}

	opts := Options{
		RawURL:         c.String("url"),
		Engine:         strings.ToLower(c.String("engine")),
		OutputPath:     c.String("output"),
		Language:       c.String("language"),
		DetectLanguage: c.Bool("detect-language"),
		ForceFetch:     c.Bool("force-fetch"),
	}
	if opts.Engine != "browser" && opts.Engine != "http" {
		logger.Error("unknown engine", "engine", opts.Engine)
		return cli.Exit(fmt.Sprintf("unknown engine %q (want browser or http)", opts.Engine), 2)
	}

	cache, err := caching.NewCache(cacheDir, maxAge)
	if err != nil {
		// Cache problems degrade to always-fetch, never abort the run.
		logger.Warn("cache unavailable", "error", err)
		cache = nil
	}

	outcome, runErr := run(c.Context, logger, cfg, cache, opts)

	recordRun(logger, opts, outcome, runErr, time.Since(startTime))

	if runErr != nil {
		logger.Error("run failed",
			"stage", errorStage(runErr),
			"error_type", errorType(runErr),
			"error", runErr,
		)
		return cli.Exit(fmt.Sprintf("%s failed: %v", errorStage(runErr), runErr), 1)
	}

	if err := writeResult(outcome, opts.OutputPath); err != nil {
		logger.Error("failed to write output", "error", err)
		return cli.Exit(err.Error(), 1)
	}
	if opts.OutputPath != "" {
		logger.Info("summary saved", "path", opts.OutputPath, "duration", time.Since(startTime).String())
	}
	return nil
}

// run executes the pipeline: encode, cache lookup, fetch, extract,
// normalize, detect language, summarize. Strictly sequential; the first
// failing stage aborts the run.
func run(ctx context.Context, logger *slog.Logger, cfg *models.Config, cache *caching.Cache, opts Options) (*Outcome, error) {
	encodedURL, err := common.EncodeURL(opts.RawURL)
	if err != nil {
		return nil, err
	}
	outcome := &Outcome{EncodedURL: encodedURL, Engine: opts.Engine}
	logger.Info("accessing URL", "url", encodedURL, "engine", opts.Engine)

	text, ok := cachedText(cache, encodedURL, opts.ForceFetch)
	if ok {
		logger.Info("cache hit", "url", encodedURL)
		outcome.Engine = "cache"
	} else {
		text, err = fetchAndExtract(ctx, logger, cfg, opts.Engine, encodedURL, outcome)
		if err != nil {
			return outcome, err
		}
		if cache != nil {
			if err := cache.SetText(encodedURL, text); err != nil {
				logger.Warn("failed to cache page text", "error", err)
			}
		}
	}

	text = normalizer.Normalize(text, cfg.MaxWords)
	outcome.WordCount = normalizer.WordCount(text)
	if text == "" {
		return outcome, fmt.Errorf("%w: page yielded no text", summarizer.ErrEmptyContent)
	}

	language := opts.Language
	if language == "" {
		if detection := detector.New().Detect(text); detection.Reliable {
			language = detection.Language
			logger.Info("language detected", "language", language, "confidence", detection.Confidence)
		} else {
			logger.Info("language detection unreliable, deferring to model")
		}
	}
	outcome.Language = language

	logger.Info("generating summary", "model", cfg.Model, "words", outcome.WordCount)
	client := summarizer.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model)
	summary, err := client.Summarize(ctx, summarizer.Input{Text: text, Language: language})
	if err != nil {
		return outcome, err
	}
	outcome.Summary = summary

	if opts.DetectLanguage && language != "" {
		outcome.Summary = fmt.Sprintf("Language: %s\n\n%s", language, summary)
	}
	return outcome, nil
}

// fetchAndExtract retrieves the rendered HTML with the selected engine and
// reduces it to plain text. The browser session is torn down on every path.
func fetchAndExtract(ctx context.Context, logger *slog.Logger, cfg *models.Config, engine, encodedURL string, outcome *Outcome) (string, error) {
	var html string
	var err error

	switch engine {
	case "http":
		f := fetcher.NewFetcher(cfg.PageLoadTimeout, cfg.UserAgent)
		html, err = f.FetchHTML(ctx, encodedURL)
	default:
		session := browser.NewSession(browser.Options{
			UserAgent:       cfg.UserAgent,
			ExtensionDir:    cfg.ExtensionDir,
			PageLoadTimeout: cfg.PageLoadTimeout,
		})
		defer session.Close()
		html, err = session.FetchHTML(ctx, encodedURL)
	}
	if err != nil {
		return "", err
	}

	page, err := (&parser.Parser{}).ExtractText(encodedURL, html)
	if err != nil {
		return "", fmt.Errorf("%w: %v", summarizer.ErrEmptyContent, err)
	}
	outcome.Title = page.Title
	logger.Info("text extracted", "title", page.Title, "chars", len(page.Text))
	return page.Text, nil
}

func cachedText(cache *caching.Cache, encodedURL string, forceFetch bool) (string, bool) {
	if cache == nil || forceFetch {
		return "", false
	}
	return cache.GetText(encodedURL)
}

// writeResult saves the summary to the output path (overwrite, atomic) or
// prints it between banner separators.
func writeResult(outcome *Outcome, outputPath string) error {
	if outputPath != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(outputPath, []byte(outcome.Summary)); err != nil {
			return err
		}
		fmt.Printf("Summary saved to %s\n", outputPath)
		return nil
	}

	fmt.Println("\n" + strings.Repeat("=", 50) + " SUMMARY " + strings.Repeat("=", 50))
	fmt.Println(outcome.Summary)
	fmt.Println(strings.Repeat("=", 109))
	return nil
}

// recordRun stores the invocation in the local history database. History
// failures are logged and otherwise ignored; they never fail the pipeline.
func recordRun(logger *slog.Logger, opts Options, outcome *Outcome, runErr error, elapsed time.Duration) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer database.Close()

	runRow := db.Run{
		URL:        opts.RawURL,
		Engine:     opts.Engine,
		Status:     "success",
		OutputPath: opts.OutputPath,
		DurationMS: elapsed.Milliseconds(),
	}
	if outcome != nil {
		runRow.URL = outcome.EncodedURL
		runRow.Engine = outcome.Engine
		runRow.Language = outcome.Language
		runRow.WordCount = outcome.WordCount
		runRow.Summary = outcome.Summary
	}
	if runErr != nil {
		runRow.Status = "failed"
		runRow.ErrorType = errorType(runErr)
		runRow.ErrorMessage = runErr.Error()
		runRow.Summary = ""
	}

	if _, err := database.InsertRun(runRow); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
