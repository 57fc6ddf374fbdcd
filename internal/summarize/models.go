package summarize

import (
	"errors"

	"github.com/suenkler-ai/scraper-summarizer/internal/common"
	"github.com/suenkler-ai/scraper-summarizer/models"
	"github.com/suenkler-ai/scraper-summarizer/pkg/browser"
	"github.com/suenkler-ai/scraper-summarizer/pkg/summarizer"
)

// Options holds the per-run knobs resolved from CLI flags.
type Options struct {
	RawURL         string
	Engine         string // browser | http
	OutputPath     string
	Language       string // forces summary language when set
	DetectLanguage bool   // prefix output with the detected language
	ForceFetch     bool
}

// Outcome is the result of one pipeline run.
type Outcome struct {
	EncodedURL string
	Engine     string // engine actually used; "cache" on a cache hit
	Title      string
	Language   string
	WordCount  int
	Summary    string
}

// errorType maps a pipeline error onto the stable identifier stored in
// run history and logged for the user.
func errorType(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, models.ErrMissingAPIKey):
		return "configuration_error"
	case errors.Is(err, browser.ErrFetchTimeout):
		return "fetch_timeout"
	case errors.Is(err, browser.ErrNetwork):
		return "network_error"
	case errors.Is(err, browser.ErrDriver):
		return "driver_error"
	case errors.Is(err, summarizer.ErrEmptyContent):
		return "empty_content"
	case errors.Is(err, summarizer.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, summarizer.ErrSummarization):
		return "summarization_failed"
	default:
		return "unknown"
	}
}

// errorStage names the pipeline stage an error belongs to, for the
// user-facing failure message.
func errorStage(err error) string {
	switch errorType(err) {
	case "invalid_url":
		return "url encoding"
	case "configuration_error":
		return "configuration"
	case "fetch_timeout", "network_error", "driver_error":
		return "page fetch"
	case "empty_content":
		return "text extraction"
	case "empty_response", "summarization_failed":
		return "summarization"
	default:
		return "pipeline"
	}
}
