// Package summarizer requests summaries from an OpenAI-compatible
// inference endpoint.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrEmptyContent rejects empty input before any network call.
	ErrEmptyContent = errors.New("empty content")

	// ErrEmptyResponse indicates a well-formed completion with no text.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrSummarization wraps any remote failure: auth, rate limit,
	// transport, unexpected status.
	ErrSummarization = errors.New("summarization failed")
)

const (
	maxOutputTokens = 1024
	temperature     = 0.2
	topP            = 0.85
)

// Input describes one summary request.
type Input struct {
	// Text is the normalized page text. Must be non-empty.
	Text string
	// Language forces the summary language when set. Empty lets the
	// model answer in the language of the text.
	Language string
}

// Summarizer produces a summary for a block of text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

// Client talks to a hosted chat-completions endpoint.
type Client struct {
	client openai.Client
	model  string
}

// NewClient builds a summarizer client for the given endpoint and model.
// Extra request options (custom transport, retry policy) are passed
// through to the underlying SDK client.
func NewClient(apiKey, baseURL, model string, extra ...option.RequestOption) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	opts = append(opts, extra...)

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Summarize sends the text with a fixed instruction prompt and returns the
// first completion's content. Empty input fails fast with ErrEmptyContent,
// before any request is made.
func (c *Client) Summarize(ctx context.Context, input Input) (string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return "", ErrEmptyContent
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(text, input.Language)),
		},
		MaxTokens:   openai.Int(maxOutputTokens),
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(topP),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarization, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrEmptyResponse)
	}
	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", ErrEmptyResponse
	}
	return summary, nil
}

// buildPrompt assembles the fixed instruction prompt plus the text payload.
func buildPrompt(text, language string) string {
	var sb strings.Builder

	if language != "" {
		fmt.Fprintf(&sb, "Read the following text and summarize its content briefly and precisely in %s as continuous text. ", language)
		fmt.Fprintf(&sb, "Return only the summary in %s", language)
	} else {
		sb.WriteString("Detect the main language of the following text by word frequency, then summarize its content briefly and precisely in that language as continuous text. ")
		sb.WriteString("Return only the summary in that language")
	}
	sb.WriteString(" - no introduction, no original text, no explanation, no translation. ")
	sb.WriteString("Limit the summary to at most 300 words. ")
	sb.WriteString("Divide the summary into paragraphs separated by blank lines.\n\n")
	sb.WriteString("Text:\n")
	sb.WriteString(text)

	return sb.String()
}
