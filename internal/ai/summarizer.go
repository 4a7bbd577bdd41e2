package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arnobrizwan/intellinote-app/internal/config"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// Sentinel summaries persisted when the capability cannot produce a real one.
const (
	SummaryUnconfigured = "OpenAI API key not configured."
	SummaryUnavailable  = "Summary not available."
)

const systemPrompt = "You are a helpful assistant that summarizes user notes."

// Result is the outcome of a summarization call. Text is always usable as a
// summary to persist; Err records why a sentinel was returned, if any.
type Result struct {
	Text string
	Err  error
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Summarizer calls the OpenAI chat completion API with a bounded request.
type Summarizer struct {
	client      *resty.Client
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

func NewSummarizer(cfg config.Config) *Summarizer {
	client := resty.New().
		SetBaseURL(cfg.OpenAIBaseURL).
		SetTimeout(cfg.OpenAITimeout)

	return &Summarizer{
		client:      client,
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.ChatGPTModel,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Summarize produces a summary of text. It never fails its caller: when the
// API key is missing or the call errors for any reason (network, timeout,
// quota, malformed response) the Result carries a fixed sentinel instead.
func (s *Summarizer) Summarize(ctx context.Context, text string) Result {
	if s.apiKey == "" {
		return Result{Text: SummaryUnconfigured, Err: fmt.Errorf("summarizer: no API key")}
	}

	body := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Summarize the following text:\n\n" + text},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	var parsed chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetBody(body).
		SetResult(&parsed).
		SetError(&parsed).
		Post("/v1/chat/completions")

	switch {
	case err != nil:
		return s.degraded(fmt.Errorf("summarizer: request failed: %w", err))
	case resp.IsError():
		if parsed.Error != nil {
			return s.degraded(fmt.Errorf("summarizer: API error %d: %s", resp.StatusCode(), parsed.Error.Message))
		}
		return s.degraded(fmt.Errorf("summarizer: API error %d", resp.StatusCode()))
	case len(parsed.Choices) == 0:
		return s.degraded(fmt.Errorf("summarizer: response carried no choices"))
	}

	summary := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if summary == "" {
		return s.degraded(fmt.Errorf("summarizer: response carried an empty summary"))
	}

	return Result{Text: summary}
}

func (s *Summarizer) degraded(err error) Result {
	logger.Log.Error().Err(err).Msg("Summarization failed")
	return Result{Text: SummaryUnavailable, Err: err}
}
