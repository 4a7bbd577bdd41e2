package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Arnobrizwan/intellinote-app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: baseURL,
		ChatGPTModel:  "gpt-3.5-turbo",
		MaxTokens:     200,
		Temperature:   0.5,
		OpenAITimeout: 2 * time.Second,
	}
}

func TestSummarizeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  A short summary.  "}}]}`))
	}))
	defer srv.Close()

	s := NewSummarizer(testConfig(srv.URL))
	result := s.Summarize(context.Background(), "long note content")

	assert.NoError(t, result.Err)
	assert.Equal(t, "A short summary.", result.Text)
}

func TestSummarizeWithoutAPIKey(t *testing.T) {
	cfg := testConfig("http://localhost:0")
	cfg.OpenAIAPIKey = ""

	s := NewSummarizer(cfg)
	result := s.Summarize(context.Background(), "anything")

	assert.Equal(t, SummaryUnconfigured, result.Text)
	assert.Error(t, result.Err)
}

func TestSummarizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	s := NewSummarizer(testConfig(srv.URL))
	result := s.Summarize(context.Background(), "anything")

	assert.Equal(t, SummaryUnavailable, result.Text)
	assert.Error(t, result.Err)
}

func TestSummarizeMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	s := NewSummarizer(testConfig(srv.URL))
	result := s.Summarize(context.Background(), "anything")

	assert.Equal(t, SummaryUnavailable, result.Text)
	assert.Error(t, result.Err)
}

func TestSummarizeUnreachableServer(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")

	s := NewSummarizer(cfg)
	result := s.Summarize(context.Background(), "anything")

	assert.Equal(t, SummaryUnavailable, result.Text)
	assert.Error(t, result.Err)
}

func TestSummarizeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"too late"}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.OpenAITimeout = 50 * time.Millisecond

	s := NewSummarizer(cfg)
	result := s.Summarize(context.Background(), "anything")

	assert.Equal(t, SummaryUnavailable, result.Text)
	assert.Error(t, result.Err)
}
