package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"therapist-match/internal/domain/matching"
)

// Client submits a single-turn chat completion and returns the reply content.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

const (
	temperature = 0.7
	maxTokens   = 1000
)

type groqClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *log.Logger
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient builds a chat-completion client against an OpenAI-compatible
// endpoint (Groq). Returns nil when no base URL is configured.
func NewClient(cfg Config, logger *log.Logger) Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil
	}
	return &groqClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   strings.TrimSpace(cfg.Model),
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *groqClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("nil chat client")
	}
	endpoint := c.baseURL + "/chat/completions"

	body := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &matching.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[LLM] completion failed | endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return "", &matching.UpstreamError{Status: resp.StatusCode, Body: bodyStr}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &matching.UpstreamError{Message: "invalid completion response: " + err.Error()}
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", &matching.UpstreamError{Message: "invalid response format: missing content"}
	}

	return out.Choices[0].Message.Content, nil
}

var _ Client = (*groqClient)(nil)
