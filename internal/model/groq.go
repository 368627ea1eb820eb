package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chronicle-hq/digital-chronicler/pkg/httpclient"
	"github.com/go-resty/resty/v2"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Options configures a GroqClient.
type Options struct {
	Token      string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// GroqClient calls the Groq OpenAI-compatible chat completions endpoint.
// Timeout and retry policy live on the transport; Generate itself stays a
// single logical call.
type GroqClient struct {
	client  *resty.Client
	baseURL string
	token   string
	model   string
}

// NewGroqClient builds a client for the given credential and model.
func NewGroqClient(opts Options) (*GroqClient, error) {
	if strings.TrimSpace(opts.Token) == "" {
		return nil, errors.New("groq api token is required")
	}
	if strings.TrimSpace(opts.Model) == "" {
		return nil, errors.New("groq model is required")
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}

	return &GroqClient{
		client:  httpclient.NewWithRetry(opts.Timeout, opts.MaxRetries, opts.RetryDelay),
		baseURL: baseURL,
		token:   opts.Token,
		model:   opts.Model,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt and returns the generated text.
func (g *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt is empty")
	}

	var out chatResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.token).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{
			Model:    g.model,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&out).
		Post(g.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("groq response status %d: %s", resp.StatusCode(), bodySnippet(resp.Body()))
	}
	if len(out.Choices) == 0 {
		return "", errors.New("groq response contains no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func bodySnippet(body []byte) string {
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
