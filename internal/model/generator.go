package model

import (
	"context"
	"errors"

	"github.com/chronicle-hq/digital-chronicler/internal/config"
	"github.com/chronicle-hq/digital-chronicler/internal/logger"
)

// ErrUnavailable signals that no working model client is configured. Callers
// branch on it with errors.Is to fall back to non-AI behavior.
var ErrUnavailable = errors.New("model generator unavailable")

// Generator is the boundary around a single external text-generation call.
// Implementations come in two variants: a configured client wrapping a real
// endpoint, and Unconfigured, which always reports unavailability.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unconfigured is the null generator used when no credential is present.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

// FromConfig builds the generator variant matching the configuration: a Groq
// client when a credential is available, Unconfigured otherwise. Construction
// failures degrade to Unconfigured after logging.
func FromConfig(cfg *config.Config, log logger.Logger) Generator {
	if log == nil {
		log = &logger.NopLogger{}
	}

	token := cfg.CurrentToken()
	if token == "" {
		return Unconfigured{}
	}

	client, err := NewGroqClient(Options{
		Token:      token,
		Model:      cfg.PrimaryModel,
		Timeout:    cfg.RequestTimeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		log.ErrorObj("model client setup failed", "model_error", map[string]any{
			"model": cfg.PrimaryModel,
			"error": err.Error(),
		})
		return Unconfigured{}
	}

	log.InfoObj("model client initialized", "model", cfg.PrimaryModel)
	return client
}
