package chronicler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronicle-hq/digital-chronicler/internal/config"
	"github.com/chronicle-hq/digital-chronicler/internal/domain"
	"github.com/chronicle-hq/digital-chronicler/internal/logger"
	"github.com/chronicle-hq/digital-chronicler/internal/memory"
	"github.com/chronicle-hq/digital-chronicler/internal/model"
)

const directInputSource = "Direct Input"

// Chronicler orchestrates article generation. It owns the configuration, the
// model generator, and the run counters. All operations are sequential; the
// generator is the only collaborator that performs I/O.
type Chronicler struct {
	cfg *config.Config
	gen model.Generator
	mem *memory.Memory
	log logger.Logger

	startTime          time.Time
	articlesGenerated  int
	articlesResearched int
	generated          []domain.Article
	researched         []domain.Article
}

// New builds a chronicler from its collaborators.
func New(cfg *config.Config, gen model.Generator, mem *memory.Memory, log logger.Logger) (*Chronicler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if gen == nil {
		gen = model.Unconfigured{}
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if mem == nil {
		mem = memory.New(cfg, log)
	}

	return &Chronicler{
		cfg:       cfg,
		gen:       gen,
		mem:       mem,
		log:       log,
		startTime: time.Now(),
	}, nil
}

// NewFromConfig builds a chronicler whose generator variant follows the
// configured credentials.
func NewFromConfig(cfg *config.Config, log logger.Logger) (*Chronicler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	mem := memory.New(cfg, log)
	if cfg.ResetMemory {
		mem.Reset()
	}

	c, err := New(cfg, model.FromConfig(cfg, log), mem, log)
	if err != nil {
		return nil, err
	}
	log.InfoObj("chronicler initialized", "chronicler_state", map[string]any{
		"model":  cfg.PrimaryModel,
		"topics": cfg.TopicsOfInterest,
	})
	return c, nil
}

// RunCycle runs a complete demonstration cycle of news generation. It needs
// no external services and acts as a smoke-test path for the record shape.
func (c *Chronicler) RunCycle(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	articles := []domain.Article{
		{
			GeneratedTitle:      "AI Revolution in News Generation",
			GeneratedContent:    "The Digital Chronicler represents a new era in automated journalism, where artificial intelligence transforms raw news data into compelling narratives. This innovative platform demonstrates the potential of AI to enhance rather than replace human journalism.",
			Topic:               "technology",
			SourceName:          "Demo Source",
			URL:                 "https://example.com",
			GenerationTimestamp: timestamp(),
		},
	}

	c.articlesGenerated += len(articles)
	c.generated = append(c.generated, articles...)

	c.log.InfoObj("demonstration cycle completed", "cycle_result", map[string]any{
		"articles_count":    len(articles),
		"generated_to_date": c.articlesGenerated,
	})
	return articles, nil
}

// ProcessDirectInput turns direct user input into an article. Without a
// configured generator it synthesizes a templated record locally; with one,
// the generation must succeed or the operation fails.
func (c *Chronicler) ProcessDirectInput(ctx context.Context, title, topic, content string) (domain.Article, error) {
	prompt := model.BuildDirectInputPrompt(model.PromptOptions{
		WritingStyle:    c.cfg.WritingStyle,
		ArticleLength:   c.cfg.ArticleLength,
		IncludeQuotes:   c.cfg.IncludeQuotes,
		IncludeAnalysis: c.cfg.IncludeAnalysis,
	}, title, topic, content)

	generated, err := c.gen.Generate(ctx, prompt)
	if errors.Is(err, model.ErrUnavailable) {
		article := domain.Article{
			GeneratedTitle:      fmt.Sprintf("Custom Article: %s", title),
			GeneratedContent:    fmt.Sprintf("**%s**\n\n%s\n\nThis article was created using the Digital Chronicler platform.", title, content),
			Topic:               topic,
			SourceName:          directInputSource,
			GenerationTimestamp: timestamp(),
		}
		c.generated = append(c.generated, article)
		return article, nil
	}
	if err != nil {
		c.log.ErrorObj("direct input processing failed", "direct_input_error", map[string]any{
			"title": title,
			"topic": topic,
			"error": err.Error(),
		})
		return domain.Article{}, fmt.Errorf("process direct input: %w", err)
	}

	article := domain.Article{
		GeneratedTitle:      title,
		GeneratedContent:    generated,
		Topic:               topic,
		SourceName:          directInputSource,
		GenerationTimestamp: timestamp(),
	}
	c.generated = append(c.generated, article)
	return article, nil
}

// GenerateSimilar produces demonstration articles related to the given seed
// label. The seed doubles as the search query echoed on each record.
func (c *Chronicler) GenerateSimilar(ctx context.Context, seed string) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	articles := []domain.Article{
		{
			GeneratedTitle:      fmt.Sprintf("Related Story: %s Analysis", seed),
			GeneratedContent:    fmt.Sprintf("This article explores topics related to '%s' and provides additional context and analysis on the subject matter.", seed),
			Topic:               "general",
			SourceName:          "Similar Articles Search",
			URL:                 "https://example.com",
			GenerationTimestamp: timestamp(),
			SearchQuery:         seed,
		},
	}

	c.researched = append(c.researched, articles...)
	return articles, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
