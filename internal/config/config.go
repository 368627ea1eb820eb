package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Credentials. GroqAPITokens is assembled from GROQ_API_KEY plus the
	// comma-separated GROQ_API_TOKENS list; rotation cycles through it.
	GroqAPITokens []string `mapstructure:"-"`
	NewsAPIKey    string   `mapstructure:"news_api_key"`
	SerperAPIKey  string   `mapstructure:"serper_api_key"`

	PrimaryModel string `mapstructure:"primary_model"`
	BackupModel  string `mapstructure:"backup_model"`

	// Content parameters. Style and length are free-form strings; no enum
	// validation is enforced.
	TopicsOfInterest []string `mapstructure:"topics_of_interest"`
	WritingStyle     string   `mapstructure:"writing_style"`
	ArticleLength    string   `mapstructure:"article_length"`
	IncludeQuotes    bool     `mapstructure:"include_quotes"`
	IncludeAnalysis  bool     `mapstructure:"include_analysis"`

	MaxArticlesToFetch    int           `mapstructure:"max_articles_to_fetch"`
	MaxArticlesToGenerate int           `mapstructure:"max_articles_to_generate"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	MaxRetries            int           `mapstructure:"max_retries"`
	RetryDelaySeconds     int64         `mapstructure:"retry_delay"`
	RetryDelay            time.Duration `mapstructure:"-"`

	OutputDirectory string `mapstructure:"output_directory"`
	SaveSourceData  bool   `mapstructure:"save_source_data"`
	OutputFormat    string `mapstructure:"output_format"`
	SinksFile       string `mapstructure:"sinks_file"`

	MemoryFile       string `mapstructure:"memory_file"`
	MemoryExpiryDays int    `mapstructure:"memory_expiry_days"`
	ResetMemory      bool   `mapstructure:"reset_memory"`

	// Feature flags. Declared for parity with the deployment surface; none
	// of them drive behavior yet.
	EnableSentimentAnalysis bool `mapstructure:"enable_sentiment_analysis"`
	EnableTopicClustering   bool `mapstructure:"enable_topic_clustering"`
	EnableSummarization     bool `mapstructure:"enable_summarization"`
	EnableRelatedStories    bool `mapstructure:"enable_related_stories"`
	EnableImageExtraction   bool `mapstructure:"enable_image_extraction"`

	tokenIndex int
}

// Load reads configuration from environment variables and, when path is
// non-empty, the given config file. File values sit below environment values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "digital-chronicler")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "chronicler.log")

	v.SetDefault("groq_api_key", "")
	v.SetDefault("groq_api_tokens", "")
	v.SetDefault("news_api_key", "")
	v.SetDefault("serper_api_key", "")

	v.SetDefault("primary_model", "llama-3.3-70b-versatile")
	v.SetDefault("backup_model", "mistral-saba-24b")

	v.SetDefault("topics_of_interest", []string{"technology", "science", "politics", "business"})
	v.SetDefault("writing_style", "literary")
	v.SetDefault("article_length", "short")
	v.SetDefault("include_quotes", true)
	v.SetDefault("include_analysis", true)

	v.SetDefault("max_articles_to_fetch", 5)
	v.SetDefault("max_articles_to_generate", 2)
	v.SetDefault("request_timeout", 30) // seconds
	v.SetDefault("max_retries", 3)
	v.SetDefault("retry_delay", 2) // seconds

	v.SetDefault("output_directory", "generated_chronicles")
	v.SetDefault("save_source_data", true)
	v.SetDefault("output_format", "markdown")
	v.SetDefault("sinks_file", "")

	v.SetDefault("memory_file", "chronicler_memory.json")
	v.SetDefault("memory_expiry_days", 7)
	v.SetDefault("reset_memory", false)

	v.SetDefault("enable_sentiment_analysis", true)
	v.SetDefault("enable_topic_clustering", true)
	v.SetDefault("enable_summarization", true)
	v.SetDefault("enable_related_stories", true)
	v.SetDefault("enable_image_extraction", false)

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.GroqAPITokens = assembleTokens(v.GetString("groq_api_key"), v.GetString("groq_api_tokens"))

	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = 30
	}
	if cfg.RetryDelaySeconds < 0 {
		cfg.RetryDelaySeconds = 0
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	cfg.RetryDelay = time.Duration(cfg.RetryDelaySeconds) * time.Second

	return &cfg, nil
}

// assembleTokens merges the primary key and the comma-separated extras,
// dropping empties.
func assembleTokens(primary, extras string) []string {
	var tokens []string
	if t := strings.TrimSpace(primary); t != "" {
		tokens = append(tokens, t)
	}
	for _, raw := range strings.Split(extras, ",") {
		if t := strings.TrimSpace(raw); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// CurrentToken returns the credential at the current rotation index, or an
// empty string when no credentials are configured. It never fails.
func (c *Config) CurrentToken() string {
	if len(c.GroqAPITokens) == 0 {
		return ""
	}
	return c.GroqAPITokens[c.tokenIndex]
}

// RotateToken advances to the next credential when more than one is
// configured and returns the new current credential. With zero or one
// credentials it is a no-op.
func (c *Config) RotateToken() string {
	if len(c.GroqAPITokens) > 1 {
		c.tokenIndex = (c.tokenIndex + 1) % len(c.GroqAPITokens)
	}
	return c.CurrentToken()
}
