package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OpenAIConfig holds credentials and model names for text and image calls.
type OpenAIConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	ImageModel string `mapstructure:"image_model"`
	BaseURL    string `mapstructure:"base_url"`
}

// PixabayConfig controls the Pixabay image search provider.
type PixabayConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// DeepAIConfig controls the DeepAI text2img provider.
type DeepAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OpenverseConfig controls the Openverse image search provider.
type OpenverseConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ImagesConfig selects and configures illustration providers.
type ImagesConfig struct {
	Provider        string          `mapstructure:"provider"` // openai | deepai | pixabay | openverse
	OutputDir       string          `mapstructure:"output_dir"`
	WebPQuality     int             `mapstructure:"webp_quality"`
	DownloadRetries int             `mapstructure:"download_retries"`
	DownloadTimeout string          `mapstructure:"download_timeout"` // duration string, e.g., "30s"
	PromptTemplate  string          `mapstructure:"prompt_template"`
	Pixabay         PixabayConfig   `mapstructure:"pixabay"`
	DeepAI          DeepAIConfig    `mapstructure:"deepai"`
	Openverse       OpenverseConfig `mapstructure:"openverse"`
}

// SiteConfig locates the static site's content and data files.
type SiteConfig struct {
	ContentDir string `mapstructure:"content_dir"`
	IndexPath  string `mapstructure:"index_path"`
}

// NoveltyConfig holds the screening thresholds. The defaults are
// empirically chosen starting points, not contracts.
type NoveltyConfig struct {
	WindowDays     int     `mapstructure:"window_days"`
	TitleThreshold float64 `mapstructure:"title_threshold"`
	BodyThreshold  float64 `mapstructure:"body_threshold"`
	ShingleSize    int     `mapstructure:"shingle_size"`
	MaxRetries     int     `mapstructure:"max_retries"`
}

// ChannelConfig defines one content channel (e.g., plants, insurance).
type ChannelConfig struct {
	Name     string   `mapstructure:"name"`     // e.g., plants
	Topic    string   `mapstructure:"topic"`    // e.g., "houseplant care"
	Language string   `mapstructure:"language"` // e.g., English
	Tags     []string `mapstructure:"tags"`     // seed tags offered to the drafter
	Interval string   `mapstructure:"interval"` // worker mode cadence, e.g., "24h"
	Prompt   string   `mapstructure:"prompt"`   // extra drafting instructions; supports {.CurrentDate} and {.Topic}
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig       `mapstructure:"app"`
	Redis    RedisConfig     `mapstructure:"redis"`
	OpenAI   OpenAIConfig    `mapstructure:"openai"`
	Images   ImagesConfig    `mapstructure:"images"`
	Site     SiteConfig      `mapstructure:"site"`
	Novelty  NoveltyConfig   `mapstructure:"novelty"`
	Channels []ChannelConfig `mapstructure:"channels"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Images.Provider == "" {
		c.Images.Provider = "openai"
	}
	if c.Images.OutputDir == "" {
		c.Images.OutputDir = "./site/images"
	}
	if c.Images.WebPQuality <= 0 || c.Images.WebPQuality > 100 {
		c.Images.WebPQuality = 85
	}
	if c.Images.DownloadRetries <= 0 {
		c.Images.DownloadRetries = 3
	}
	if c.Images.DownloadTimeout == "" {
		c.Images.DownloadTimeout = "30s"
	}
	if c.Images.Pixabay.BaseURL == "" {
		c.Images.Pixabay.BaseURL = "https://pixabay.com/api/"
	}
	if c.Images.DeepAI.BaseURL == "" {
		c.Images.DeepAI.BaseURL = "https://api.deepai.org"
	}
	if c.Images.Openverse.BaseURL == "" {
		c.Images.Openverse.BaseURL = "https://api.openverse.org"
	}
	if c.Site.ContentDir == "" {
		c.Site.ContentDir = "./site/content"
	}
	if c.Site.IndexPath == "" {
		c.Site.IndexPath = "./site/data/articles.json"
	}
	if c.Novelty.WindowDays <= 0 {
		c.Novelty.WindowDays = 90
	}
	if c.Novelty.TitleThreshold <= 0 {
		c.Novelty.TitleThreshold = 0.4
	}
	if c.Novelty.BodyThreshold <= 0 {
		c.Novelty.BodyThreshold = 0.28
	}
	if c.Novelty.ShingleSize <= 0 {
		c.Novelty.ShingleSize = 5
	}
	if c.Novelty.MaxRetries <= 0 {
		c.Novelty.MaxRetries = 3
	}
	// Fill channel defaults
	for i := range c.Channels {
		ch := &c.Channels[i]
		if ch.Language == "" {
			ch.Language = "English"
		}
		if ch.Interval == "" {
			ch.Interval = "24h"
		}
	}
}
