package config

import "time"

// Config is the root application configuration.
type Config struct {
	Reddit  RedditConfig  `yaml:"reddit"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Archive ArchiveConfig `yaml:"archive"`
	Log     LogConfig     `yaml:"log"`
}

// RedditConfig holds retrieval-layer settings for the Reddit public JSON API.
type RedditConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"REDDIT_BASE_URL"       env-default:"https://www.reddit.com"`
	UserAgent     string        `yaml:"user_agent"     env:"REDDIT_USER_AGENT"     env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	ActivityLimit int           `yaml:"activity_limit" env:"REDDIT_ACTIVITY_LIMIT" env-default:"100"`
	RequestPause  time.Duration `yaml:"request_pause"  env:"REDDIT_REQUEST_PAUSE"  env-default:"1s"`
	Timeout       time.Duration `yaml:"timeout"        env:"REDDIT_TIMEOUT"        env-default:"10s"`
}

// GeminiConfig holds inference-capability settings.
// Models are tried in order; the first successful one wins.
type GeminiConfig struct {
	APIKey    string `yaml:"api_key" env:"GEMINI_API_KEY" env-required:"true"`
	ModelsRaw string `yaml:"models"  env:"GEMINI_MODELS"  env-default:"gemini-1.5-pro,gemini-1.5-flash"`

	// Models is parsed from ModelsRaw during validation.
	Models []string `yaml:"-" env:"-"`
}

// ArchiveConfig holds optional PostgreSQL persona-archive settings.
// When Enabled is false the pipeline runs without persistence.
type ArchiveConfig struct {
	Enabled         bool          `yaml:"enabled"            env:"ARCHIVE_ENABLED"            env-default:"false"`
	DSN             string        `yaml:"dsn"                env:"ARCHIVE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"ARCHIVE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"ARCHIVE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"ARCHIVE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"ARCHIVE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	RetentionDays   int           `yaml:"retention_days"     env:"ARCHIVE_RETENTION_DAYS"     env-default:"90"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
