package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Cache     CacheConfig     `json:"cache"`
	Feed      FeedConfig      `json:"feed"`
	Translate TranslateConfig `json:"translate"`
	Social    SocialConfig    `json:"social"`
	Cron      CronConfig      `json:"cron"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type CacheConfig struct {
	RedisURL      string        `json:"redis_url" env:"REDIS_URL"`
	NewsTTL       time.Duration `json:"news_ttl" env:"NEWS_CACHE_TTL" default:"5m"`
	PostedTTL     time.Duration `json:"posted_ttl" env:"POSTED_CACHE_TTL" default:"720h"`
	PostedMaxIDs  int           `json:"posted_max_ids" env:"POSTED_CACHE_MAX" default:"200"`
	KeyPrefix     string        `json:"key_prefix" env:"CACHE_KEY_PREFIX" default:"ainews"`
}

type FeedConfig struct {
	FetchTimeout time.Duration `json:"fetch_timeout" env:"FEED_FETCH_TIMEOUT" default:"5s"`
	BatchSize    int           `json:"batch_size" env:"FEED_BATCH_SIZE" default:"5"`
	MaxItems     int           `json:"max_items" env:"FEED_MAX_ITEMS" default:"10"`
}

type TranslateConfig struct {
	Endpoint        string        `json:"endpoint" env:"TRANSLATE_ENDPOINT" default:"https://translate.googleapis.com/translate_a/single"`
	Timeout         time.Duration `json:"timeout" env:"TRANSLATE_TIMEOUT" default:"10s"`
	TencentSecretID string        `json:"-" env:"TENCENT_SECRET_ID"`
	TencentSecret   string        `json:"-" env:"TENCENT_SECRET_KEY"`
	TencentRegion   string        `json:"tencent_region" env:"TENCENT_REGION" default:"ap-tokyo"`
}

type SocialConfig struct {
	APIKey       string        `json:"-" env:"TWITTER_API_KEY"`
	APISecret    string        `json:"-" env:"TWITTER_API_SECRET"`
	AccessToken  string        `json:"-" env:"TWITTER_ACCESS_TOKEN"`
	AccessSecret string        `json:"-" env:"TWITTER_ACCESS_SECRET"`
	MaxPosts     int           `json:"max_posts" env:"SOCIAL_MAX_POSTS" default:"3"`
	PostDelay    time.Duration `json:"post_delay" env:"SOCIAL_POST_DELAY" default:"10s"`
	TweetFormat  string        `json:"tweet_format" env:"TWEET_FORMAT" default:"simple"`
}

type CronConfig struct {
	Secret          string        `json:"-" env:"CRON_SECRET"`
	RefreshInterval time.Duration `json:"refresh_interval" env:"REFRESH_INTERVAL" default:"0"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}

// SocialConfigured reports whether the four-part OAuth1 token set is present.
func (c *Config) SocialConfigured() bool {
	s := c.Social
	return s.APIKey != "" && s.APISecret != "" && s.AccessToken != "" && s.AccessSecret != ""
}

// TencentConfigured reports whether Tencent TMT credentials are present.
func (c *Config) TencentConfigured() bool {
	return c.Translate.TencentSecretID != "" && c.Translate.TencentSecret != ""
}
