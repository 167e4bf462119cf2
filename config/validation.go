package config

import "fmt"

var validTweetFormats = map[string]bool{
	"simple":   true,
	"enhanced": true,
	"random":   true,
}

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Feed.BatchSize < 1 {
		return fmt.Errorf("feed batch size must be at least 1, got %d", config.Feed.BatchSize)
	}

	if config.Feed.MaxItems < 1 {
		return fmt.Errorf("feed max items must be at least 1, got %d", config.Feed.MaxItems)
	}

	if config.Cache.NewsTTL <= 0 {
		return fmt.Errorf("news cache TTL must be positive, got %s", config.Cache.NewsTTL)
	}

	// A zero TTL means "no expiry" to redis but "expired now" to the memory
	// tier, so the two tiers would disagree. Require a real duration.
	if config.Cache.PostedTTL <= 0 {
		return fmt.Errorf("posted cache TTL must be positive, got %s", config.Cache.PostedTTL)
	}

	if config.Cache.PostedMaxIDs < 1 {
		return fmt.Errorf("posted cache max must be at least 1, got %d", config.Cache.PostedMaxIDs)
	}

	if !validTweetFormats[config.Social.TweetFormat] {
		return fmt.Errorf("invalid tweet format: %q (must be simple, enhanced or random)", config.Social.TweetFormat)
	}

	if config.Social.MaxPosts < 0 {
		return fmt.Errorf("social max posts must not be negative, got %d", config.Social.MaxPosts)
	}

	return nil
}
