package di

import (
	"ainews/config"
	"ainews/domain"
	"ainews/driver/feed_driver"
	"ainews/driver/redis_driver"
	"ainews/driver/translate_driver"
	"ainews/driver/twitter_driver"
	"ainews/gateway/fetch_feed_gateway"
	"ainews/gateway/news_cache_gateway"
	"ainews/gateway/social_post_gateway"
	"ainews/gateway/translate_gateway"
	"ainews/usecase/aggregate_news_usecase"
	"ainews/usecase/post_news_usecase"
	"ainews/usecase/translate_usecase"
	"ainews/utils/logger"
)

// ApplicationComponents wires drivers, gateways and usecases once at process
// start. Consumers receive references; there are no ambient singletons for
// mutable state.
type ApplicationComponents struct {
	Config *config.Config

	AggregateNewsUsecase *aggregate_news_usecase.AggregateNewsUsecase
	TranslateUsecase     *translate_usecase.TranslateUsecase
	PostNewsUsecase      *post_news_usecase.PostNewsUsecase

	NewsCache *news_cache_gateway.NewsCacheGateway
	Redis     *redis_driver.RedisDriver
}

func NewApplicationComponents(cfg *config.Config) *ApplicationComponents {
	// External cache tier is optional: without REDIS_URL (or when the
	// connection fails) the gateway runs on the in-process tier alone.
	var redisDriver *redis_driver.RedisDriver
	if cfg.Cache.RedisURL != "" {
		driver, err := redis_driver.NewRedisDriverWithURL(cfg.Cache.RedisURL)
		if err != nil {
			logger.Logger.Warn("redis unavailable, cache degrades to in-process tier", "error", err)
		} else {
			redisDriver = driver
		}
	}

	cacheGateway := news_cache_gateway.NewNewsCacheGateway(redisDriver, news_cache_gateway.Options{
		KeyPrefix: cfg.Cache.KeyPrefix,
		NewsTTL:   cfg.Cache.NewsTTL,
		PostedTTL: cfg.Cache.PostedTTL,
		PostedMax: cfg.Cache.PostedMaxIDs,
	})

	feedDriver := feed_driver.NewFeedDriver(cfg.Feed.FetchTimeout)
	fetchGateway := fetch_feed_gateway.NewFetchFeedGateway(feedDriver, cfg.Feed.MaxItems)

	translateGateway := translate_gateway.NewTranslateGateway(translationProviders(cfg)...)

	twitterDriver := twitter_driver.NewTwitterDriver(
		cfg.Social.APIKey,
		cfg.Social.APISecret,
		cfg.Social.AccessToken,
		cfg.Social.AccessSecret,
	)
	socialGateway := social_post_gateway.NewSocialPostGateway(twitterDriver)

	aggregateUsecase := aggregate_news_usecase.NewAggregateNewsUsecase(
		domain.DefaultFeedRegistry(),
		fetchGateway,
		translateGateway,
		cacheGateway,
		cfg.Feed.BatchSize,
	)

	return &ApplicationComponents{
		Config:               cfg,
		AggregateNewsUsecase: aggregateUsecase,
		TranslateUsecase:     translate_usecase.NewTranslateUsecase(translateGateway),
		PostNewsUsecase: post_news_usecase.NewPostNewsUsecase(
			cacheGateway,
			socialGateway,
			post_news_usecase.Format(cfg.Social.TweetFormat),
		),
		NewsCache: cacheGateway,
		Redis:     redisDriver,
	}
}

// translationProviders returns the provider chain in priority order: the
// cloud provider when credentials exist, then the unauthenticated fallback.
func translationProviders(cfg *config.Config) []translate_driver.Provider {
	var providers []translate_driver.Provider

	if cfg.TencentConfigured() {
		provider, err := translate_driver.NewTencentProvider(
			cfg.Translate.TencentSecretID,
			cfg.Translate.TencentSecret,
			cfg.Translate.TencentRegion,
		)
		if err != nil {
			logger.Logger.Warn("tencent translation unavailable", "error", err)
		} else {
			providers = append(providers, provider)
		}
	}

	providers = append(providers, translate_driver.NewGtxProvider(
		cfg.Translate.Endpoint,
		cfg.Translate.Timeout,
	))

	return providers
}

// Close releases held connections.
func (c *ApplicationComponents) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Logger.Warn("failed to close redis connection", "error", err)
		}
	}
}
