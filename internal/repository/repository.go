package repository

import (
	"crypto-analysis/config"
	"crypto-analysis/pkg/cache"
	"crypto-analysis/pkg/logger"
)

type Repository struct {
	PriceRepo PriceRepository
}

// NewRepository wires the price provider, wrapped in the in-memory cache when
// caching is enabled.
func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) *Repository {
	var priceRepo PriceRepository = NewCryptoCompareRepository(cfg, log)
	if cfg.Cache.Enabled && inmemoryCache != nil {
		priceRepo = NewCachedPriceRepository(priceRepo, inmemoryCache, cfg.Cache.DefaultExpiration, log)
	}

	return &Repository{
		PriceRepo: priceRepo,
	}
}
