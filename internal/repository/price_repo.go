package repository

import (
	"context"
	"crypto-analysis/internal/dto"
	"crypto-analysis/pkg/cache"
	"crypto-analysis/pkg/common"
	"crypto-analysis/pkg/logger"
	"fmt"
	"time"
)

type cachedPriceRepository struct {
	next   PriceRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedPriceRepository serves repeated (symbol, currency, days) requests
// from c for ttl. Every caller gets its own copy of the series.
func NewCachedPriceRepository(next PriceRepository, c cache.Cache, ttl time.Duration, log *logger.Logger) PriceRepository {
	return &cachedPriceRepository{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: log,
	}
}

func (r *cachedPriceRepository) GetDailyHistory(ctx context.Context, symbol, currency string, days int) (*dto.PriceSeries, error) {
	key := fmt.Sprintf(common.KEY_PRICE_HISTORY, symbol, currency, days)

	if series, ok := cache.GetFromCache[*dto.PriceSeries](r.cache, key); ok {
		r.logger.DebugContext(ctx, "Price history cache hit", logger.StringField("key", key))
		return series.Clone(), nil
	}

	series, err := r.next.GetDailyHistory(ctx, symbol, currency, days)
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, series.Clone(), r.ttl)
	return series, nil
}
