package repository

import (
	"context"
	"crypto-analysis/config"
	"crypto-analysis/internal/dto"
	"crypto-analysis/pkg/httpclient"
	"crypto-analysis/pkg/logger"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

type PriceRepository interface {
	GetDailyHistory(ctx context.Context, symbol, currency string, days int) (*dto.PriceSeries, error)
}

type cryptoCompareRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewCryptoCompareRepository creates a PriceRepository backed by the
// CryptoCompare daily history endpoint.
func NewCryptoCompareRepository(cfg *config.Config, log *logger.Logger) PriceRepository {
	perRequest := time.Minute / time.Duration(cfg.CryptoCompare.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(perRequest), 1)

	headers := map[string]string{
		"authorization": "Apikey " + cfg.CryptoCompare.APIKey,
	}

	return &cryptoCompareRepository{
		httpClient:     httpclient.New(log, cfg.CryptoCompare.BaseURL, cfg.CryptoCompare.Timeout, headers),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *cryptoCompareRepository) GetDailyHistory(ctx context.Context, symbol, currency string, days int) (*dto.PriceSeries, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", ErrDataUnavailable, days)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrDataUnavailable, err)
	}

	endpoint := "/data/v2/histoday"
	queryParams := map[string]string{
		"fsym":  symbol,
		"tsym":  currency,
		"limit": strconv.Itoa(days),
	}

	var body dto.CryptoCompareHistoryResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &body)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to fetch price history from cryptocompare",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err))
		return nil, fmt.Errorf("%w: failed to fetch price history from cryptocompare: %v", ErrDataUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "CryptoCompare API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("%w: cryptocompare api returned status: %d", ErrDataUnavailable, resp.StatusCode)
	}

	if body.Response != dto.CryptoCompareResponseSuccess {
		r.logger.WarnContext(ctx, "CryptoCompare API returned an error",
			logger.StringField("symbol", symbol),
			logger.StringField("currency", currency),
			logger.StringField("message", body.Message))
		return nil, fmt.Errorf("%w: cryptocompare api error: %s", ErrDataUnavailable, body.Message)
	}

	series := toPriceSeries(symbol, currency, body.Data.Data, days)
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: no price history returned for %s/%s", ErrDataUnavailable, symbol, currency)
	}

	r.logger.DebugContext(ctx, "Fetched price history",
		logger.StringField("symbol", symbol),
		logger.StringField("currency", currency),
		logger.IntField("days", days),
		logger.IntField("points", series.Len()))

	return series, nil
}

// toPriceSeries sorts rows oldest first, drops duplicate timestamps and keeps
// the newest days rows. The provider answers limit=N with N+1 rows.
func toPriceSeries(symbol, currency string, rows []dto.CryptoCompareOHLCV, days int) *dto.PriceSeries {
	sorted := make([]dto.CryptoCompareOHLCV, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	points := make([]dto.PricePoint, 0, len(sorted))
	for i, row := range sorted {
		if i > 0 && row.Time == sorted[i-1].Time {
			continue
		}
		points = append(points, dto.PricePoint{
			Time:       time.Unix(row.Time, 0).UTC(),
			Open:       row.Open,
			High:       row.High,
			Low:        row.Low,
			Close:      row.Close,
			VolumeFrom: row.VolumeFrom,
			VolumeTo:   row.VolumeTo,
		})
	}

	if len(points) > days {
		points = points[len(points)-days:]
	}

	return &dto.PriceSeries{
		Symbol:   symbol,
		Currency: currency,
		Points:   points,
	}
}
