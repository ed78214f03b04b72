package service

import (
	"context"
	"crypto-analysis/config"
	"crypto-analysis/internal/analysis"
	"crypto-analysis/internal/chart"
	"crypto-analysis/internal/dto"
	"crypto-analysis/internal/repository"
	"crypto-analysis/pkg/common"
	"crypto-analysis/pkg/logger"
	"errors"
	"time"
)

const (
	componentFetcher  = "data_fetcher"
	componentPosition = "position_sizing"
)

type DashboardService interface {
	// Render recomputes every chart for one session. It never fails as a
	// whole: component failures are reported in Dashboard.Errors.
	Render(ctx context.Context, session dto.Session) *dto.Dashboard
	CalculateTrade(ctx context.Context, in analysis.TradeInput) (analysis.TradeParameters, error)
	Psychology() chart.Chart
	FormOptions() dto.FormOptions
}

type dashboardService struct {
	cfg       *config.Config
	log       *logger.Logger
	priceRepo repository.PriceRepository
	now       func() time.Time
}

func NewDashboardService(cfg *config.Config, log *logger.Logger, priceRepo repository.PriceRepository) DashboardService {
	return &dashboardService{
		cfg:       cfg,
		log:       log,
		priceRepo: priceRepo,
		now:       time.Now,
	}
}

func (s *dashboardService) Render(ctx context.Context, session dto.Session) *dto.Dashboard {
	if session.Currency == "" {
		session.Currency = s.cfg.CryptoCompare.DefaultCurrency
	}

	dashboard := &dto.Dashboard{
		Symbol:      session.Symbol,
		Currency:    session.Currency,
		Days:        session.Days,
		GeneratedAt: s.now().UTC(),
		Charts:      []chart.Chart{},
		Psychology:  s.Psychology(),
	}

	log := s.log.FromContext(ctx).With(
		logger.StringField("symbol", session.Symbol),
		logger.StringField("currency", session.Currency),
		logger.IntField("days", session.Days),
	)

	series, err := s.priceRepo.GetDailyHistory(ctx, session.Symbol, session.Currency, session.Days)
	if err != nil {
		log.Error("Failed to fetch price history", logger.ErrorField(err))
		dashboard.Errors = append(dashboard.Errors, dto.DashboardError{
			Kind:      errorKind(err),
			Component: componentFetcher,
			Message:   err.Error(),
		})
		return dashboard
	}

	closes := series.Closes()
	times := series.Times()

	extrema := analysis.FindExtrema(closes)
	trendLines := analysis.TrendLines(closes, extrema)
	fibonacci := analysis.Fibonacci(closes)

	profile := analysis.RiskProfile{
		WinRate:     s.cfg.Risk.WinRate,
		RewardRatio: s.cfg.Risk.RewardRatio,
	}
	curve := analysis.ProfitabilityCurve(profile)

	result := &dto.AnalysisResult{
		Series:           series,
		Extrema:          extrema,
		Fibonacci:        fibonacci,
		TrendLines:       trendLines,
		Risk:             profile,
		Profitability:    curve,
		BreakEvenWinRate: analysis.BreakEvenWinRate(profile.RewardRatio),
	}

	dashboard.Charts = append(dashboard.Charts,
		chart.PriceExtrema(session.Symbol, times, closes, extrema),
		chart.Fibonacci(session.Symbol, times, closes, fibonacci),
		chart.TrendLines(session.Symbol, times, closes, trendLines),
		chart.RiskCurve(profile, curve),
	)

	if session.Trade != nil {
		params, err := s.CalculateTrade(ctx, *session.Trade)
		if err != nil {
			dashboard.Errors = append(dashboard.Errors, dto.DashboardError{
				Kind:      errorKind(err),
				Component: componentPosition,
				Message:   err.Error(),
			})
		} else {
			result.Trade = &params
			dashboard.Charts = append(dashboard.Charts, chart.TradeParameters(params))
		}
	}

	dashboard.Analysis = result

	log.Info("Dashboard rendered",
		logger.IntField("points", series.Len()),
		logger.IntField("peaks", len(extrema.Peaks)),
		logger.IntField("troughs", len(extrema.Troughs)),
		logger.IntField("charts", len(dashboard.Charts)),
	)
	return dashboard
}

func (s *dashboardService) CalculateTrade(ctx context.Context, in analysis.TradeInput) (analysis.TradeParameters, error) {
	params, err := analysis.CalculateTradeParameters(in)
	if err != nil {
		s.log.WarnContext(ctx, "Trade parameters rejected",
			logger.FloatField("entry_price", in.EntryPrice),
			logger.FloatField("stop_loss", in.StopLoss),
			logger.FloatField("risk_percent", in.RiskPercent),
			logger.ErrorField(err))
		return analysis.TradeParameters{}, err
	}
	return params, nil
}

func (s *dashboardService) Psychology() chart.Chart {
	return chart.Psychology(analysis.Psychology())
}

func (s *dashboardService) FormOptions() dto.FormOptions {
	return dto.FormOptions{
		Symbols:         common.GetSymbolList(),
		DefaultCurrency: s.cfg.CryptoCompare.DefaultCurrency,
		MinDays:         common.MIN_DAYS,
		MaxDays:         common.MAX_DAYS,
		DefaultDays:     common.DEFAULT_DAYS,
		MinRiskPercent:  analysis.MinRiskPercent,
		MaxRiskPercent:  analysis.MaxRiskPercent,
		Trade: dto.TradeRequest{
			EntryPrice:     s.cfg.Trade.EntryPrice,
			StopLoss:       s.cfg.Trade.StopLoss,
			TakeProfit:     s.cfg.Trade.TakeProfit,
			AccountBalance: s.cfg.Trade.AccountBalance,
			RiskPercent:    s.cfg.Trade.RiskPercent,
		},
	}
}

// errorKind treats anything that is not an input error as missing data,
// including context cancellation during the fetch.
func errorKind(err error) dto.ErrorKind {
	if errors.Is(err, analysis.ErrInvalidInput) {
		return dto.ErrorKindInvalidInput
	}
	return dto.ErrorKindDataUnavailable
}
