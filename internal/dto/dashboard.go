package dto

import (
	"crypto-analysis/internal/analysis"
	"crypto-analysis/internal/chart"
	"time"
)

type ErrorKind string

const (
	ErrorKindDataUnavailable      ErrorKind = "DataUnavailable"
	ErrorKindInvalidInput         ErrorKind = "InvalidInput"
	ErrorKindConfigurationMissing ErrorKind = "ConfigurationMissing"
)

type DashboardError struct {
	Kind      ErrorKind `json:"kind"`
	Component string    `json:"component"`
	Message   string    `json:"message"`
}

// AnalysisResult is the numeric data behind the analytical charts.
type AnalysisResult struct {
	Series           *PriceSeries                  `json:"series"`
	Extrema          analysis.Extrema              `json:"extrema"`
	Fibonacci        analysis.FibonacciLevels      `json:"fibonacci"`
	TrendLines       []analysis.TrendLine          `json:"trend_lines"`
	Risk             analysis.RiskProfile          `json:"risk"`
	Profitability    []analysis.ProfitabilityPoint `json:"profitability"`
	BreakEvenWinRate float64                       `json:"break_even_win_rate"`
	Trade            *analysis.TradeParameters     `json:"trade,omitempty"`
}

type Dashboard struct {
	Symbol      string           `json:"symbol"`
	Currency    string           `json:"currency"`
	Days        int              `json:"days"`
	GeneratedAt time.Time        `json:"generated_at"`
	Analysis    *AnalysisResult  `json:"analysis,omitempty"`
	Charts      []chart.Chart    `json:"charts"`
	Psychology  chart.Chart      `json:"psychology"`
	Errors      []DashboardError `json:"errors,omitempty"`
}

// HasError reports whether any component failed with kind.
func (d *Dashboard) HasError(kind ErrorKind) bool {
	for _, e := range d.Errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// FormOptions describes widget bounds and defaults for the dashboard page.
type FormOptions struct {
	Symbols         []string     `json:"symbols"`
	DefaultCurrency string       `json:"default_currency"`
	MinDays         int          `json:"min_days"`
	MaxDays         int          `json:"max_days"`
	DefaultDays     int          `json:"default_days"`
	MinRiskPercent  float64      `json:"min_risk_percent"`
	MaxRiskPercent  float64      `json:"max_risk_percent"`
	Trade           TradeRequest `json:"trade"`
}

// DefaultRequest is the dashboard request before any widget is touched.
func (o FormOptions) DefaultRequest() DashboardRequest {
	return DashboardRequest{
		Currency: o.DefaultCurrency,
		Days:     o.DefaultDays,
		Trade:    o.Trade,
	}
}

type TradeCalculation struct {
	Input      TradeRequest             `json:"input"`
	Parameters analysis.TradeParameters `json:"parameters"`
	Chart      chart.Chart              `json:"chart"`
}
