package analysis

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	MinRiskPercent = 0.5
	MaxRiskPercent = 10.0
)

// TradeInput mirrors the trade calculator form. TakeProfit is accepted but
// does not take part in sizing.
type TradeInput struct {
	EntryPrice     float64 `json:"entry_price"`
	StopLoss       float64 `json:"stop_loss"`
	TakeProfit     float64 `json:"take_profit"`
	AccountBalance float64 `json:"account_balance"`
	RiskPercent    float64 `json:"risk_percent"`
}

type TradeParameters struct {
	PositionSize float64 `json:"position_size"`
	RiskAmount   float64 `json:"risk_amount"`
}

// CalculateTradeParameters sizes a position so that hitting the stop loses
// exactly RiskPercent of the account balance.
func CalculateTradeParameters(in TradeInput) (TradeParameters, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"entry price", in.EntryPrice},
		{"stop-loss price", in.StopLoss},
		{"take-profit", in.TakeProfit},
		{"account balance", in.AccountBalance},
		{"risk percent", in.RiskPercent},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return TradeParameters{}, fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
	}
	if in.EntryPrice <= 0 || in.StopLoss <= 0 {
		return TradeParameters{}, fmt.Errorf("%w: entry and stop-loss prices must be positive", ErrInvalidInput)
	}
	if in.AccountBalance <= 0 {
		return TradeParameters{}, fmt.Errorf("%w: account balance must be positive", ErrInvalidInput)
	}
	if in.RiskPercent < MinRiskPercent || in.RiskPercent > MaxRiskPercent {
		return TradeParameters{}, fmt.Errorf("%w: risk percent %.2f outside [%.1f, %.1f]", ErrInvalidInput, in.RiskPercent, MinRiskPercent, MaxRiskPercent)
	}

	delta := decimal.NewFromFloat(in.EntryPrice).Sub(decimal.NewFromFloat(in.StopLoss)).Abs()
	if delta.IsZero() {
		return TradeParameters{}, fmt.Errorf("%w: entry price equals stop-loss price", ErrInvalidInput)
	}

	riskAmount := decimal.NewFromFloat(in.AccountBalance).
		Mul(decimal.NewFromFloat(in.RiskPercent)).
		Div(decimal.NewFromInt(100))
	positionSize := riskAmount.Div(delta)

	return TradeParameters{
		PositionSize: positionSize.InexactFloat64(),
		RiskAmount:   riskAmount.InexactFloat64(),
	}, nil
}
