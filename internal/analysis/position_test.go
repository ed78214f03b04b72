package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTradeParameters(t *testing.T) {
	tests := []struct {
		name     string
		in       TradeInput
		wantSize float64
		wantRisk float64
	}{
		{
			name:     "long with one percent risk",
			in:       TradeInput{EntryPrice: 100, StopLoss: 95, TakeProfit: 110, AccountBalance: 10000, RiskPercent: 1},
			wantSize: 20,
			wantRisk: 100,
		},
		{
			name:     "short uses absolute distance",
			in:       TradeInput{EntryPrice: 95, StopLoss: 100, AccountBalance: 10000, RiskPercent: 1},
			wantSize: 20,
			wantRisk: 100,
		},
		{
			name:     "upper risk bound",
			in:       TradeInput{EntryPrice: 50000, StopLoss: 48000, AccountBalance: 25000, RiskPercent: 10},
			wantSize: 1.25,
			wantRisk: 2500,
		},
		{
			name:     "lower risk bound",
			in:       TradeInput{EntryPrice: 2, StopLoss: 1.5, AccountBalance: 1000, RiskPercent: 0.5},
			wantSize: 10,
			wantRisk: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTradeParameters(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantSize, got.PositionSize, 1e-9)
			assert.InDelta(t, tt.wantRisk, got.RiskAmount, 1e-9)
		})
	}
}

func TestCalculateTradeParameters_TakeProfitUnused(t *testing.T) {
	a, err := CalculateTradeParameters(TradeInput{EntryPrice: 100, StopLoss: 95, TakeProfit: 110, AccountBalance: 10000, RiskPercent: 1})
	require.NoError(t, err)
	b, err := CalculateTradeParameters(TradeInput{EntryPrice: 100, StopLoss: 95, TakeProfit: 999, AccountBalance: 10000, RiskPercent: 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculateTradeParameters_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   TradeInput
	}{
		{name: "entry equals stop", in: TradeInput{EntryPrice: 100, StopLoss: 100, AccountBalance: 10000, RiskPercent: 1}},
		{name: "risk below range", in: TradeInput{EntryPrice: 100, StopLoss: 95, AccountBalance: 10000, RiskPercent: 0.4}},
		{name: "risk above range", in: TradeInput{EntryPrice: 100, StopLoss: 95, AccountBalance: 10000, RiskPercent: 10.5}},
		{name: "zero balance", in: TradeInput{EntryPrice: 100, StopLoss: 95, AccountBalance: 0, RiskPercent: 1}},
		{name: "negative entry", in: TradeInput{EntryPrice: -1, StopLoss: 95, AccountBalance: 10000, RiskPercent: 1}},
		{name: "zero stop", in: TradeInput{EntryPrice: 100, StopLoss: 0, AccountBalance: 10000, RiskPercent: 1}},
		{name: "NaN risk", in: TradeInput{EntryPrice: 100, StopLoss: 95, AccountBalance: 10000, RiskPercent: math.NaN()}},
		{name: "NaN entry", in: TradeInput{EntryPrice: math.NaN(), StopLoss: 95, AccountBalance: 10000, RiskPercent: 1}},
		{name: "+Inf entry", in: TradeInput{EntryPrice: math.Inf(1), StopLoss: 95, AccountBalance: 10000, RiskPercent: 1}},
		{name: "+Inf stop", in: TradeInput{EntryPrice: 100, StopLoss: math.Inf(1), AccountBalance: 10000, RiskPercent: 1}},
		{name: "+Inf balance", in: TradeInput{EntryPrice: 100, StopLoss: 95, AccountBalance: math.Inf(1), RiskPercent: 1}},
		{name: "-Inf risk", in: TradeInput{EntryPrice: 100, StopLoss: 95, AccountBalance: 10000, RiskPercent: math.Inf(-1)}},
		{name: "NaN take profit", in: TradeInput{EntryPrice: 100, StopLoss: 95, TakeProfit: math.NaN(), AccountBalance: 10000, RiskPercent: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTradeParameters(tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, TradeParameters{}, got)
		})
	}
}
