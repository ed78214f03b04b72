package dto

import (
	"crypto-analysis/internal/analysis"
	"strings"
)

// DashboardRequest carries every dashboard widget value for one request.
// Trade is only validated and used when Calculate is set.
type DashboardRequest struct {
	Symbol    string       `query:"symbol" json:"symbol" validate:"required,oneof=BTC ETH LTC XRP ADA"`
	Currency  string       `query:"currency" json:"currency" validate:"required,len=3,alpha,uppercase"`
	Days      int          `query:"days" json:"days" validate:"min=1,max=365"`
	Calculate bool         `query:"calculate" json:"calculate"`
	Trade     TradeRequest `json:"trade" validate:"-"`
}

type TradeRequest struct {
	EntryPrice     float64 `query:"entry_price" json:"entry_price" form:"entry_price" validate:"gt=0"`
	StopLoss       float64 `query:"stop_loss" json:"stop_loss" form:"stop_loss" validate:"gt=0"`
	TakeProfit     float64 `query:"take_profit" json:"take_profit" form:"take_profit" validate:"gte=0"`
	AccountBalance float64 `query:"account_balance" json:"account_balance" form:"account_balance" validate:"gt=0"`
	RiskPercent    float64 `query:"risk_percent" json:"risk_percent" form:"risk_percent" validate:"gte=0.5,lte=10"`
}

func (r TradeRequest) ToInput() analysis.TradeInput {
	return analysis.TradeInput{
		EntryPrice:     r.EntryPrice,
		StopLoss:       r.StopLoss,
		TakeProfit:     r.TakeProfit,
		AccountBalance: r.AccountBalance,
		RiskPercent:    r.RiskPercent,
	}
}

// Session is the explicit per-render context handed to the dashboard
// service. A nil Trade means the calculator was not confirmed.
type Session struct {
	Symbol   string
	Currency string
	Days     int
	Trade    *analysis.TradeInput
}

func (r DashboardRequest) ToSession() Session {
	s := Session{
		Symbol:   strings.ToUpper(r.Symbol),
		Currency: strings.ToUpper(r.Currency),
		Days:     r.Days,
	}
	if r.Calculate {
		in := r.Trade.ToInput()
		s.Trade = &in
	}
	return s
}
