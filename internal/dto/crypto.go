package dto

import "time"

// PricePoint is one daily candle. Only Close feeds the analysis.
type PricePoint struct {
	Time       time.Time `json:"time"`
	Open       float64   `json:"open"`
	High       float64   `json:"high"`
	Low        float64   `json:"low"`
	Close      float64   `json:"close"`
	VolumeFrom float64   `json:"volume_from"`
	VolumeTo   float64   `json:"volume_to"`
}

// PriceSeries is ordered oldest to newest with strictly increasing Time.
type PriceSeries struct {
	Symbol   string       `json:"symbol"`
	Currency string       `json:"currency"`
	Points   []PricePoint `json:"points"`
}

func (s *PriceSeries) Len() int {
	return len(s.Points)
}

// Closes returns the closing price column.
func (s *PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Close
	}
	return out
}

// Times returns the timestamp column.
func (s *PriceSeries) Times() []time.Time {
	out := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Time
	}
	return out
}

// Clone returns a deep copy so callers never share backing arrays.
func (s *PriceSeries) Clone() *PriceSeries {
	points := make([]PricePoint, len(s.Points))
	copy(points, s.Points)
	return &PriceSeries{
		Symbol:   s.Symbol,
		Currency: s.Currency,
		Points:   points,
	}
}

// CryptoCompareHistoryResponse is the body of GET /data/v2/histoday.
type CryptoCompareHistoryResponse struct {
	Response   string `json:"Response"`
	Message    string `json:"Message"`
	HasWarning bool   `json:"HasWarning"`
	Type       int    `json:"Type"`
	Data       struct {
		Aggregated bool                 `json:"Aggregated"`
		TimeFrom   int64                `json:"TimeFrom"`
		TimeTo     int64                `json:"TimeTo"`
		Data       []CryptoCompareOHLCV `json:"Data"`
	} `json:"Data"`
}

type CryptoCompareOHLCV struct {
	Time             int64   `json:"time"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Open             float64 `json:"open"`
	VolumeFrom       float64 `json:"volumefrom"`
	VolumeTo         float64 `json:"volumeto"`
	Close            float64 `json:"close"`
	ConversionType   string  `json:"conversionType"`
	ConversionSymbol string  `json:"conversionSymbol"`
}

const CryptoCompareResponseSuccess = "Success"
