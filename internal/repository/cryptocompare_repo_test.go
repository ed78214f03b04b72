package repository

import (
	"context"
	"crypto-analysis/config"
	"crypto-analysis/internal/dto"
	"crypto-analysis/pkg/logger"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		CryptoCompare: config.CryptoCompare{
			BaseURL:             baseURL,
			APIKey:              "test-key",
			Timeout:             2 * time.Second,
			MaxRequestPerMinute: 6000,
		},
	}
}

// historyBody builds a histoday payload with n+1 rows, newest first.
func historyBody(n int) string {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	rows := make([]string, 0, n+1)
	for i := n; i >= 0; i-- {
		rows = append(rows, fmt.Sprintf(`{"time":%d,"high":%d,"low":%d,"open":%d,"volumefrom":1,"volumeto":2,"close":%d,"conversionType":"direct","conversionSymbol":""}`,
			start+int64(i)*86400, 110+i, 90+i, 100+i, 100+i))
	}
	return fmt.Sprintf(`{"Response":"Success","Message":"","HasWarning":false,"Type":100,"Data":{"Aggregated":false,"TimeFrom":0,"TimeTo":0,"Data":[%s]}}`, strings.Join(rows, ","))
}

func TestCryptoCompareRepository_GetDailyHistory(t *testing.T) {
	var gotQuery, gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(historyBody(5)))
	}))
	defer srv.Close()

	repo := NewCryptoCompareRepository(testConfig(srv.URL), logger.NewNop())
	series, err := repo.GetDailyHistory(context.Background(), "BTC", "USD", 5)
	require.NoError(t, err)

	assert.Equal(t, "/data/v2/histoday", gotPath)
	assert.Contains(t, gotQuery, "fsym=BTC")
	assert.Contains(t, gotQuery, "tsym=USD")
	assert.Contains(t, gotQuery, "limit=5")
	assert.Equal(t, "Apikey test-key", gotAuth)

	require.Equal(t, 5, series.Len())
	assert.Equal(t, "BTC", series.Symbol)
	assert.Equal(t, "USD", series.Currency)
	assert.Equal(t, []float64{101, 102, 103, 104, 105}, series.Closes())
	for i := 1; i < series.Len(); i++ {
		assert.True(t, series.Points[i].Time.After(series.Points[i-1].Time))
	}
}

func TestCryptoCompareRepository_DataUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		days    int
		wantMsg string
	}{
		{
			name:    "provider error payload",
			status:  http.StatusOK,
			body:    `{"Response":"Error","Message":"fsym param is invalid","HasWarning":false,"Type":2,"Data":{}}`,
			days:    30,
			wantMsg: "fsym param is invalid",
		},
		{
			name:    "non ok status",
			status:  http.StatusTooManyRequests,
			body:    `{"Response":"Error","Message":"rate limit"}`,
			days:    30,
			wantMsg: "status: 429",
		},
		{
			name:    "empty data",
			status:  http.StatusOK,
			body:    `{"Response":"Success","Message":"","Data":{"Data":[]}}`,
			days:    30,
			wantMsg: "no price history",
		},
		{
			name:    "zero days",
			status:  http.StatusOK,
			body:    historyBody(1),
			days:    0,
			wantMsg: "day count",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			repo := NewCryptoCompareRepository(testConfig(srv.URL), logger.NewNop())
			series, err := repo.GetDailyHistory(context.Background(), "XYZ", "USD", tt.days)
			assert.Nil(t, series)
			require.ErrorIs(t, err, ErrDataUnavailable)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCryptoCompareRepository_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig(srv.URL)
	cfg.CryptoCompare.Timeout = 50 * time.Millisecond

	repo := NewCryptoCompareRepository(cfg, logger.NewNop())
	_, err := repo.GetDailyHistory(context.Background(), "BTC", "USD", 30)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestToPriceSeries(t *testing.T) {
	rows := []dto.CryptoCompareOHLCV{
		{Time: 300, Close: 3},
		{Time: 100, Close: 1},
		{Time: 200, Close: 2},
		{Time: 200, Close: 2},
	}

	series := toPriceSeries("ETH", "EUR", rows, 2)
	assert.Equal(t, []float64{2, 3}, series.Closes())
	assert.Equal(t, time.Unix(200, 0).UTC(), series.Points[0].Time)

	all := toPriceSeries("ETH", "EUR", rows, 10)
	assert.Equal(t, []float64{1, 2, 3}, all.Closes())
}
