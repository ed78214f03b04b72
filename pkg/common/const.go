package common

const (
	// KEY_PRICE_HISTORY is formatted with symbol, currency and day count.
	KEY_PRICE_HISTORY = "price_history:%s:%s:%d"
)

const (
	SYMBOL_BTC = "BTC"
	SYMBOL_ETH = "ETH"
	SYMBOL_LTC = "LTC"
	SYMBOL_XRP = "XRP"
	SYMBOL_ADA = "ADA"
)

func GetSymbolList() []string {
	return []string{
		SYMBOL_BTC,
		SYMBOL_ETH,
		SYMBOL_LTC,
		SYMBOL_XRP,
		SYMBOL_ADA,
	}
}

const (
	MIN_DAYS     = 1
	MAX_DAYS     = 365
	DEFAULT_DAYS = 30

	DEFAULT_CURRENCY = "USD"
)
