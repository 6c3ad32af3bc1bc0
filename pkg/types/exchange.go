package types

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type ExchangeName string

func (n *ExchangeName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	name, err := ValidExchangeName(s)
	if err != nil {
		return err
	}

	*n = name
	return nil
}

func (n ExchangeName) String() string {
	return string(n)
}

const (
	ExchangeMulti = ExchangeName("multi")
)

var SupportedExchanges = map[ExchangeName]struct{}{
	ExchangeMulti: {},
}

func ValidExchangeName(a string) (ExchangeName, error) {
	name := ExchangeName(strings.ToLower(a))
	if _, ok := SupportedExchanges[name]; ok {
		return name, nil
	}

	return "", fmt.Errorf("invalid exchange name: %s", a)
}

type ExchangeMinimal interface {
	Name() ExchangeName
}

type ExchangeCatalogService interface {
	QueryMarkets(ctx context.Context) (MarketMap, error)
	QueryCurrencies(ctx context.Context) (CurrencyMap, error)
}

type ExchangeMarketDataService interface {
	QueryOrderBook(ctx context.Context, market Market, limit int) (*OrderBook, error)
	QueryTicker(ctx context.Context, market Market) (*Ticker, error)
	QueryTrades(ctx context.Context, market Market, options TradeQueryOptions) ([]Trade, error)
	QueryKLines(ctx context.Context, market Market, interval Interval, options KLineQueryOptions) ([]KLine, error)
	QueryTradingFees(ctx context.Context) (*TradingFees, error)
}

type ExchangeAccountService interface {
	QueryAccountBalances(ctx context.Context) (*AccountBalances, error)
	QueryDepositAddress(ctx context.Context, currency Currency) (*DepositAddress, error)
}

type ExchangeTradeService interface {
	SubmitOrder(ctx context.Context, market Market, order SubmitOrder) (*Order, error)
	CancelOrder(ctx context.Context, market Market, orderID string) (*Order, error)
}

// ExchangeAdapter is the capability set a venue connector provides to the host.
type ExchangeAdapter interface {
	ExchangeMinimal
	ExchangeCatalogService
	ExchangeMarketDataService
	ExchangeAccountService
	ExchangeTradeService
}

type KLineQueryOptions struct {
	// Since is optional, nil means the caller did not give a start time
	Since *time.Time

	// Limit is optional, zero means no limit
	Limit int
}

type TradeQueryOptions struct {
	Since *time.Time
	Limit int
}
