package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/leekchan/accounting"
)

// MinMax is a pair of optional bounds. A nil bound means the venue does not report it.
type MinMax struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type MarketPrecision struct {
	// Amount is the number of decimal places of the order amount
	Amount *int `json:"amount,omitempty"`

	// Price is the number of decimal places of the order price
	Price *int `json:"price,omitempty"`
}

type MarketLimits struct {
	Amount MinMax `json:"amount"`
	Price  MinMax `json:"price"`
	Cost   MinMax `json:"cost"`
}

type Market struct {
	// ID is the symbol used by the exchange API, e.g. btcusd
	ID string `json:"id"`

	// Symbol is the canonical BASE/QUOTE symbol
	Symbol string `json:"symbol"`

	Base    string `json:"base"`
	Quote   string `json:"quote"`
	BaseID  string `json:"baseId"`
	QuoteID string `json:"quoteId"`

	Active bool `json:"active"`

	Precision MarketPrecision `json:"precision"`
	Limits    MarketLimits    `json:"limits"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (m Market) String() string {
	return fmt.Sprintf("%s (%s)", m.Symbol, m.ID)
}

func (m Market) pricePrecision() int {
	if m.Precision.Price != nil {
		return *m.Precision.Price
	}

	return 8
}

func (m Market) amountPrecision() int {
	if m.Precision.Amount != nil {
		return *m.Precision.Amount
	}

	return 8
}

func (m Market) BaseCurrencyFormatter() *accounting.Accounting {
	a := accounting.DefaultAccounting(m.Base, m.amountPrecision())
	a.Format = "%v %s"
	return a
}

func (m Market) QuoteCurrencyFormatter() *accounting.Accounting {
	var format, symbol string

	switch m.Quote {
	case "USDT", "USDC", "USD":
		symbol = "$"
		format = "%s %v"

	default:
		symbol = m.Quote
		format = "%v %s"
	}

	a := accounting.DefaultAccounting(symbol, m.pricePrecision())
	a.Format = format
	return a
}

func (m Market) FormatPrice(val float64) string {
	return strconv.FormatFloat(val, 'f', m.pricePrecision(), 64)
}

func (m Market) FormatAmount(val float64) string {
	return strconv.FormatFloat(val, 'f', m.amountPrecision(), 64)
}

type MarketMap map[string]Market

func (m MarketMap) Add(market Market) {
	m[market.Symbol] = market
}

func (m MarketMap) Has(symbol string) bool {
	_, ok := m[symbol]
	return ok
}

// ByID finds the market by the exchange market id
func (m MarketMap) ByID(id string) (Market, bool) {
	for _, market := range m {
		if market.ID == id {
			return market, true
		}
	}

	return Market{}, false
}

func (m MarketMap) Symbols() (symbols []string) {
	for s := range m {
		symbols = append(symbols, s)
	}

	return symbols
}
