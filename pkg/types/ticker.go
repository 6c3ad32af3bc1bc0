package types

import (
	"encoding/json"
	"fmt"
)

// Ticker is the 24h statistics of a market. Fields the exchange does not report stay nil.
type Ticker struct {
	Symbol string `json:"symbol"`

	Timestamp *int64 `json:"timestamp,omitempty"`
	Datetime  string `json:"datetime,omitempty"`

	High      *float64 `json:"high,omitempty"`
	Low       *float64 `json:"low,omitempty"`
	Bid       *float64 `json:"bid,omitempty"`
	BidVolume *float64 `json:"bidVolume,omitempty"`
	Ask       *float64 `json:"ask,omitempty"`
	AskVolume *float64 `json:"askVolume,omitempty"`
	VWAP      *float64 `json:"vwap,omitempty"`
	Open      *float64 `json:"open,omitempty"`
	Close     *float64 `json:"close,omitempty"`
	Last      *float64 `json:"last,omitempty"`

	PreviousClose *float64 `json:"previousClose,omitempty"`
	Change        *float64 `json:"change,omitempty"`
	Percentage    *float64 `json:"percentage,omitempty"`
	Average       *float64 `json:"average,omitempty"`

	// BaseVolume is the traded volume in the base currency
	BaseVolume *float64 `json:"baseVolume,omitempty"`

	// QuoteVolume is the traded volume in the quote currency
	QuoteVolume *float64 `json:"quoteVolume,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (t *Ticker) String() string {
	return fmt.Sprintf("%s O:%s H:%s L:%s LAST:%s BID/ASK:%s/%s VOL:%s",
		t.Symbol,
		formatOptional(t.Open), formatOptional(t.High), formatOptional(t.Low), formatOptional(t.Last),
		formatOptional(t.Bid), formatOptional(t.Ask), formatOptional(t.BaseVolume))
}

func formatOptional(f *float64) string {
	if f == nil {
		return "-"
	}

	return fmt.Sprintf("%f", *f)
}
