package types

import "encoding/json"

type Fee struct {
	Cost     *float64 `json:"cost,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type Trade struct {
	ID string `json:"id"`

	// Timestamp is in milliseconds
	Timestamp *int64 `json:"timestamp,omitempty"`
	Datetime  string `json:"datetime,omitempty"`
	Symbol    string `json:"symbol"`

	// Side is the raw trade type reported by the exchange
	Side string `json:"side"`

	Price  *float64 `json:"price,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Cost   *float64 `json:"cost,omitempty"`

	Order        string `json:"order,omitempty"`
	Type         string `json:"type,omitempty"`
	TakerOrMaker string `json:"takerOrMaker,omitempty"`
	Fee          *Fee   `json:"fee,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}

// FilterTradesBySinceLimit keeps the trades at or after since (milliseconds) and
// truncates the result to the last limit entries. Zero values disable the filters.
func FilterTradesBySinceLimit(trades []Trade, since int64, limit int) []Trade {
	filtered := make([]Trade, 0, len(trades))
	for _, trade := range trades {
		if since > 0 && (trade.Timestamp == nil || *trade.Timestamp < since) {
			continue
		}

		filtered = append(filtered, trade)
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	return filtered
}
