package types

import "encoding/json"

type CurrencyLimits struct {
	Amount   MinMax `json:"amount"`
	Price    MinMax `json:"price"`
	Cost     MinMax `json:"cost"`
	Withdraw MinMax `json:"withdraw"`
}

type Currency struct {
	// ID is the lower-cased exchange currency code
	ID        string `json:"id"`
	NumericID *int64 `json:"numericId,omitempty"`
	Code      string `json:"code"`
	Name      string `json:"name"`

	// Active is the raw status value reported by the exchange, kept with its original JSON type.
	Active interface{} `json:"active"`

	// Fee is the withdraw fee
	Fee *float64 `json:"fee,omitempty"`

	// Precision is kept as a float since that is how the exchange reports it
	Precision *float64 `json:"precision,omitempty"`

	Limits CurrencyLimits `json:"limits"`

	Info json.RawMessage `json:"info,omitempty"`
}

type CurrencyMap map[string]Currency

func (m CurrencyMap) Codes() (codes []string) {
	for c := range m {
		codes = append(codes, c)
	}

	return codes
}
