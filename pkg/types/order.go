package types

import (
	"encoding/json"
	"fmt"
)

type OrderType string

const (
	OrderTypeLimit     OrderType = "limit"
	OrderTypeMarket    OrderType = "market"
	OrderTypeStopLimit OrderType = "stopLimit"
)

func (t OrderType) String() string {
	return string(t)
}

// SubmitOrder is the order request
type SubmitOrder struct {
	Symbol string    `json:"symbol"`
	Type   OrderType `json:"type"`
	Side   SideType  `json:"side"`
	Amount float64   `json:"amount"`

	// Price is required by limit orders
	Price *float64 `json:"price,omitempty"`

	// Params are the extra exchange-specific parameters merged into the request,
	// e.g. {"type": "stopLimit", "stopPrice": 9000}
	Params map[string]interface{} `json:"params,omitempty"`
}

func (o SubmitOrder) String() string {
	price := "-"
	if o.Price != nil {
		price = fmt.Sprintf("%f", *o.Price)
	}

	return fmt.Sprintf("SubmitOrder %s %s %s %f @ %s", o.Symbol, o.Type, o.Side, o.Amount, price)
}

type Order struct {
	ID            string `json:"id"`
	ClientOrderID string `json:"clientOrderId,omitempty"`

	// Timestamp is in milliseconds
	Timestamp          *int64 `json:"timestamp,omitempty"`
	Datetime           string `json:"datetime,omitempty"`
	LastTradeTimestamp *int64 `json:"lastTradeTimestamp,omitempty"`

	Status string    `json:"status,omitempty"`
	Symbol string    `json:"symbol"`
	Type   OrderType `json:"type"`
	Side   SideType  `json:"side"`

	Price     *float64 `json:"price,omitempty"`
	Average   *float64 `json:"average,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Filled    *float64 `json:"filled,omitempty"`
	Remaining *float64 `json:"remaining,omitempty"`
	Cost      *float64 `json:"cost,omitempty"`

	Trades []Trade `json:"trades,omitempty"`
	Fee    *Fee    `json:"fee,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (o Order) String() string {
	return fmt.Sprintf("ORDER %s %s %s %s amount=%s filled=%s",
		o.ID, o.Symbol, o.Type, o.Side, formatOptional(o.Amount), formatOptional(o.Filled))
}
