package types

import "encoding/json"

type TradingFeeTier struct {
	MinVolume *float64 `json:"minVolume,omitempty"`
	Maker     *float64 `json:"maker,omitempty"`
	Taker     *float64 `json:"taker,omitempty"`
}

type TradingFees struct {
	Fees []TradingFeeTier `json:"fees"`
	Info json.RawMessage  `json:"info,omitempty"`
}
