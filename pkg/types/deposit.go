package types

import "encoding/json"

type DepositAddress struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`

	// Tag is the memo required by some chains, kept as reported
	Tag interface{} `json:"tag,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}
