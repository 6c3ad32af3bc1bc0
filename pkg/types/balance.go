package types

import (
	"encoding/json"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

type Balance struct {
	Currency string   `json:"currency"`
	Free     *float64 `json:"free,omitempty"`
	Used     *float64 `json:"used,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

func (b Balance) String() string {
	return fmt.Sprintf("%s: free %s, used %s", b.Currency, formatOptional(b.Free), formatOptional(b.Used))
}

type BalanceMap map[string]Balance

func (m BalanceMap) Currencies() (currencies []string) {
	for c := range m {
		currencies = append(currencies, c)
	}

	sort.Strings(currencies)
	return currencies
}

func (m BalanceMap) Print() {
	for _, c := range m.Currencies() {
		log.Infof(" %s", m[c].String())
	}
}

// AccountBalances is the balance map of the exchange account with the raw account block.
type AccountBalances struct {
	Balances BalanceMap      `json:"balances"`
	Info     json.RawMessage `json:"info,omitempty"`
}
