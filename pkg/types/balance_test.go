package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceMap_Currencies(t *testing.T) {
	free := 1.5
	balances := BalanceMap{
		"USD": {Currency: "USD"},
		"BTC": {Currency: "BTC", Free: &free},
		"ETH": {Currency: "ETH"},
	}

	assert.Equal(t, []string{"BTC", "ETH", "USD"}, balances.Currencies())
	assert.Equal(t, "BTC: free 1.500000, used -", balances["BTC"].String())
}
