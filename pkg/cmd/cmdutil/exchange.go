package cmdutil

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/multiio/multigo/pkg/cache"
	"github.com/multiio/multigo/pkg/exchange"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

// NewExchange creates the exchange from the viper settings. The api credentials are
// read from the flags, the config file or the <EXCHANGE>_API_KEY and <EXCHANGE>_API_SECRET env vars.
func NewExchange(n types.ExchangeName) (types.ExchangeAdapter, error) {
	prefix := n.String()
	key := viper.GetString(prefix + "-api-key")
	secret := viper.GetString(prefix + "-api-secret")

	if len(key) == 0 && len(secret) == 0 {
		log.Debugf("no %s api credentials given, loading them from the env vars", n)
		return exchange.NewWithEnvVarPrefix(n, "")
	}

	if len(key) == 0 || len(secret) == 0 {
		return nil, fmt.Errorf("%s: empty key or secret", n)
	}

	log.Debugf("using %s api key %s", n, util.MaskKey(key))
	return exchange.New(n, exchange.ExchangeOptions{
		exchange.ExchangeOptionsKeyAPIKey:    key,
		exchange.ExchangeOptionsKeyAPISecret: secret,
	})
}

// LoadMarket resolves the market by the unified symbol (BTC/USD) or the exchange market id (btcusd)
func LoadMarket(ctx context.Context, ex types.ExchangeAdapter, symbol string) (types.Market, error) {
	catalog, err := cache.LoadCatalog(ctx, ex)
	if err != nil {
		return types.Market{}, err
	}

	if market, ok := catalog.Market(strings.ToUpper(symbol)); ok {
		return market, nil
	}

	if market, ok := catalog.MarketByID(strings.ToLower(symbol)); ok {
		return market, nil
	}

	return types.Market{}, fmt.Errorf("market %s not found", symbol)
}

// LoadCurrency resolves the currency by its code, case-insensitively
func LoadCurrency(ctx context.Context, ex types.ExchangeAdapter, code string) (types.Currency, error) {
	catalog, err := cache.LoadCatalog(ctx, ex)
	if err != nil {
		return types.Currency{}, err
	}

	currency, ok := catalog.Currency(strings.ToUpper(code))
	if !ok {
		return types.Currency{}, fmt.Errorf("currency %s not found", code)
	}

	return currency, nil
}
