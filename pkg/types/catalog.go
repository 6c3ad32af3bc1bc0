package types

// Catalog is an immutable snapshot of the markets and currencies of an exchange.
// Operations that need to resolve a symbol or a currency code receive a catalog explicitly.
type Catalog struct {
	Exchange   ExchangeName `json:"exchange"`
	Markets    MarketMap    `json:"markets"`
	Currencies CurrencyMap  `json:"currencies"`
}

func NewCatalog(exchange ExchangeName, markets MarketMap, currencies CurrencyMap) *Catalog {
	if markets == nil {
		markets = MarketMap{}
	}

	if currencies == nil {
		currencies = CurrencyMap{}
	}

	return &Catalog{
		Exchange:   exchange,
		Markets:    markets,
		Currencies: currencies,
	}
}

func (c *Catalog) Market(symbol string) (Market, bool) {
	market, ok := c.Markets[symbol]
	return market, ok
}

func (c *Catalog) MarketByID(id string) (Market, bool) {
	return c.Markets.ByID(id)
}

func (c *Catalog) Currency(code string) (Currency, bool) {
	currency, ok := c.Currencies[code]
	return currency, ok
}
