package multi

import (
	"sort"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/multiio/multigo/pkg/exchange/multi/multiapi"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

// the venue names the base currency "pair" and the quote currency "base"
func toGlobalMarket(m *fastjson.Value) types.Market {
	baseID, _ := util.SafeString(m, "pair")
	quoteID, _ := util.SafeString(m, "base")
	id, _ := util.SafeString(m, "name")

	base := util.SafeCurrencyCode(baseID)
	quote := util.SafeCurrencyCode(quoteID)

	return types.Market{
		ID:      id,
		Symbol:  base + "/" + quote,
		Base:    base,
		Quote:   quote,
		BaseID:  strings.ToLower(base),
		QuoteID: strings.ToLower(quote),
		Active:  true,
		Precision: types.MarketPrecision{
			Amount: toIntPtr(util.SafeInteger(m, "pairPrec")),
			Price:  toIntPtr(util.SafeInteger(m, "basePrec")),
		},
		Limits: types.MarketLimits{
			Amount: types.MinMax{Min: util.SafeFloat(m, "minAmount")},
		},
		Info: util.RawJSON(m),
	}
}

func toGlobalMarkets(markets []*fastjson.Value) []types.Market {
	result := make([]types.Market, 0, len(markets))
	for _, m := range markets {
		result = append(result, toGlobalMarket(m))
	}

	return result
}

func toGlobalCurrency(c *fastjson.Value) types.Currency {
	name, _ := util.SafeString(c, "name")
	displayName, _ := util.SafeString(c, "displayName")

	return types.Currency{
		ID:        strings.ToLower(name),
		NumericID: util.SafeInteger(c, "id"),
		Code:      util.SafeCurrencyCode(name),
		Name:      displayName,
		Active:    util.SafeValue(c, "status"),
		Fee:       util.SafeFloat(c, "withdrawFee"),
		Precision: util.SafeFloat(c, "precWithdraw"),
		Limits: types.CurrencyLimits{
			Amount:   types.MinMax{Min: util.SafeFloat(c, "minAmount")},
			Withdraw: types.MinMax{Min: util.SafeFloat(c, "minWithdrawAmount")},
		},
		Info: util.RawJSON(c),
	}
}

// toGlobalCurrencies keys the currencies by code, a later entry replaces an earlier one with the same code
func toGlobalCurrencies(currencies []*fastjson.Value) types.CurrencyMap {
	result := types.CurrencyMap{}
	for _, c := range currencies {
		currency := toGlobalCurrency(c)
		result[currency.Code] = currency
	}

	return result
}

func toGlobalPriceVolumes(levels []*fastjson.Value) types.PriceVolumeSlice {
	slice := make(types.PriceVolumeSlice, 0, len(levels))
	for _, level := range levels {
		pair := level.GetArray()
		if len(pair) < 2 {
			continue
		}

		price := util.FloatValue(pair[0])
		volume := util.FloatValue(pair[1])
		if price == nil || volume == nil {
			continue
		}

		slice = append(slice, types.PriceVolume{Price: *price, Volume: *volume})
	}

	return slice
}

func toGlobalOrderBook(symbol string, depth *fastjson.Value) *types.OrderBook {
	book := &types.OrderBook{
		Symbol:    symbol,
		Bids:      toGlobalPriceVolumes(depth.GetArray("bids")),
		Asks:      toGlobalPriceVolumes(depth.GetArray("asks")),
		Timestamp: util.SafeTimestamp(depth, "timestamp"),
	}

	book.Bids.SortBids()
	book.Asks.SortAsks()
	book.Datetime = util.ISO8601(book.Timestamp)
	return book
}

// selectMarketTicker returns the first status entry of the market id
func selectMarketTicker(tickers []*fastjson.Value, marketID string) (*fastjson.Value, bool) {
	for _, ticker := range tickers {
		if id, ok := util.SafeString(ticker, "market"); ok && id == marketID {
			return ticker, true
		}
	}

	return nil, false
}

// the venue reports the base volume as "pairVolume" and the quote volume as "baseVolume"
func toGlobalTicker(symbol string, ticker *fastjson.Value) *types.Ticker {
	return &types.Ticker{
		Symbol:      symbol,
		High:        util.SafeFloat(ticker, "high"),
		Low:         util.SafeFloat(ticker, "low"),
		Bid:         util.SafeFloat(ticker, "bid"),
		Ask:         util.SafeFloat(ticker, "ask"),
		Open:        util.SafeFloat(ticker, "open"),
		Close:       util.SafeFloat(ticker, "close"),
		Last:        util.SafeFloat(ticker, "close"),
		BaseVolume:  util.SafeFloat(ticker, "pairVolume"),
		QuoteVolume: util.SafeFloat(ticker, "baseVolume"),
		Info:        util.RawJSON(ticker),
	}
}

func toGlobalTrade(market types.Market, trade *fastjson.Value) types.Trade {
	id, _ := util.SafeString(trade, "id")
	side, _ := util.SafeString(trade, "type")
	timestamp := util.SafeTimestamp(trade, "time")
	price := util.SafeFloat(trade, "price")
	amount := util.SafeFloat(trade, "amount")

	return types.Trade{
		ID:        id,
		Timestamp: timestamp,
		Datetime:  util.ISO8601(timestamp),
		Symbol:    market.Symbol,
		Side:      side,
		Price:     price,
		Amount:    amount,
		Cost:      mul(price, amount),
		Info:      util.RawJSON(trade),
	}
}

func toGlobalTrades(market types.Market, trades []*fastjson.Value) []types.Trade {
	result := make([]types.Trade, 0, len(trades))
	for _, trade := range trades {
		result = append(result, toGlobalTrade(market, trade))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return timestampOf(result[i].Timestamp) < timestampOf(result[j].Timestamp)
	})
	return result
}

// toGlobalBalances maps the exchange account block, the free amount is "available" and the used amount is "freeze"
func toGlobalBalances(account *fastjson.Value) *types.AccountBalances {
	balances := types.BalanceMap{}

	object, err := account.Object()
	if err == nil {
		object.Visit(func(key []byte, v *fastjson.Value) {
			code := string(key)
			free := util.SafeFloat(v, "available")
			used := util.SafeFloat(v, "freeze")
			balances[code] = types.Balance{
				Currency: code,
				Free:     free,
				Used:     used,
				Total:    add(free, used),
			}
		})
	}

	return &types.AccountBalances{
		Balances: balances,
		Info:     util.RawJSON(account),
	}
}

var orderTypeMap = map[string]types.OrderType{
	"1": types.OrderTypeLimit,
}

var orderSideMap = map[string]types.SideType{
	"1": types.SideTypeSell,
}

func toGlobalOrderType(raw string) types.OrderType {
	if t, ok := orderTypeMap[raw]; ok {
		return t
	}

	return types.OrderTypeMarket
}

func toGlobalSideType(raw string) types.SideType {
	if s, ok := orderSideMap[raw]; ok {
		return s
	}

	return types.SideTypeBuy
}

// toGlobalOrder converts the order response. The cost is the filled amount multiplied by the order amount,
// the way the venue integration has always reported it.
func toGlobalOrder(market types.Market, order *fastjson.Value) *types.Order {
	id, _ := util.SafeString(order, "id")
	rawType, _ := util.SafeString(order, "type")
	rawSide, _ := util.SafeString(order, "side")
	timestamp := util.SafeTimestamp(order, "cTime")

	side := toGlobalSideType(rawSide)
	amount := util.SafeFloat(order, "amount")
	remaining := util.SafeFloat(order, "left")
	filled := sub(amount, remaining)

	fee := &types.Fee{Currency: market.Base}
	if side == types.SideTypeBuy {
		fee.Cost = util.SafeFloat(order, "takerFee")
	} else {
		fee.Cost = util.SafeFloat(order, "makerFee")
	}

	return &types.Order{
		ID:        id,
		Timestamp: timestamp,
		Datetime:  util.ISO8601(timestamp),
		Symbol:    market.Symbol,
		Type:      toGlobalOrderType(rawType),
		Side:      side,
		Price:     util.SafeFloat(order, "price"),
		Amount:    amount,
		Filled:    filled,
		Remaining: remaining,
		Cost:      mul(filled, amount),
		Fee:       fee,
		Info:      util.RawJSON(order),
	}
}

// toGlobalKLine converts a [timestamp, open, high, low, close, volume] row
func toGlobalKLine(row *fastjson.Value) (types.KLine, bool) {
	values := row.GetArray()
	if len(values) < 6 {
		return types.KLine{}, false
	}

	ts := util.FloatValue(values[0])
	if ts == nil {
		return types.KLine{}, false
	}

	return types.KLine{
		Timestamp: int64(*ts),
		Open:      util.FloatValue(values[1]),
		High:      util.FloatValue(values[2]),
		Low:       util.FloatValue(values[3]),
		Close:     util.FloatValue(values[4]),
		Volume:    util.FloatValue(values[5]),
	}, true
}

func toGlobalKLines(rows []*fastjson.Value) []types.KLine {
	klines := make([]types.KLine, 0, len(rows))
	for _, row := range rows {
		if k, ok := toGlobalKLine(row); ok {
			klines = append(klines, k)
		}
	}

	sort.SliceStable(klines, func(i, j int) bool {
		return klines[i].Timestamp < klines[j].Timestamp
	})
	return klines
}

func toGlobalTradingFees(schedules []*fastjson.Value) *types.TradingFees {
	fees := &types.TradingFees{Fees: make([]types.TradingFeeTier, 0, len(schedules))}
	raw := make([]byte, 0, 64)
	raw = append(raw, '[')
	for i, s := range schedules {
		fees.Fees = append(fees.Fees, types.TradingFeeTier{
			MinVolume: util.SafeFloat(s, "minVolume"),
			Maker:     util.SafeFloat(s, "makerFee"),
			Taker:     util.SafeFloat(s, "takerFee"),
		})

		if i > 0 {
			raw = append(raw, ',')
		}
		raw = s.MarshalTo(raw)
	}

	fees.Info = append(raw, ']')
	return fees
}

// toGlobalDepositAddress reads the address entry of the currency code from the response keyed by code
func toGlobalDepositAddress(code string, response *fastjson.Value) (*types.DepositAddress, bool) {
	entry := response.Get(code)
	if entry == nil || entry.Type() != fastjson.TypeObject {
		return nil, false
	}

	address, _ := util.SafeString(entry, "address")
	return &types.DepositAddress{
		Currency: code,
		Address:  address,
		Tag:      util.SafeValue(entry, "memo"),
		Info:     util.RawJSON(entry),
	}, true
}

func toLocalOrderSide(side types.SideType) multiapi.OrderSide {
	return multiapi.ToOrderSide(string(side))
}

func toIntPtr(v *int64) *int {
	if v == nil {
		return nil
	}

	i := int(*v)
	return &i
}

func timestampOf(ts *int64) int64 {
	if ts == nil {
		return 0
	}

	return *ts
}

func mul(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}

	return util.Ptr(*a * *b)
}

func add(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}

	return util.Ptr(*a + *b)
}

func sub(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}

	return util.Ptr(*a - *b)
}
