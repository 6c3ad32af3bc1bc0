package multi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"

	"github.com/multiio/multigo/pkg/exchange/multi/multiapi"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

func mustParse(t *testing.T, s string) *fastjson.Value {
	v, err := fastjson.Parse(s)
	require.NoError(t, err)
	return v
}

func mustParseArray(t *testing.T, s string) []*fastjson.Value {
	values, err := mustParse(t, s).Array()
	require.NoError(t, err)
	return values
}

var btcusd = types.Market{
	ID:      "btcusd",
	Symbol:  "BTC/USD",
	Base:    "BTC",
	Quote:   "USD",
	BaseID:  "btc",
	QuoteID: "usd",
	Active:  true,
}

func Test_toGlobalMarket(t *testing.T) {
	m := toGlobalMarket(mustParse(t, `{"name":"btcusd","pair":"BTC","base":"USD","pairPrec":4,"basePrec":2,"minAmount":"0.001"}`))

	assert.Equal(t, "btcusd", m.ID)
	assert.Equal(t, "BTC/USD", m.Symbol)
	assert.Equal(t, "BTC", m.Base)
	assert.Equal(t, "USD", m.Quote)
	assert.Equal(t, "btc", m.BaseID)
	assert.Equal(t, "usd", m.QuoteID)
	assert.True(t, m.Active)
	assert.Equal(t, util.Ptr(4), m.Precision.Amount)
	assert.Equal(t, util.Ptr(2), m.Precision.Price)
	assert.Equal(t, util.Ptr(0.001), m.Limits.Amount.Min)
	assert.Nil(t, m.Limits.Amount.Max)
	assert.Nil(t, m.Limits.Price.Min)
	assert.Nil(t, m.Limits.Price.Max)
	assert.Nil(t, m.Limits.Cost.Min)
	assert.Nil(t, m.Limits.Cost.Max)
	assert.JSONEq(t, `{"name":"btcusd","pair":"BTC","base":"USD","pairPrec":4,"basePrec":2,"minAmount":"0.001"}`, string(m.Info))
}

func Test_toGlobalMarkets(t *testing.T) {
	markets := toGlobalMarkets(mustParseArray(t, `[
		{"name":"btcusd","pair":"BTC","base":"USD"},
		{"name":"xbteur","pair":"xbt","base":"eur","minAmount":"abc"},
		{"name":"broken"}
	]`))

	require.Len(t, markets, 3)
	for _, m := range markets {
		assert.Equal(t, m.Base+"/"+m.Quote, m.Symbol)
	}

	assert.Equal(t, "BTC/EUR", markets[1].Symbol)
	assert.Equal(t, "btc", markets[1].BaseID)
	assert.Nil(t, markets[1].Limits.Amount.Min)
	assert.Nil(t, markets[1].Precision.Amount)
	assert.Equal(t, "/", markets[2].Symbol)
}

func Test_toGlobalCurrencies(t *testing.T) {
	currencies := toGlobalCurrencies(mustParseArray(t, `[
		{"id":1,"name":"BTC","displayName":"Bitcoin","status":1,"withdrawFee":"0.0005","precWithdraw":8,"minAmount":"0.0001","minWithdrawAmount":"0.002"},
		{"id":2,"name":"XBT","displayName":"Legacy Bitcoin","status":"disabled"},
		{"id":3,"name":"eth","displayName":"Ether","status":true}
	]`))

	require.Len(t, currencies, 2)

	// XBT is the common code BTC, the later entry wins
	btc := currencies["BTC"]
	assert.Equal(t, "xbt", btc.ID)
	assert.Equal(t, "Legacy Bitcoin", btc.Name)
	assert.Equal(t, "disabled", btc.Active)
	assert.Equal(t, util.Ptr(int64(2)), btc.NumericID)
	assert.Nil(t, btc.Fee)

	eth := currencies["ETH"]
	assert.Equal(t, "eth", eth.ID)
	assert.Equal(t, true, eth.Active)

	first := toGlobalCurrency(mustParseArray(t, `[{"id":1,"name":"BTC","displayName":"Bitcoin","status":1,"withdrawFee":"0.0005","precWithdraw":8,"minAmount":"0.0001","minWithdrawAmount":"0.002"}]`)[0])
	assert.Equal(t, "btc", first.ID)
	assert.Equal(t, "BTC", first.Code)
	assert.Equal(t, float64(1), first.Active)
	assert.Equal(t, util.Ptr(0.0005), first.Fee)
	assert.Equal(t, util.Ptr(8.0), first.Precision)
	assert.Equal(t, util.Ptr(0.0001), first.Limits.Amount.Min)
	assert.Equal(t, util.Ptr(0.002), first.Limits.Withdraw.Min)
	assert.Nil(t, first.Limits.Withdraw.Max)
}

func Test_toGlobalOrderBook(t *testing.T) {
	book := toGlobalOrderBook("BTC/USD", mustParse(t, `{
		"timestamp": 1584500000,
		"bids": [["9000", "1.2"], ["9000.5", "0.1"], ["bad", "1"]],
		"asks": [[9002, 2], ["9001", "0.5"]]
	}`))

	assert.Equal(t, "BTC/USD", book.Symbol)
	assert.Equal(t, util.Ptr(int64(1584500000000)), book.Timestamp)
	assert.Equal(t, "2020-03-18T02:53:20.000Z", book.Datetime)
	assert.Equal(t, types.PriceVolumeSlice{{Price: 9000.5, Volume: 0.1}, {Price: 9000, Volume: 1.2}}, book.Bids)
	assert.Equal(t, types.PriceVolumeSlice{{Price: 9001, Volume: 0.5}, {Price: 9002, Volume: 2}}, book.Asks)

	bid, ok := book.BestBid()
	assert.True(t, ok)
	assert.Equal(t, 9000.5, bid.Price)

	empty := toGlobalOrderBook("BTC/USD", mustParse(t, `{}`))
	assert.Nil(t, empty.Timestamp)
	assert.Empty(t, empty.Datetime)
	assert.Empty(t, empty.Bids)
}

func Test_selectMarketTicker(t *testing.T) {
	tickers := mustParseArray(t, `[
		{"market":"ethusd","close":"200","pairVolume":"10","baseVolume":"2000"},
		{"market":"btcusd","high":"9200","low":"8800","bid":"9000","ask":"9001","open":"8900","close":"9000.5","pairVolume":"120.5","baseVolume":"1084500"}
	]`)

	raw, ok := selectMarketTicker(tickers, "btcusd")
	require.True(t, ok)

	ticker := toGlobalTicker("BTC/USD", raw)
	assert.Equal(t, "BTC/USD", ticker.Symbol)
	assert.Equal(t, util.Ptr(120.5), ticker.BaseVolume)
	assert.Equal(t, util.Ptr(1084500.0), ticker.QuoteVolume)
	assert.Equal(t, util.Ptr(9000.5), ticker.Close)
	assert.Equal(t, ticker.Close, ticker.Last)
	assert.Equal(t, util.Ptr(9200.0), ticker.High)
	assert.Equal(t, util.Ptr(8800.0), ticker.Low)
	assert.Equal(t, util.Ptr(9000.0), ticker.Bid)
	assert.Equal(t, util.Ptr(9001.0), ticker.Ask)
	assert.Equal(t, util.Ptr(8900.0), ticker.Open)
	assert.Nil(t, ticker.BidVolume)
	assert.Nil(t, ticker.AskVolume)
	assert.Nil(t, ticker.VWAP)
	assert.Nil(t, ticker.Change)
	assert.Nil(t, ticker.Percentage)
	assert.Nil(t, ticker.Average)
	assert.Nil(t, ticker.PreviousClose)
	assert.Nil(t, ticker.Timestamp)
	assert.Empty(t, ticker.Datetime)

	_, ok = selectMarketTicker(tickers, "ltcusd")
	assert.False(t, ok)
}

func Test_toGlobalTrade(t *testing.T) {
	trade := toGlobalTrade(btcusd, mustParse(t, `{"id":100,"time":1584500000,"type":"buy","price":"9000","amount":"0.5"}`))

	assert.Equal(t, "100", trade.ID)
	assert.Equal(t, util.Ptr(int64(1584500000000)), trade.Timestamp)
	assert.Equal(t, "2020-03-18T02:53:20.000Z", trade.Datetime)
	assert.Equal(t, "BTC/USD", trade.Symbol)
	assert.Equal(t, "buy", trade.Side)
	assert.Equal(t, util.Ptr(9000.0), trade.Price)
	assert.Equal(t, util.Ptr(0.5), trade.Amount)
	assert.Equal(t, util.Ptr(4500.0), trade.Cost)
	assert.Nil(t, trade.Fee)
	assert.Empty(t, trade.Order)
	assert.Empty(t, trade.Type)
	assert.Empty(t, trade.TakerOrMaker)

	t.Run("side is passed through", func(t *testing.T) {
		trade := toGlobalTrade(btcusd, mustParse(t, `{"id":"101","type":"2","price":"x"}`))
		assert.Equal(t, "2", trade.Side)
		assert.Nil(t, trade.Price)
		assert.Nil(t, trade.Cost)
		assert.Nil(t, trade.Timestamp)
	})

	t.Run("sorted by time", func(t *testing.T) {
		trades := toGlobalTrades(btcusd, mustParseArray(t, `[
			{"id":2,"time":20,"type":"sell"},
			{"id":1,"time":10,"type":"buy"}
		]`))
		require.Len(t, trades, 2)
		assert.Equal(t, "1", trades[0].ID)
	})
}

func Test_toGlobalBalances(t *testing.T) {
	balances := toGlobalBalances(mustParse(t, `{"BTC":{"available":"1.5","freeze":"0.25"}}`))

	assert.Equal(t, types.BalanceMap{
		"BTC": {
			Currency: "BTC",
			Free:     util.Ptr(1.5),
			Used:     util.Ptr(0.25),
			Total:    util.Ptr(1.75),
		},
	}, balances.Balances)
	assert.JSONEq(t, `{"BTC":{"available":"1.5","freeze":"0.25"}}`, string(balances.Info))

	partial := toGlobalBalances(mustParse(t, `{"USD":{"available":"100"}}`))
	assert.Equal(t, util.Ptr(100.0), partial.Balances["USD"].Free)
	assert.Nil(t, partial.Balances["USD"].Used)
	assert.Nil(t, partial.Balances["USD"].Total)
}

// orderTypeCodes are the type codes the venue reports for the order types it accepted
var orderTypeCodes = map[string]string{
	multiapi.OrderTypeLimit:  "1",
	multiapi.OrderTypeMarket: "2",
}

// buildOrderFixture places the order request with the given type and side and
// returns the order response the venue echoes for it
func buildOrderFixture(t *testing.T, orderType types.OrderType, side types.SideType) *fastjson.Value {
	params := multiapi.NewClient().NewPlaceOrderRequest().
		Market(btcusd.ID).
		Side(multiapi.ToOrderSide(string(side))).
		Amount(2).
		Price(9000).
		OrderType(string(orderType)).
		GetParameters()

	value := func(key string) string {
		v, ok := params.Get(key)
		require.True(t, ok, "request param %s", key)
		return multiapi.FormatValue(v)
	}

	typeCode, ok := orderTypeCodes[value("type")]
	require.True(t, ok, "unexpected order type %s", value("type"))

	return mustParse(t, `{
		"id": "8123",
		"market": "`+value("market")+`",
		"cTime": 1584500000,
		"type": "`+typeCode+`",
		"side": "`+value("side")+`",
		"price": "`+value("price")+`",
		"amount": "`+value("amount")+`",
		"left": "0.5",
		"takerFee": "0.002",
		"makerFee": "0.001"
	}`)
}

func Test_toGlobalOrder(t *testing.T) {
	for _, orderType := range []types.OrderType{types.OrderTypeLimit, types.OrderTypeMarket} {
		for _, side := range []types.SideType{types.SideTypeBuy, types.SideTypeSell} {
			order := toGlobalOrder(btcusd, buildOrderFixture(t, orderType, side))
			assert.Equal(t, orderType, order.Type)
			assert.Equal(t, side, order.Side)
		}
	}

	order := toGlobalOrder(btcusd, buildOrderFixture(t, types.OrderTypeLimit, types.SideTypeBuy))
	assert.Equal(t, "8123", order.ID)
	assert.Equal(t, "BTC/USD", order.Symbol)
	assert.Equal(t, util.Ptr(int64(1584500000000)), order.Timestamp)
	assert.Equal(t, util.Ptr(9000.0), order.Price)
	assert.Equal(t, util.Ptr(2.0), order.Amount)
	assert.Equal(t, util.Ptr(1.5), order.Filled)
	assert.Equal(t, util.Ptr(0.5), order.Remaining)
	assert.Equal(t, &types.Fee{Cost: util.Ptr(0.002), Currency: "BTC"}, order.Fee)
	assert.Empty(t, order.Status)
	assert.Empty(t, order.ClientOrderID)
	assert.Nil(t, order.Average)
	assert.Nil(t, order.Trades)
	assert.Nil(t, order.LastTradeTimestamp)

	sell := toGlobalOrder(btcusd, buildOrderFixture(t, types.OrderTypeLimit, types.SideTypeSell))
	assert.Equal(t, util.Ptr(0.001), sell.Fee.Cost)

	t.Run("unknown discriminators fall back to market buy", func(t *testing.T) {
		order := toGlobalOrder(btcusd, mustParse(t, `{"id":"1","type":"9","side":null}`))
		assert.Equal(t, types.OrderTypeMarket, order.Type)
		assert.Equal(t, types.SideTypeBuy, order.Side)
		assert.Nil(t, order.Filled)
		assert.Nil(t, order.Cost)
	})
}

// the cost is filled times amount, not filled times price
func Test_toGlobalOrder_Cost(t *testing.T) {
	order := toGlobalOrder(btcusd, buildOrderFixture(t, types.OrderTypeLimit, types.SideTypeBuy))
	assert.Equal(t, util.Ptr(3.0), order.Cost)
}

func Test_toGlobalKLines(t *testing.T) {
	klines := toGlobalKLines(mustParseArray(t, `[
		[1584503600000, "9050", "9150", "9000", "9100", "3"],
		[1584500000000, "9000", "9100", "8950", "9050", "12.5"],
		[1584507200000, "9100"],
		["x", "1", "1", "1", "1", "1"]
	]`))

	require.Len(t, klines, 2)
	assert.Equal(t, types.KLine{
		Timestamp: 1584500000000,
		Open:      util.Ptr(9000.0),
		High:      util.Ptr(9100.0),
		Low:       util.Ptr(8950.0),
		Close:     util.Ptr(9050.0),
		Volume:    util.Ptr(12.5),
	}, klines[0])
	assert.Equal(t, int64(1584503600000), klines[1].Timestamp)
}

func Test_toGlobalTradingFees(t *testing.T) {
	fees := toGlobalTradingFees(mustParseArray(t, `[
		{"minVolume":0,"makerFee":0.001,"takerFee":0.002},
		{"minVolume":"100000","makerFee":"0.0008","takerFee":"0.0015"}
	]`))

	assert.Equal(t, []types.TradingFeeTier{
		{MinVolume: util.Ptr(0.0), Maker: util.Ptr(0.001), Taker: util.Ptr(0.002)},
		{MinVolume: util.Ptr(100000.0), Maker: util.Ptr(0.0008), Taker: util.Ptr(0.0015)},
	}, fees.Fees)
	assert.JSONEq(t, `[{"minVolume":0,"makerFee":0.001,"takerFee":0.002},{"minVolume":"100000","makerFee":"0.0008","takerFee":"0.0015"}]`, string(fees.Info))
}

func Test_toGlobalDepositAddress(t *testing.T) {
	response := mustParse(t, `{"BTC":{"address":"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy","memo":null},"XRP":{"address":"rEb8","memo":12345}}`)

	btc, ok := toGlobalDepositAddress("BTC", response)
	require.True(t, ok)
	assert.Equal(t, "BTC", btc.Currency)
	assert.Equal(t, "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", btc.Address)
	assert.Nil(t, btc.Tag)

	xrp, ok := toGlobalDepositAddress("XRP", response)
	require.True(t, ok)
	assert.Equal(t, float64(12345), xrp.Tag)

	_, ok = toGlobalDepositAddress("ETH", response)
	assert.False(t, ok)
}
