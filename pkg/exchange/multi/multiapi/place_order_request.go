package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

type OrderSide int

const (
	OrderSideSell OrderSide = 1
	OrderSideBuy  OrderSide = 2
)

const (
	OrderTypeLimit  = "limit"
	OrderTypeMarket = "market"

	// OrderTypeStopLimit is the generic stop limit type accepted in the extra params
	OrderTypeStopLimit = "stopLimit"

	orderTypeStopLimitLiteral = "stoplimit"
	defaultStopLimitGtLt      = 1
)

/*
sample:

	{
	  "id": "8123",
	  "market": "btcusd",
	  "cTime": 1584500000,
	  "type": "1",
	  "side": "2",
	  "price": "9000",
	  "amount": "1",
	  "left": "0.25",
	  "takerFee": "0.002",
	  "makerFee": "0.001"
	}

side "1" is sell, type "1" is limit.
*/
type PlaceOrderRequest struct {
	client *RestClient

	market    string
	side      OrderSide
	amount    float64
	price     *float64
	orderType string
	extra     Params
}

func (c *RestClient) NewPlaceOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{client: c}
}

func (r *PlaceOrderRequest) Market(market string) *PlaceOrderRequest {
	r.market = market
	return r
}

func (r *PlaceOrderRequest) Side(side OrderSide) *PlaceOrderRequest {
	r.side = side
	return r
}

func (r *PlaceOrderRequest) Amount(amount float64) *PlaceOrderRequest {
	r.amount = amount
	return r
}

func (r *PlaceOrderRequest) Price(price float64) *PlaceOrderRequest {
	r.price = &price
	return r
}

func (r *PlaceOrderRequest) OrderType(orderType string) *PlaceOrderRequest {
	r.orderType = orderType
	return r
}

func (r *PlaceOrderRequest) Params(params Params) *PlaceOrderRequest {
	r.extra = params
	return r
}

// GetParameters builds the order body. A stop limit order requested through the extra
// params is rewritten to the venue's literal type with the stop and gtlt fields.
func (r *PlaceOrderRequest) GetParameters() Params {
	// a nil price is dropped when the request is signed
	var price interface{}
	if r.price != nil {
		price = *r.price
	}

	params := Params{
		{Key: "market", Value: r.market},
		{Key: "side", Value: int(r.side)},
		{Key: "amount", Value: r.amount},
		{Key: "price", Value: price},
		{Key: "type", Value: r.orderType},
	}

	extra := r.extra
	if t, ok := extra.Get("type"); ok && t == OrderTypeStopLimit {
		stop, _ := extra.Get("stopPrice")
		gtlt, ok := extra.Get("gtlt")
		if !ok || gtlt == nil {
			gtlt = defaultStopLimitGtLt
		}

		params.Set("type", orderTypeStopLimitLiteral)
		params.Set("stop", stop)
		params.Set("gtlt", gtlt)
		extra = extra.Omit("type", "stopPrice", "gtlt")
	}

	return params.Extend(extra)
}

func (r *PlaceOrderRequest) Do(ctx context.Context) (*fastjson.Value, error) {
	return r.client.call(ctx, endpointOrder, r.GetParameters())
}

func ToOrderSide(side string) OrderSide {
	if side == "sell" {
		return OrderSideSell
	}

	return OrderSideBuy
}
