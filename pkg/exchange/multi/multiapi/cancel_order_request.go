package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

// CancelOrderRequest cancels one open order, the response is the cancelled order
type CancelOrderRequest struct {
	client *RestClient

	market  string
	orderID string
	extra   Params
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

func (r *CancelOrderRequest) Market(market string) *CancelOrderRequest {
	r.market = market
	return r
}

func (r *CancelOrderRequest) OrderID(orderID string) *CancelOrderRequest {
	r.orderID = orderID
	return r
}

func (r *CancelOrderRequest) Params(params Params) *CancelOrderRequest {
	r.extra = params
	return r
}

func (r *CancelOrderRequest) GetParameters() Params {
	return Params{
		{Key: "market", Value: r.market},
		{Key: "orderId", Value: r.orderID},
	}.Extend(r.extra)
}

func (r *CancelOrderRequest) Do(ctx context.Context) (*fastjson.Value, error) {
	return r.client.call(ctx, endpointOrderCancel, r.GetParameters())
}
