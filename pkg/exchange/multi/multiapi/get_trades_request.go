package multiapi

import (
	"context"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

/*
sample:

	{
	  "result": [
	    {"id": 100, "time": 1584500000, "type": "buy", "price": "9000", "amount": "0.5"}
	  ]
	}
*/
type GetTradesRequest struct {
	client *RestClient

	market string
	limit  *int
	extra  Params
}

func (c *RestClient) NewGetTradesRequest() *GetTradesRequest {
	return &GetTradesRequest{client: c}
}

func (r *GetTradesRequest) Market(market string) *GetTradesRequest {
	r.market = market
	return r
}

func (r *GetTradesRequest) Limit(limit int) *GetTradesRequest {
	r.limit = &limit
	return r
}

func (r *GetTradesRequest) Params(params Params) *GetTradesRequest {
	r.extra = params
	return r
}

func (r *GetTradesRequest) GetParameters() Params {
	params := Params{{Key: "market", Value: r.market}}
	if r.limit != nil {
		params.Set("limit", *r.limit)
	}

	return params.Extend(r.extra)
}

func (r *GetTradesRequest) Do(ctx context.Context) ([]*fastjson.Value, error) {
	data, err := r.client.call(ctx, endpointMarketTrade, r.GetParameters())
	if err != nil {
		return nil, err
	}

	result := data.Get("result")
	if result == nil || result.Type() == fastjson.TypeNull {
		return nil, nil
	}

	trades, err := result.Array()
	if err != nil {
		return nil, errors.Wrap(err, "unexpected trade result")
	}

	return trades, nil
}
