package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	{
	  "timestamp": 1584500000,
	  "bids": [["9000.5", "0.1"], ["9000", "1.2"]],
	  "asks": [["9001", "0.5"]]
	}
*/
type GetDepthRequest struct {
	client *RestClient

	market string
	limit  *int
	extra  Params
}

func (c *RestClient) NewGetDepthRequest() *GetDepthRequest {
	return &GetDepthRequest{client: c}
}

func (r *GetDepthRequest) Market(market string) *GetDepthRequest {
	r.market = market
	return r
}

// Limit is the number of levels, the server defaults to 20
func (r *GetDepthRequest) Limit(limit int) *GetDepthRequest {
	r.limit = &limit
	return r
}

func (r *GetDepthRequest) Params(params Params) *GetDepthRequest {
	r.extra = params
	return r
}

func (r *GetDepthRequest) GetParameters() Params {
	params := Params{{Key: "market", Value: r.market}}
	if r.limit != nil {
		params.Set("limit", *r.limit)
	}

	return params.Extend(r.extra)
}

func (r *GetDepthRequest) Do(ctx context.Context) (*fastjson.Value, error) {
	return r.client.call(ctx, endpointOrderDepth, r.GetParameters())
}
