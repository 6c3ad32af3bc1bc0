package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	[
	  [1584500000000, "9000", "9100", "8950", "9050", "12.5"]
	]
*/
type GetKLinesRequest struct {
	client *RestClient

	market string

	// interval is the kline period in seconds
	interval int64

	start *int64
	end   *int64
	extra Params
}

func (c *RestClient) NewGetKLinesRequest() *GetKLinesRequest {
	return &GetKLinesRequest{client: c}
}

func (r *GetKLinesRequest) Market(market string) *GetKLinesRequest {
	r.market = market
	return r
}

func (r *GetKLinesRequest) Interval(seconds int64) *GetKLinesRequest {
	r.interval = seconds
	return r
}

// Start is a unix timestamp in seconds
func (r *GetKLinesRequest) Start(start int64) *GetKLinesRequest {
	r.start = &start
	return r
}

// End is a unix timestamp in seconds
func (r *GetKLinesRequest) End(end int64) *GetKLinesRequest {
	r.end = &end
	return r
}

func (r *GetKLinesRequest) Params(params Params) *GetKLinesRequest {
	r.extra = params
	return r
}

func (r *GetKLinesRequest) GetParameters() Params {
	params := Params{
		{Key: "market", Value: r.market},
		{Key: "interval", Value: r.interval},
	}

	if r.start != nil {
		params.Set("start", *r.start)
	}

	if r.end != nil {
		params.Set("end", *r.end)
	}

	return params.Extend(r.extra)
}

func (r *GetKLinesRequest) Do(ctx context.Context) ([]*fastjson.Value, error) {
	return r.client.callArray(ctx, endpointMarketKLine, r.GetParameters())
}
