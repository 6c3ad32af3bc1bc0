package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	[
	  {
	    "market": "btcusd",
	    "high": "9200", "low": "8800", "bid": "9000", "ask": "9001",
	    "open": "8900", "close": "9000.5",
	    "pairVolume": "120.5", "baseVolume": "1084500"
	  }
	]

"pairVolume" is the base currency volume and "baseVolume" is the quote currency volume.
*/
type GetMarketStatusAllRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetMarketStatusAllRequest() *GetMarketStatusAllRequest {
	return &GetMarketStatusAllRequest{client: c}
}

func (r *GetMarketStatusAllRequest) Do(ctx context.Context) ([]*fastjson.Value, error) {
	return r.client.callArray(ctx, endpointMarketStatusAll, nil)
}
