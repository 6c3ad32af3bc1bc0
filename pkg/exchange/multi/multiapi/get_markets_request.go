package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	[
	  {
	    "name": "btcusd",
	    "pair": "BTC",
	    "base": "USD",
	    "pairPrec": 4,
	    "basePrec": 2,
	    "minAmount": "0.001"
	  }
	]

the venue names the base currency "pair" and the quote currency "base".
*/
type GetMarketListRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetMarketListRequest() *GetMarketListRequest {
	return &GetMarketListRequest{client: c}
}

func (r *GetMarketListRequest) Do(ctx context.Context) ([]*fastjson.Value, error) {
	return r.client.callArray(ctx, endpointMarketList, nil)
}
