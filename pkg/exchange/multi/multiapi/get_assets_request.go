package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	[
	  {
	    "id": 1,
	    "name": "BTC",
	    "displayName": "Bitcoin",
	    "status": 1,
	    "withdrawFee": "0.0005",
	    "precWithdraw": 8,
	    "minAmount": "0.0001",
	    "minWithdrawAmount": "0.002"
	  }
	]
*/
type GetAssetListRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetAssetListRequest() *GetAssetListRequest {
	return &GetAssetListRequest{client: c}
}

func (r *GetAssetListRequest) Do(ctx context.Context) ([]*fastjson.Value, error) {
	return r.client.callArray(ctx, endpointAssetList, nil)
}
