package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	[
	  {"minVolume": 0, "makerFee": 0.001, "takerFee": 0.002}
	]
*/
type GetFeeSchedulesRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetFeeSchedulesRequest() *GetFeeSchedulesRequest {
	return &GetFeeSchedulesRequest{client: c}
}

func (r *GetFeeSchedulesRequest) Do(ctx context.Context) ([]*fastjson.Value, error) {
	return r.client.callArray(ctx, endpointFeeSchedules, nil)
}
