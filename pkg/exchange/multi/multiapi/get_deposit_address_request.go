package multiapi

import (
	"context"

	"github.com/valyala/fastjson"
)

/*
sample:

	{
	  "BTC": {"address": "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", "memo": null}
	}
*/
type GetDepositAddressRequest struct {
	client *RestClient

	symbol string
	extra  Params
}

func (c *RestClient) NewGetDepositAddressRequest() *GetDepositAddressRequest {
	return &GetDepositAddressRequest{client: c}
}

// Symbol is the currency code
func (r *GetDepositAddressRequest) Symbol(symbol string) *GetDepositAddressRequest {
	r.symbol = symbol
	return r
}

func (r *GetDepositAddressRequest) Params(params Params) *GetDepositAddressRequest {
	r.extra = params
	return r
}

func (r *GetDepositAddressRequest) GetParameters() Params {
	return Params{{Key: "symbol", Value: r.symbol}}.Extend(r.extra)
}

func (r *GetDepositAddressRequest) Do(ctx context.Context) (*fastjson.Value, error) {
	return r.client.call(ctx, endpointAssetDeposit, r.GetParameters())
}
