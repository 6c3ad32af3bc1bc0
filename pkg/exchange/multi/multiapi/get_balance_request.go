package multiapi

import (
	"context"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

/*
sample:

	{
	  "exchange": {
	    "BTC": {"available": "1.5", "freeze": "0.25"},
	    "USD": {"available": "100", "freeze": "0"}
	  }
	}
*/
type GetBalanceRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetBalanceRequest() *GetBalanceRequest {
	return &GetBalanceRequest{client: c}
}

// Do returns the exchange account block
func (r *GetBalanceRequest) Do(ctx context.Context) (*fastjson.Value, error) {
	data, err := r.client.call(ctx, endpointAssetBalance, nil)
	if err != nil {
		return nil, err
	}

	account := data.Get("exchange")
	if account == nil || account.Type() != fastjson.TypeObject {
		return nil, errors.New("balance response does not contain the exchange account")
	}

	return account, nil
}
