package multiapi

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiio/multigo/pkg/testing/httptesting"
	"github.com/multiio/multigo/pkg/testutil"
)

var fixedNow = time.Unix(1584500000, 0)

func newTestClient(key, secret string) *RestClient {
	client := NewClient()
	client.Auth(key, secret)
	client.SetTimeNowFunc(func() time.Time { return fixedNow })
	return client
}

func getTestClientOrSkip(t *testing.T) *RestClient {
	if b, _ := strconv.ParseBool(os.Getenv("CI")); b {
		t.Skip("skip test for CI")
	}

	key, secret, ok := testutil.IntegrationTestConfigured(t, "MULTI")
	if !ok {
		t.Skip("MULTI_* env vars are not configured")
		return nil
	}

	client := NewClient()
	client.Auth(key, secret)
	return client
}

func TestRestClient_Sign(t *testing.T) {
	t.Run("public GET", func(t *testing.T) {
		client := newTestClient("", "")
		signed, err := client.Sign("order/depth", PublicAPI, http.MethodGet, Params{
			{Key: "market", Value: "btcusd"},
			{Key: "limit", Value: 20},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://staging-api.multi.io/api/v1/order/depth?market=btcusd&limit=20", signed.URL)
		assert.Equal(t, http.MethodGet, signed.Method)
		assert.Nil(t, signed.Body)
		assert.Nil(t, signed.Headers)
	})

	t.Run("public GET without params", func(t *testing.T) {
		client := newTestClient("", "")
		signed, err := client.Sign("market/list", PublicAPI, http.MethodGet, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://staging-api.multi.io/api/v1/market/list", signed.URL)
	})

	t.Run("private without credentials", func(t *testing.T) {
		client := newTestClient("key", "")
		_, err := client.Sign("asset/balance", PrivateAPI, http.MethodGet, nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingCredentials))

		client = newTestClient("", "secret")
		_, err = client.Sign("order", PrivateAPI, http.MethodPost, nil)
		assert.True(t, errors.Is(err, ErrMissingCredentials))
	})

	t.Run("private GET signs an empty payload", func(t *testing.T) {
		client := newTestClient("key", "secret")
		signed, err := client.Sign("asset/balance", PrivateAPI, http.MethodGet, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://staging-api.multi.io/api/v1/asset/balance", signed.URL)
		assert.Nil(t, signed.Body)
		assert.Equal(t, map[string]string{
			"Content-Type":            "application/json",
			"X-MULTI-API-KEY":         "key",
			"X-MULTI-API-SIGNATURE":   "c72ff42f0163e71a57c87a6887f6b19d08ca265456bdc6db4bd4376080821cee",
			"X-MULTI-API-TIMESTAMP":   "1584500000",
			"X-MULTI-API-SIGNED-PATH": "asset/balance",
		}, signed.Headers)
	})

	t.Run("private POST sends and signs the params", func(t *testing.T) {
		client := newTestClient("key", "secret")
		signed, err := client.Sign("order", PrivateAPI, http.MethodPost, Params{
			{Key: "market", Value: "btcusd"},
			{Key: "amount", Value: 0.5},
			{Key: "price", Value: nil},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://staging-api.multi.io/api/v1/order", signed.URL)
		assert.JSONEq(t, `{"market":"btcusd","amount":0.5}`, string(signed.Body))
		assert.Equal(t, "6ce0ba10ea390676d077a2f9433d8f51ace617a82998195af13b09cbdc52f5f6", signed.Headers[HeaderSignature])
		assert.Equal(t, "1584500000", signed.Headers[HeaderTimestamp])
	})

	t.Run("the timestamp follows the clock", func(t *testing.T) {
		client := newTestClient("key", "secret")
		first, err := client.Sign("order", PrivateAPI, http.MethodPost, Params{{Key: "market", Value: "btcusd"}})
		require.NoError(t, err)

		client.SetTimeNowFunc(func() time.Time { return fixedNow.Add(time.Second) })
		second, err := client.Sign("order", PrivateAPI, http.MethodPost, Params{{Key: "market", Value: "btcusd"}})
		require.NoError(t, err)

		assert.Equal(t, "1584500001", second.Headers[HeaderTimestamp])
		assert.NotEqual(t, first.Headers[HeaderSignature], second.Headers[HeaderSignature])
	})
}

func TestSignedRequest_NewHTTPRequest(t *testing.T) {
	client := newTestClient("key", "secret")
	signed, err := client.Sign("order/cancel", PrivateAPI, http.MethodPost, Params{
		{Key: "market", Value: "btcusd"},
		{Key: "orderId", Value: "42"},
	})
	require.NoError(t, err)

	req, err := signed.NewHTTPRequest(context.Background())
	require.NoError(t, err)

	// header names are kept in upper case
	assert.Equal(t, []string{"key"}, req.Header["X-MULTI-API-KEY"])
	assert.Equal(t, []string{"order/cancel"}, req.Header["X-MULTI-API-SIGNED-PATH"])
	assert.Equal(t, int64(len(signed.Body)), req.ContentLength)
}

func TestRestClient_Requests(t *testing.T) {
	transport := &httptesting.MockTransport{}
	client := newTestClient("key", "secret")
	client.HttpClient = &http.Client{Transport: transport}

	transport.GET("/api/v1/order/depth", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, `{"data":{"timestamp":1584500000,"bids":[["9000","1"]],"asks":[]}}`), nil
	})

	transport.GET("/api/v1/market/trade", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, `{"data":{"result":[{"id":1,"time":1584500000,"type":"buy","price":"9000","amount":"1"}]}}`), nil
	})

	transport.POST("/api/v1/order", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, `{"data":{"id":"8123","type":"1","side":"2"}}`), nil
	})

	transport.POST("/api/v1/asset/deposit", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusBadRequest, `{"message":"invalid symbol"}`), nil
	})

	transport.GET("/api/v1/fee_schedules", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, `{"message":"maintenance"}`), nil
	})

	ctx := context.Background()

	t.Run("GetDepthRequest", func(t *testing.T) {
		depth, err := client.NewGetDepthRequest().Market("btcusd").Limit(5).Do(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1584500000, depth.GetInt("timestamp"))
		assert.Equal(t, "market=btcusd&limit=5", transport.LastRequest().URL.RawQuery)
		assert.Empty(t, transport.LastRequest().Header.Get(HeaderSignature))
	})

	t.Run("GetTradesRequest", func(t *testing.T) {
		trades, err := client.NewGetTradesRequest().Market("btcusd").Do(ctx)
		require.NoError(t, err)
		assert.Len(t, trades, 1)
	})

	t.Run("PlaceOrderRequest", func(t *testing.T) {
		order, err := client.NewPlaceOrderRequest().
			Market("btcusd").
			Side(OrderSideBuy).
			Amount(1).
			Price(9000).
			OrderType(OrderTypeLimit).
			Do(ctx)
		require.NoError(t, err)
		assert.Equal(t, "8123", string(order.GetStringBytes("id")))

		last := transport.LastRequest()
		assert.JSONEq(t, `{"market":"btcusd","side":2,"amount":1,"price":9000,"type":"limit"}`, string(last.Body))
		assert.Equal(t, []string{"order"}, last.Header["X-MULTI-API-SIGNED-PATH"])

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(last.Body, &body))
		assert.Len(t, body, 5)
	})

	t.Run("error response", func(t *testing.T) {
		_, err := client.NewGetDepositAddressRequest().Symbol("XXX").Do(ctx)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, responseStatusCode(err))
	})

	t.Run("missing data", func(t *testing.T) {
		_, err := client.NewGetFeeSchedulesRequest().Do(ctx)
		assert.ErrorContains(t, err, "maintenance")
	})

	t.Run("missing credentials", func(t *testing.T) {
		anonymous := NewClient()
		anonymous.HttpClient = &http.Client{Transport: transport}
		served := len(transport.Requests())

		_, err := anonymous.NewGetBalanceRequest().Do(ctx)
		assert.True(t, errors.Is(err, ErrMissingCredentials))
		assert.Len(t, transport.Requests(), served, "no request is sent without credentials")
	})
}

func TestPlaceOrderRequest_GetParameters(t *testing.T) {
	client := NewClient()

	t.Run("stop limit", func(t *testing.T) {
		params := client.NewPlaceOrderRequest().
			Market("btcusd").
			Side(OrderSideSell).
			Amount(0.5).
			Price(9000).
			OrderType(OrderTypeLimit).
			Params(Params{
				{Key: "type", Value: OrderTypeStopLimit},
				{Key: "stopPrice", Value: 8900.0},
				{Key: "clientId", Value: "abc"},
			}).
			GetParameters()

		assert.Equal(t, Params{
			{Key: "market", Value: "btcusd"},
			{Key: "side", Value: 1},
			{Key: "amount", Value: 0.5},
			{Key: "price", Value: 9000.0},
			{Key: "type", Value: "stoplimit"},
			{Key: "stop", Value: 8900.0},
			{Key: "gtlt", Value: 1},
			{Key: "clientId", Value: "abc"},
		}, params)
		assert.False(t, params.Has("stopPrice"))
	})

	t.Run("stop limit with gtlt", func(t *testing.T) {
		params := client.NewPlaceOrderRequest().
			OrderType(OrderTypeLimit).
			Params(Params{{Key: "type", Value: OrderTypeStopLimit}, {Key: "gtlt", Value: 2}}).
			GetParameters()

		gtlt, _ := params.Get("gtlt")
		assert.Equal(t, 2, gtlt)
		stop, _ := params.Get("stop")
		assert.Nil(t, stop)
	})

	t.Run("other params override the request", func(t *testing.T) {
		params := client.NewPlaceOrderRequest().
			OrderType(OrderTypeLimit).
			Params(Params{{Key: "type", Value: OrderTypeMarket}}).
			GetParameters()

		orderType, _ := params.Get("type")
		assert.Equal(t, OrderTypeMarket, orderType)
		assert.False(t, params.Has("gtlt"))
	})

	t.Run("market order without price", func(t *testing.T) {
		params := client.NewPlaceOrderRequest().OrderType(OrderTypeMarket).GetParameters()
		assert.False(t, params.Compact().Has("price"))
	})
}

func TestToOrderSide(t *testing.T) {
	assert.Equal(t, OrderSideSell, ToOrderSide("sell"))
	assert.Equal(t, OrderSideBuy, ToOrderSide("buy"))
	assert.Equal(t, OrderSideBuy, ToOrderSide("anything"))
}

func TestClient(t *testing.T) {
	client := getTestClientOrSkip(t)
	ctx := context.Background()

	t.Run("GetMarketListRequest", func(t *testing.T) {
		markets, err := client.NewGetMarketListRequest().Do(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, markets)
	})

	t.Run("GetMarketStatusAllRequest", func(t *testing.T) {
		tickers, err := client.NewGetMarketStatusAllRequest().Do(ctx)
		assert.NoError(t, err)
		t.Logf("tickers: %d", len(tickers))
	})

	t.Run("GetBalanceRequest", func(t *testing.T) {
		account, err := client.NewGetBalanceRequest().Do(ctx)
		assert.NoError(t, err)
		t.Logf("account: %s", account)
	})
}
