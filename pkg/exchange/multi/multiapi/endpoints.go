package multiapi

import (
	"fmt"
	"net/http"
)

type APIType string

const (
	PublicAPI  APIType = "public"
	PrivateAPI APIType = "private"
)

// Endpoint is a route of the REST API, Path is relative to the versioned base url
type Endpoint struct {
	API    APIType
	Method string
	Path   string
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s %s", e.API, e.Method, e.Path)
}

func (e Endpoint) IsPrivate() bool {
	return e.API == PrivateAPI
}

var endpoints = []Endpoint{
	{API: PublicAPI, Method: http.MethodGet, Path: "market/list"},
	{API: PublicAPI, Method: http.MethodGet, Path: "asset/list"},
	{API: PublicAPI, Method: http.MethodGet, Path: "order/depth"},
	{API: PublicAPI, Method: http.MethodGet, Path: "market/kline"},
	{API: PublicAPI, Method: http.MethodGet, Path: "fee_schedules"},
	{API: PublicAPI, Method: http.MethodGet, Path: "market/trade"},
	{API: PublicAPI, Method: http.MethodGet, Path: "market/status/all"},

	{API: PrivateAPI, Method: http.MethodGet, Path: "asset/balance"},
	{API: PrivateAPI, Method: http.MethodPost, Path: "asset/deposit"},
	{API: PrivateAPI, Method: http.MethodPost, Path: "order"},
	{API: PrivateAPI, Method: http.MethodPost, Path: "order/cancel"},
}

var (
	endpointMarketList      = MustLookup(PublicAPI, http.MethodGet, "market/list")
	endpointAssetList       = MustLookup(PublicAPI, http.MethodGet, "asset/list")
	endpointOrderDepth      = MustLookup(PublicAPI, http.MethodGet, "order/depth")
	endpointMarketKLine     = MustLookup(PublicAPI, http.MethodGet, "market/kline")
	endpointFeeSchedules    = MustLookup(PublicAPI, http.MethodGet, "fee_schedules")
	endpointMarketTrade     = MustLookup(PublicAPI, http.MethodGet, "market/trade")
	endpointMarketStatusAll = MustLookup(PublicAPI, http.MethodGet, "market/status/all")
	endpointAssetBalance    = MustLookup(PrivateAPI, http.MethodGet, "asset/balance")
	endpointAssetDeposit    = MustLookup(PrivateAPI, http.MethodPost, "asset/deposit")
	endpointOrder           = MustLookup(PrivateAPI, http.MethodPost, "order")
	endpointOrderCancel     = MustLookup(PrivateAPI, http.MethodPost, "order/cancel")
)

// Endpoints returns a copy of the endpoint table
func Endpoints() []Endpoint {
	return append([]Endpoint(nil), endpoints...)
}

func Lookup(api APIType, method, path string) (Endpoint, bool) {
	for _, e := range endpoints {
		if e.API == api && e.Method == method && e.Path == path {
			return e, true
		}
	}

	return Endpoint{}, false
}

// MustLookup panics when the route is not in the endpoint table
func MustLookup(api APIType, method, path string) Endpoint {
	e, ok := Lookup(api, method, path)
	if !ok {
		panic(fmt.Errorf("multiapi: endpoint %s %s %s is not defined", api, method, path))
	}

	return e
}
