package multi

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"

	"github.com/multiio/multigo/pkg/envvar"
	"github.com/multiio/multigo/pkg/exchange/multi/multiapi"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

const ID = "multi"

// The venue does not publish its limits, the defaults follow the staging environment.
// marketDataLimiter covers the public endpoints, the account and trade limiters the private ones.
var (
	marketDataLimiter = newLimiter("MULTI_MARKET_DATA_RATE_LIMIT", rate.Every(200*time.Millisecond), 5)
	accountLimiter    = newLimiter("MULTI_ACCOUNT_RATE_LIMIT", rate.Every(500*time.Millisecond), 2)
	tradeLimiter      = newLimiter("MULTI_TRADE_RATE_LIMIT", rate.Every(100*time.Millisecond), 10)

	log = logrus.WithFields(logrus.Fields{
		"exchange": ID,
	})
)

// newLimiter reads the limit from the env var in the rate limit syntax (e.g. 5+1/200ms),
// the given limit is used when the env var is not set or invalid
func newLimiter(envVarName string, r rate.Limit, b int) *rate.Limiter {
	if desc, ok := envvar.String(envVarName); ok {
		limiter, err := util.ParseRateLimitSyntax(desc)
		if err == nil {
			return limiter
		}

		logrus.WithError(err).Errorf("invalid %s=%q, using the default rate limit", envVarName, desc)
	}

	return rate.NewLimiter(r, b)
}

var (
	ErrTickerNotFound         = errors.New("ticker not found")
	ErrDepositAddressNotFound = errors.New("deposit address not found")
)

var _ types.ExchangeAdapter = &Exchange{}

type Exchange struct {
	key, secret string
	client      *multiapi.RestClient

	timeNowFn func() time.Time
}

func New(key, secret string) *Exchange {
	client := multiapi.NewClient()
	if len(key) > 0 && len(secret) > 0 {
		client.Auth(key, secret)
	}

	return &Exchange{
		key: key,
		// pragma: allowlist nextline secret
		secret:    secret,
		client:    client,
		timeNowFn: time.Now,
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeMulti
}

func (e *Exchange) Client() *multiapi.RestClient {
	return e.client
}

// SetTimeNowFunc replaces the clock of the exchange and its api client
func (e *Exchange) SetTimeNowFunc(f func() time.Time) {
	e.timeNowFn = f
	e.client.SetTimeNowFunc(f)
}

func (e *Exchange) QueryMarkets(ctx context.Context) (types.MarketMap, error) {
	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("markets rate limiter wait error: %w", err)
	}

	markets, err := e.client.NewGetMarketListRequest().Do(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to query markets")
		return nil, err
	}

	marketMap := types.MarketMap{}
	for _, m := range toGlobalMarkets(markets) {
		marketMap.Add(m)
	}

	return marketMap, nil
}

func (e *Exchange) QueryCurrencies(ctx context.Context) (types.CurrencyMap, error) {
	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("currencies rate limiter wait error: %w", err)
	}

	assets, err := e.client.NewGetAssetListRequest().Do(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to query currencies")
		return nil, err
	}

	return toGlobalCurrencies(assets), nil
}

// QueryCatalog queries the markets and the currencies, the errors of both queries are combined
func (e *Exchange) QueryCatalog(ctx context.Context) (*types.Catalog, error) {
	markets, marketErr := e.QueryMarkets(ctx)
	currencies, currencyErr := e.QueryCurrencies(ctx)
	if err := multierr.Append(marketErr, currencyErr); err != nil {
		return nil, err
	}

	return types.NewCatalog(e.Name(), markets, currencies), nil
}

// QueryOrderBook queries the order book of the market, a non-positive limit uses the server default depth
func (e *Exchange) QueryOrderBook(ctx context.Context, market types.Market, limit int) (*types.OrderBook, error) {
	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("order book rate limiter wait error: %w", err)
	}

	req := e.client.NewGetDepthRequest().Market(market.ID)
	if limit > 0 {
		req.Limit(limit)
	}

	depth, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query order book of %s", market.Symbol)
	}

	return toGlobalOrderBook(market.Symbol, depth), nil
}

func (e *Exchange) QueryKLines(
	ctx context.Context, market types.Market, interval types.Interval, options types.KLineQueryOptions,
) ([]types.KLine, error) {
	since, limit := toSinceLimit(options.Since, options.Limit)
	window, err := resolveKLineWindow(interval, since, limit, e.timeNowFn())
	if err != nil {
		return nil, err
	}

	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("kline rate limiter wait error: %w", err)
	}

	req := e.client.NewGetKLinesRequest().
		Market(market.ID).
		Interval(interval.Seconds()).
		End(window.End)

	if window.Start != nil {
		req.Start(*window.Start)
	}

	rows, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s klines of %s", interval, market.Symbol)
	}

	var sinceMs int64
	if since != nil {
		sinceMs = *since
	}

	return types.FilterKLinesBySinceLimit(toGlobalKLines(rows), sinceMs, options.Limit), nil
}

func (e *Exchange) QueryTradingFees(ctx context.Context) (*types.TradingFees, error) {
	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("trading fee rate limiter wait error: %w", err)
	}

	schedules, err := e.client.NewGetFeeSchedulesRequest().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query fee schedules")
	}

	return toGlobalTradingFees(schedules), nil
}

// QueryTrades queries the recent public trades of the market.
// The venue has no start time parameter, the since filter is applied to the response.
func (e *Exchange) QueryTrades(ctx context.Context, market types.Market, options types.TradeQueryOptions) ([]types.Trade, error) {
	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("trades rate limiter wait error: %w", err)
	}

	req := e.client.NewGetTradesRequest().Market(market.ID)
	if options.Limit > 0 {
		req.Limit(options.Limit)
	}

	trades, err := req.Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query trades of %s", market.Symbol)
	}

	var since int64
	if options.Since != nil {
		since = options.Since.UnixMilli()
	}

	return types.FilterTradesBySinceLimit(toGlobalTrades(market, trades), since, options.Limit), nil
}

// QueryTicker selects the market from the status of all markets
func (e *Exchange) QueryTicker(ctx context.Context, market types.Market) (*types.Ticker, error) {
	if err := marketDataLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ticker rate limiter wait error: %w", err)
	}

	tickers, err := e.client.NewGetMarketStatusAllRequest().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query market status")
	}

	ticker, ok := selectMarketTicker(tickers, market.ID)
	if !ok {
		return nil, fmt.Errorf("%w: market %s", ErrTickerNotFound, market.ID)
	}

	return toGlobalTicker(market.Symbol, ticker), nil
}

func (e *Exchange) QueryAccountBalances(ctx context.Context) (*types.AccountBalances, error) {
	if err := accountLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("balance rate limiter wait error: %w", err)
	}

	account, err := e.client.NewGetBalanceRequest().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query balances")
	}

	return toGlobalBalances(account), nil
}

func (e *Exchange) QueryDepositAddress(ctx context.Context, currency types.Currency) (*types.DepositAddress, error) {
	if err := accountLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("deposit address rate limiter wait error: %w", err)
	}

	response, err := e.client.NewGetDepositAddressRequest().Symbol(currency.Code).Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s deposit address", currency.Code)
	}

	address, ok := toGlobalDepositAddress(currency.Code, response)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDepositAddressNotFound, currency.Code)
	}

	return address, nil
}

// SubmitOrder places the order. A stop limit order takes its stop price from the "stopPrice" param.
func (e *Exchange) SubmitOrder(ctx context.Context, market types.Market, order types.SubmitOrder) (*types.Order, error) {
	if err := tradeLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("order rate limiter wait error: %w", err)
	}

	params := multiapi.ParamsFromMap(order.Params)
	orderType := string(order.Type)
	if order.Type == types.OrderTypeStopLimit {
		if !params.Has("type") {
			params.Set("type", multiapi.OrderTypeStopLimit)
		}
		orderType = multiapi.OrderTypeLimit
	}

	req := e.client.NewPlaceOrderRequest().
		Market(market.ID).
		Side(toLocalOrderSide(order.Side)).
		Amount(order.Amount).
		OrderType(orderType).
		Params(params)

	if order.Price != nil {
		req.Price(*order.Price)
	}

	start := time.Now()
	response, err := req.Do(ctx)
	if err != nil {
		recordFailedOrderSubmissionMetrics(market, order, err)
		return nil, errors.Wrapf(err, "failed to submit order %s", order)
	}

	recordSuccessOrderSubmissionMetrics(market, order, time.Since(start))
	created := toGlobalOrder(market, response)
	log.Infof("order %s submitted: %s", created.ID, order)
	return created, nil
}

func (e *Exchange) CancelOrder(ctx context.Context, market types.Market, orderID string) (*types.Order, error) {
	if err := tradeLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("cancel order rate limiter wait error: %w", err)
	}

	start := time.Now()
	response, err := e.client.NewCancelOrderRequest().
		Market(market.ID).
		OrderID(orderID).
		Do(ctx)
	if err != nil {
		recordFailedOrderCancelMetrics(market, err)
		return nil, errors.Wrapf(err, "failed to cancel order %s of %s", orderID, market.Symbol)
	}

	recordSuccessOrderCancelMetrics(market, time.Since(start))
	return toGlobalOrder(market, response), nil
}
