package multi

import (
	"errors"
	"strconv"
	"time"

	"github.com/c9s/requestgen"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/multiio/multigo/pkg/types"
)

var (
	orderSubmissionLatencyMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "multi_order_submission_duration_milliseconds",
			Help:    "Order submission duration from request to response in milliseconds (successful requests only)",
			Buckets: prometheus.LinearBuckets(50, 25, 19), // 50ms to ~500ms
		}, []string{"symbol", "side", "type"},
	)

	orderSubmissionTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multi_order_submission_total",
			Help: "Total number of order submissions",
		}, []string{"symbol", "side", "type", "success"},
	)

	orderCancelLatencyMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "multi_order_cancel_latency_milliseconds",
			Help:    "Time from cancel request to cancel confirmation (successful requests only)",
			Buckets: prometheus.LinearBuckets(50, 25, 19),
		}, []string{"symbol"},
	)

	orderCancelTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multi_order_cancel_total",
			Help: "Total number of order cancellation attempts",
		}, []string{"symbol", "success"},
	)

	orderErrorCodeMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "multi_order_error_codes_total",
			Help: "Total number of order submission and cancellation errors by status code",
		}, []string{"symbol", "action", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(
		orderSubmissionLatencyMetrics,
		orderSubmissionTotalMetrics,
		orderCancelLatencyMetrics,
		orderCancelTotalMetrics,
		orderErrorCodeMetrics,
	)
}

// errorStatusCode returns the http status code of a response error, 0 when the request got no response
func errorStatusCode(err error) int {
	var errResp *requestgen.ErrResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.Response != nil {
		return errResp.StatusCode
	}

	return 0
}

func recordSuccessOrderSubmissionMetrics(market types.Market, order types.SubmitOrder, duration time.Duration) {
	orderSubmissionLatencyMetrics.With(prometheus.Labels{
		"symbol": market.Symbol,
		"side":   string(order.Side),
		"type":   string(order.Type),
	}).Observe(float64(duration.Milliseconds()))

	orderSubmissionTotalMetrics.With(prometheus.Labels{
		"symbol":  market.Symbol,
		"side":    string(order.Side),
		"type":    string(order.Type),
		"success": "true",
	}).Inc()
}

func recordFailedOrderSubmissionMetrics(market types.Market, order types.SubmitOrder, err error) {
	orderErrorCodeMetrics.With(prometheus.Labels{
		"symbol":      market.Symbol,
		"action":      "submit",
		"status_code": strconv.Itoa(errorStatusCode(err)),
	}).Inc()

	orderSubmissionTotalMetrics.With(prometheus.Labels{
		"symbol":  market.Symbol,
		"side":    string(order.Side),
		"type":    string(order.Type),
		"success": "false",
	}).Inc()
}

func recordSuccessOrderCancelMetrics(market types.Market, duration time.Duration) {
	orderCancelLatencyMetrics.With(prometheus.Labels{
		"symbol": market.Symbol,
	}).Observe(float64(duration.Milliseconds()))

	orderCancelTotalMetrics.With(prometheus.Labels{
		"symbol":  market.Symbol,
		"success": "true",
	}).Inc()
}

func recordFailedOrderCancelMetrics(market types.Market, err error) {
	orderErrorCodeMetrics.With(prometheus.Labels{
		"symbol":      market.Symbol,
		"action":      "cancel",
		"status_code": strconv.Itoa(errorStatusCode(err)),
	}).Inc()

	orderCancelTotalMetrics.With(prometheus.Labels{
		"symbol":  market.Symbol,
		"success": "false",
	}).Inc()
}
