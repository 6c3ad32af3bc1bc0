package multiapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/c9s/requestgen"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("api", "multi")

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "multi_api_latency_ms",
		Help:    "The histogram of latency returned by multi.io API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"path", "status_code"},
)

// responseStatusCode maps the request error to the http status code label,
// 0 is used for errors without a response
func responseStatusCode(err error) int {
	if err == nil {
		return 200
	}

	var requestErr *requestgen.ErrResponse
	if errors.As(err, &requestErr) && requestErr.Response != nil && requestErr.Response.Response != nil {
		return requestErr.StatusCode
	}

	return 0
}

func recordLatencyMetrics(endpoint Endpoint, latency time.Duration, err error) {
	statusCode := responseStatusCode(err)
	if statusCode == 0 {
		log.WithError(err).Warnf("%s request failed without a response", endpoint)
	}

	latencyMetrics.With(prometheus.Labels{
		"path":        endpoint.Path,
		"status_code": strconv.Itoa(statusCode),
	}).Observe(float64(latency.Milliseconds()))
}
