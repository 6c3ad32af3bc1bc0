package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

func NewValidLimiter(r rate.Limit, b int) (*rate.Limiter, error) {
	if b <= 0 || r <= 0 {
		return nil, fmt.Errorf("bad rate limit config, insufficient tokens (rate=%f, burst=%d)", r, b)
	}

	return rate.NewLimiter(r, b), nil
}

// ParseRateLimitSyntax parses the rate limit syntax into a rate.Limiter
// sample inputs:
//
//	2+1/5s (burst of 2, 1 token per 5 seconds)
//	5+3/1m (burst of 5, 3 tokens per minute)
//	3/1s (burst of 1, 3 tokens per second)
//	200ms (burst of 1, 1 token per 200 milliseconds)
func ParseRateLimitSyntax(desc string) (*rate.Limiter, error) {
	burst := 1
	tokens := 1.0
	durStr := strings.TrimSpace(desc)

	if head, tail, ok := strings.Cut(durStr, "/"); ok {
		durStr = tail

		if b, n, ok := strings.Cut(head, "+"); ok {
			v, err := strconv.Atoi(b)
			if err != nil {
				return nil, fmt.Errorf("invalid rate limit burst %q: %w", b, err)
			}
			burst = v
			head = n
		}

		v, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate limit tokens %q: %w", head, err)
		}
		tokens = v
	}

	duration, err := time.ParseDuration(durStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit syntax %q, expecting burst+tokens/duration: %w", desc, err)
	}

	if tokens <= 0 {
		return nil, fmt.Errorf("invalid rate limit syntax %q, tokens must be positive", desc)
	}

	return NewValidLimiter(rate.Every(time.Duration(float64(duration)/tokens)), burst)
}
