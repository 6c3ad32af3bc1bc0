package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewValidRateLimiter(t *testing.T) {
	cases := []struct {
		name     string
		r        rate.Limit
		b        int
		hasError bool
	}{
		{"valid limiter", 0.1, 1, false},
		{"zero rate", 0, 1, true},
		{"zero burst", 0.1, 0, true},
		{"both zero", 0, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			limiter, err := NewValidLimiter(c.r, c.b)
			assert.Equal(t, c.hasError, err != nil)
			if !c.hasError {
				assert.NotNil(t, limiter)
			}
		})
	}
}

func TestParseRateLimitSyntax(t *testing.T) {
	cases := []struct {
		desc     string
		limit    rate.Limit
		burst    int
		hasError bool
	}{
		{desc: "2+1/5s", limit: rate.Every(5 * time.Second), burst: 2},
		{desc: "5+3/1m", limit: rate.Every(20 * time.Second), burst: 5},
		{desc: "3/1s", limit: rate.Every(time.Second / 3), burst: 1},
		{desc: "200ms", limit: rate.Every(200 * time.Millisecond), burst: 1},
		{desc: "10+5/1s", limit: rate.Every(200 * time.Millisecond), burst: 10},
		{desc: "", hasError: true},
		{desc: "x+1/1s", hasError: true},
		{desc: "0/1s", hasError: true},
		{desc: "0+1/1s", hasError: true},
		{desc: "1/forever", hasError: true},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			limiter, err := ParseRateLimitSyntax(c.desc)
			if c.hasError {
				assert.Error(t, err)
				return
			}

			if assert.NoError(t, err) {
				assert.InDelta(t, float64(c.limit), float64(limiter.Limit()), 1e-9)
				assert.Equal(t, c.burst, limiter.Burst())
			}
		})
	}
}
