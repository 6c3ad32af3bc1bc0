package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/valyala/fastjson"

	"github.com/multiio/multigo/pkg/cmd/cmdutil"
	"github.com/multiio/multigo/pkg/types"
)

func cobraInitRequired(required []string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, key := range required {
			if err := cmd.MarkFlagRequired(key); err != nil {
				return err
			}
		}

		return cmd.ValidateRequiredFlags()
	}
}

func newExchange() (types.ExchangeAdapter, error) {
	return cmdutil.NewExchange(types.ExchangeMulti)
}

func newExchangeWithMarket(ctx context.Context, symbol string) (types.ExchangeAdapter, types.Market, error) {
	ex, err := newExchange()
	if err != nil {
		return nil, types.Market{}, err
	}

	market, err := cmdutil.LoadMarket(ctx, ex, symbol)
	if err != nil {
		return nil, types.Market{}, err
	}

	return ex, market, nil
}

func render(cmd *cobra.Command, v interface{}, renderTable func(w io.Writer)) error {
	return cmdutil.Render(cmd.OutOrStdout(), viper.GetString("output"), v, renderTable)
}

// parseParams parses the key=value pairs, json numbers and booleans keep their types
func parseParams(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || len(key) == 0 {
			return nil, fmt.Errorf("invalid param %q, expecting key=value", pair)
		}

		params[key] = parseParamValue(value)
	}

	return params, nil
}

func parseParamValue(s string) interface{} {
	v, err := fastjson.Parse(s)
	if err != nil {
		return s
	}

	switch v.Type() {
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		return v.GetFloat64()

	case fastjson.TypeTrue:
		return true

	case fastjson.TypeFalse:
		return false

	case fastjson.TypeString:
		return string(v.GetStringBytes())
	}

	return s
}

func formatFloat(f *float64) string {
	if f == nil {
		return "-"
	}

	return fmt.Sprintf("%v", *f)
}

func formatInt(i *int) string {
	if i == nil {
		return "-"
	}

	return fmt.Sprintf("%d", *i)
}

var sinceLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseSince accepts a look back duration (24h) or a date time (2020-03-18, RFC3339).
// An empty string means no since.
func parseSince(s string, now time.Time) (*time.Time, error) {
	if len(s) == 0 {
		return nil, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		since := now.Add(-d)
		return &since, nil
	}

	for _, layout := range sinceLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid since %q, expecting a duration or a date", s)
}
