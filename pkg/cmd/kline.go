package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/style"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

func init() {
	klineCmd.Flags().String("symbol", "", "the market symbol, e.g. BTC/USD or btcusd")
	klineCmd.Flags().String("interval", string(types.Interval1h), "the kline interval, one of 1h, 4h, 8h, 1d and 1w")
	klineCmd.Flags().String("since", "", "the start time of the klines, a duration (72h) or a date")
	klineCmd.Flags().Int("limit", 0, "the number of klines")
	RootCmd.AddCommand(klineCmd)
}

// defaultKLineSince is the since used when only --limit is given, so the limit sets the window start
var defaultKLineSince = time.UnixMilli(86400000)

func klineQueryOptions(since *time.Time, limit int) types.KLineQueryOptions {
	if since == nil && limit > 0 {
		s := defaultKLineSince
		since = &s
	}

	return types.KLineQueryOptions{Since: since, Limit: limit}
}

// go run ./cmd/multi kline --symbol=BTC/USD --interval 4h --limit 10
var klineCmd = &cobra.Command{
	Use:          "kline --symbol SYMBOL [--interval INTERVAL] [--since SINCE] [--limit N]",
	Short:        "Show the OHLCV klines of a market",
	SilenceUsage: true,
	PreRunE: cobraInitRequired([]string{
		"symbol",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		intervalStr, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}

		interval := types.Interval(intervalStr)
		if !interval.IsSupported() {
			return fmt.Errorf("unsupported interval %s", interval)
		}

		sinceStr, err := cmd.Flags().GetString("since")
		if err != nil {
			return err
		}

		since, err := parseSince(sinceStr, time.Now())
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		ex, market, err := newExchangeWithMarket(ctx, symbol)
		if err != nil {
			return err
		}

		klines, err := ex.QueryKLines(ctx, market, interval, klineQueryOptions(since, limit))
		if err != nil {
			return err
		}

		return render(cmd, klines, func(w io.Writer) {
			t := style.NewTable(w, fmt.Sprintf("KLines %s %s", market.Symbol, interval), "Time", "Open", "High", "Low", "Close", "Change", "Volume")
			for _, k := range klines {
				ts := k.Timestamp
				t.AppendRow([]interface{}{
					util.ISO8601(&ts),
					formatFloat(k.Open), formatFloat(k.High), formatFloat(k.Low), formatFloat(k.Close),
					style.ChangeString(style.Change(k.Open, k.Close)),
					formatFloat(k.Volume),
				})
			}
			t.Render()
		})
	},
}
