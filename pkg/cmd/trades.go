package cmd

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/style"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

func init() {
	tradesCmd.Flags().String("symbol", "", "the market symbol, e.g. BTC/USD or btcusd")
	tradesCmd.Flags().String("since", "", "only show the trades since the given time, a duration (3h) or a date")
	tradesCmd.Flags().Int("limit", 0, "the maximum number of the latest trades")
	RootCmd.AddCommand(tradesCmd)
}

// go run ./cmd/multi trades --symbol=BTC/USD --since 1h --limit 20
var tradesCmd = &cobra.Command{
	Use:          "trades --symbol SYMBOL [--since SINCE] [--limit N]",
	Short:        "Show the public trades of a market",
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

		trades, err := ex.QueryTrades(ctx, market, types.TradeQueryOptions{Since: since, Limit: limit})
		if err != nil {
			return err
		}

		return render(cmd, trades, func(w io.Writer) {
			t := style.NewTable(w, "Trades "+market.Symbol, "ID", "Time", "Side", "Price", "Amount", "Cost")
			for _, trade := range trades {
				t.AppendRow([]interface{}{
					trade.ID, util.ISO8601(trade.Timestamp), style.SideString(trade.Side),
					formatFloat(trade.Price), formatFloat(trade.Amount), formatFloat(trade.Cost),
				})
			}
			t.Render()
		})
	},
}
