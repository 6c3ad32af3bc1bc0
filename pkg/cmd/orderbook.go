package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/style"
)

func init() {
	orderbookCmd.Flags().String("symbol", "", "the market symbol, e.g. BTC/USD or btcusd")
	orderbookCmd.Flags().Int("limit", 0, "the number of price levels")
	RootCmd.AddCommand(orderbookCmd)
}

// go run ./cmd/multi orderbook --symbol=BTC/USD --limit 10
var orderbookCmd = &cobra.Command{
	Use:          "orderbook --symbol SYMBOL [--limit N]",
	Short:        "Show the order book snapshot of a market",
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

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		ex, market, err := newExchangeWithMarket(ctx, symbol)
		if err != nil {
			return err
		}

		book, err := ex.QueryOrderBook(ctx, market, limit)
		if err != nil {
			return err
		}

		return render(cmd, book, func(w io.Writer) {
			t := style.NewTable(w, "Order Book "+book.Symbol, "Side", "Price", "Volume")
			for i := len(book.Asks) - 1; i >= 0; i-- {
				ask := book.Asks[i]
				t.AppendRow([]interface{}{style.SideString("sell"), market.FormatPrice(ask.Price), market.FormatAmount(ask.Volume)})
			}

			t.AppendSeparator()

			for _, bid := range book.Bids {
				t.AppendRow([]interface{}{style.SideString("buy"), market.FormatPrice(bid.Price), market.FormatAmount(bid.Volume)})
			}
			t.Render()
		})
	},
}
