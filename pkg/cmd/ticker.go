package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/multiio/multigo/pkg/cmd/cmdutil"
	"github.com/multiio/multigo/pkg/style"
	"github.com/multiio/multigo/pkg/types"
)

func init() {
	tickerCmd.Flags().StringSlice("symbol", nil, "the market symbols, can be given multiple times")
	RootCmd.AddCommand(tickerCmd)
}

// go run ./cmd/multi ticker --symbol BTC/USD --symbol ETH/USD
var tickerCmd = &cobra.Command{
	Use:          "ticker --symbol SYMBOL [--symbol SYMBOL...]",
	Short:        "Show the 24h tickers of the markets",
	SilenceUsage: true,
	PreRunE: cobraInitRequired([]string{
		"symbol",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbols, err := cmd.Flags().GetStringSlice("symbol")
		if err != nil {
			return err
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		markets := make([]types.Market, len(symbols))
		for i, symbol := range symbols {
			market, err := cmdutil.LoadMarket(ctx, ex, symbol)
			if err != nil {
				return err
			}
			markets[i] = market
		}

		tickers := make([]*types.Ticker, len(markets))
		g, gctx := errgroup.WithContext(ctx)
		for i, market := range markets {
			i, market := i, market
			g.Go(func() error {
				ticker, err := ex.QueryTicker(gctx, market)
				if err != nil {
					return err
				}

				tickers[i] = ticker
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		return render(cmd, tickers, func(w io.Writer) {
			t := style.NewTable(w, "Tickers", "Symbol", "Open", "High", "Low", "Last", "Change", "Base Volume", "Quote Volume")
			for _, ticker := range tickers {
				t.AppendRow([]interface{}{
					ticker.Symbol,
					formatFloat(ticker.Open), formatFloat(ticker.High), formatFloat(ticker.Low), formatFloat(ticker.Last),
					style.ChangeString(style.Change(ticker.Open, ticker.Last)),
					formatFloat(ticker.BaseVolume), formatFloat(ticker.QuoteVolume),
				})
			}
			t.Render()
		})
	},
}
