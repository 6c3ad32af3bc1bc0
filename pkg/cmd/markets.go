package cmd

import (
	"context"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/cache"
	"github.com/multiio/multigo/pkg/style"
	"github.com/multiio/multigo/pkg/types"
)

func init() {
	marketsCmd.Flags().Bool("active", false, "only list the active markets")
	RootCmd.AddCommand(marketsCmd)
	RootCmd.AddCommand(currenciesCmd)
}

// go run ./cmd/multi markets --active
var marketsCmd = &cobra.Command{
	Use:          "markets [--active]",
	Short:        "List the markets of the exchange",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		activeOnly, err := cmd.Flags().GetBool("active")
		if err != nil {
			return err
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		catalog, err := cache.LoadCatalog(ctx, ex)
		if err != nil {
			return err
		}

		var markets []types.Market
		for _, market := range catalog.Markets {
			if activeOnly && !market.Active {
				continue
			}
			markets = append(markets, market)
		}

		sort.Slice(markets, func(i, j int) bool {
			return markets[i].Symbol < markets[j].Symbol
		})

		return render(cmd, markets, func(w io.Writer) {
			t := style.NewTable(w, "Markets", "Symbol", "ID", "Active", "Amount Precision", "Price Precision", "Min Amount", "Min Cost")
			for _, m := range markets {
				t.AppendRow([]interface{}{
					m.Symbol, m.ID, m.Active,
					formatInt(m.Precision.Amount), formatInt(m.Precision.Price),
					formatFloat(m.Limits.Amount.Min), formatFloat(m.Limits.Cost.Min),
				})
			}
			t.Render()
		})
	},
}

// go run ./cmd/multi currencies
var currenciesCmd = &cobra.Command{
	Use:          "currencies",
	Short:        "List the currencies of the exchange",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange()
		if err != nil {
			return err
		}

		catalog, err := cache.LoadCatalog(ctx, ex)
		if err != nil {
			return err
		}

		codes := catalog.Currencies.Codes()
		sort.Strings(codes)

		currencies := make([]types.Currency, 0, len(codes))
		for _, code := range codes {
			currencies = append(currencies, catalog.Currencies[code])
		}

		return render(cmd, currencies, func(w io.Writer) {
			t := style.NewTable(w, "Currencies", "Code", "Name", "Active", "Withdraw Fee", "Precision", "Min Withdraw")
			for _, c := range currencies {
				t.AppendRow([]interface{}{
					c.Code, c.Name, c.Active,
					formatFloat(c.Fee), formatFloat(c.Precision), formatFloat(c.Limits.Withdraw.Min),
				})
			}
			t.Render()
		})
	},
}
