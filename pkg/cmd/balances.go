package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/style"
)

func init() {
	balancesCmd.Flags().Bool("non-zero", false, "hide the currencies without balance")
	RootCmd.AddCommand(balancesCmd)
}

// go run ./cmd/multi balances --non-zero
var balancesCmd = &cobra.Command{
	Use:          "balances [--non-zero]",
	Short:        "Show user account balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		nonZero, err := cmd.Flags().GetBool("non-zero")
		if err != nil {
			return err
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		account, err := ex.QueryAccountBalances(ctx)
		if err != nil {
			return err
		}

		if nonZero {
			for currency, b := range account.Balances {
				if b.Total == nil || *b.Total == 0 {
					delete(account.Balances, currency)
				}
			}
		}

		return render(cmd, account, func(w io.Writer) {
			t := style.NewTable(w, "Balances", "Currency", "Free", "Used", "Total")
			for _, currency := range account.Balances.Currencies() {
				b := account.Balances[currency]
				t.AppendRow([]interface{}{currency, formatFloat(b.Free), formatFloat(b.Used), formatFloat(b.Total)})
			}
			t.Render()
		})
	},
}
