package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/cmd/cmdutil"
	"github.com/multiio/multigo/pkg/style"
)

func init() {
	depositAddressCmd.Flags().String("currency", "", "the currency code, e.g. BTC")
	RootCmd.AddCommand(depositAddressCmd)
}

// go run ./cmd/multi deposit-address --currency=BTC
var depositAddressCmd = &cobra.Command{
	Use:          "deposit-address --currency CURRENCY",
	Short:        "Show the deposit address of a currency",
	SilenceUsage: true,
	PreRunE: cobraInitRequired([]string{
		"currency",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		code, err := cmd.Flags().GetString("currency")
		if err != nil {
			return err
		}

		ex, err := newExchange()
		if err != nil {
			return err
		}

		currency, err := cmdutil.LoadCurrency(ctx, ex, code)
		if err != nil {
			return err
		}

		address, err := ex.QueryDepositAddress(ctx, currency)
		if err != nil {
			return err
		}

		return render(cmd, address, func(w io.Writer) {
			t := style.NewTable(w, "Deposit Address", "Currency", "Address", "Tag")
			tag := "-"
			if address.Tag != nil {
				tag = fmt.Sprint(address.Tag)
			}
			t.AppendRow([]interface{}{address.Currency, address.Address, tag})
			t.Render()
		})
	},
}
