package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/style"
)

func init() {
	RootCmd.AddCommand(feesCmd)
}

// go run ./cmd/multi fees
var feesCmd = &cobra.Command{
	Use:          "fees",
	Short:        "Show the trading fee schedule",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := newExchange()
		if err != nil {
			return err
		}

		fees, err := ex.QueryTradingFees(ctx)
		if err != nil {
			return err
		}

		return render(cmd, fees, func(w io.Writer) {
			t := style.NewTable(w, "Trading Fees", "Min Volume", "Maker", "Taker")
			for _, tier := range fees.Fees {
				t.AppendRow([]interface{}{formatFloat(tier.MinVolume), formatFloat(tier.Maker), formatFloat(tier.Taker)})
			}
			t.Render()
		})
	},
}
