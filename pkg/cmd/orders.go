package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/multiio/multigo/pkg/style"
	"github.com/multiio/multigo/pkg/types"
	"github.com/multiio/multigo/pkg/util"
)

func init() {
	addSubmitOrderFlags(submitOrderCmd.Flags())
	RootCmd.AddCommand(submitOrderCmd)

	cancelOrderCmd.Flags().String("symbol", "", "the market symbol, e.g. BTC/USD or btcusd")
	cancelOrderCmd.Flags().String("order-id", "", "the id of the order to cancel")
	RootCmd.AddCommand(cancelOrderCmd)
}

func addSubmitOrderFlags(flags *pflag.FlagSet) {
	flags.String("symbol", "", "the market symbol, e.g. BTC/USD or btcusd")
	flags.String("side", "", "the order side, buy or sell")
	flags.String("type", string(types.OrderTypeLimit), "the order type, one of limit, market and stopLimit")
	flags.Float64("amount", 0, "the order amount in the base currency")
	flags.Float64("price", 0, "the order price, required by the limit orders")
	flags.Float64("stop-price", 0, "the stop price of the stop limit order")
	flags.StringArray("param", nil, "extra exchange parameters in key=value form")
	flags.String("file", "", "load the order from a json file instead of the flags")
}

// go run ./cmd/multi submit-order --symbol=BTC/USD --side=buy --amount=0.01 --price=9000
// go run ./cmd/multi submit-order --file order.json
var submitOrderCmd = &cobra.Command{
	Use:          "submit-order --symbol SYMBOL --side SIDE --amount AMOUNT [--price PRICE]",
	Short:        "Place an order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		order, err := submitOrderFromFlags(cmd)
		if err != nil {
			return err
		}

		ex, market, err := newExchangeWithMarket(ctx, order.Symbol)
		if err != nil {
			return err
		}

		log.Infof("submitting %s", order)

		created, err := ex.SubmitOrder(ctx, market, *order)
		if err != nil {
			return err
		}

		return render(cmd, created, func(w io.Writer) {
			renderOrderTable(w, "Submitted Order", created)
		})
	},
}

func submitOrderFromFlags(cmd *cobra.Command) (*types.SubmitOrder, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	if len(file) > 0 {
		var order types.SubmitOrder
		if err := util.ReadJsonFile(file, &order); err != nil {
			return nil, err
		}

		if len(order.Symbol) == 0 {
			return nil, fmt.Errorf("order file %s: symbol is required", file)
		}

		return &order, nil
	}

	symbol, err := cmd.Flags().GetString("symbol")
	if err != nil {
		return nil, err
	}

	if len(symbol) == 0 {
		return nil, fmt.Errorf("--symbol is required")
	}

	side, err := cmd.Flags().GetString("side")
	if err != nil {
		return nil, err
	}

	sideType := types.SideType(strings.ToLower(side))
	if sideType != types.SideTypeBuy && sideType != types.SideTypeSell {
		return nil, fmt.Errorf("invalid side %q, expecting buy or sell", side)
	}

	orderType, err := cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	amount, err := cmd.Flags().GetFloat64("amount")
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, fmt.Errorf("--amount must be positive")
	}

	pairs, err := cmd.Flags().GetStringArray("param")
	if err != nil {
		return nil, err
	}

	params, err := parseParams(pairs)
	if err != nil {
		return nil, err
	}

	order := &types.SubmitOrder{
		Symbol: symbol,
		Type:   types.OrderType(orderType),
		Side:   sideType,
		Amount: amount,
		Params: params,
	}

	if cmd.Flags().Changed("price") {
		price, err := cmd.Flags().GetFloat64("price")
		if err != nil {
			return nil, err
		}
		order.Price = &price
	}

	if cmd.Flags().Changed("stop-price") {
		stopPrice, err := cmd.Flags().GetFloat64("stop-price")
		if err != nil {
			return nil, err
		}

		if order.Params == nil {
			order.Params = map[string]interface{}{}
		}
		order.Params["stopPrice"] = stopPrice
	}

	switch order.Type {
	case types.OrderTypeLimit, types.OrderTypeStopLimit:
		if order.Price == nil {
			return nil, fmt.Errorf("--price is required by %s orders", order.Type)
		}

	case types.OrderTypeMarket:

	default:
		return nil, fmt.Errorf("unsupported order type %q", order.Type)
	}

	return order, nil
}

// go run ./cmd/multi cancel-order --symbol=BTC/USD --order-id=12345
var cancelOrderCmd = &cobra.Command{
	Use:          "cancel-order --symbol SYMBOL --order-id ORDER_ID",
	Short:        "Cancel an order",
	SilenceUsage: true,
	PreRunE: cobraInitRequired([]string{
		"symbol",
		"order-id",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		orderID, err := cmd.Flags().GetString("order-id")
		if err != nil {
			return err
		}

		ex, market, err := newExchangeWithMarket(ctx, symbol)
		if err != nil {
			return err
		}

		canceled, err := ex.CancelOrder(ctx, market, orderID)
		if err != nil {
			return err
		}

		return render(cmd, canceled, func(w io.Writer) {
			renderOrderTable(w, "Canceled Order", canceled)
		})
	},
}

func renderOrderTable(w io.Writer, title string, order *types.Order) {
	t := style.NewTable(w, title, "ID", "Symbol", "Type", "Side", "Status", "Price", "Amount", "Filled", "Remaining")
	t.AppendRow([]interface{}{
		order.ID, order.Symbol, order.Type, style.SideString(order.Side.String()), order.Status,
		formatFloat(order.Price), formatFloat(order.Amount), formatFloat(order.Filled), formatFloat(order.Remaining),
	})
	t.Render()
}
