package cmd

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/multiio/multigo/pkg/exchange/multi/multiapi"
	"github.com/multiio/multigo/pkg/style"
)

func init() {
	signCmd.Flags().String("method", http.MethodGet, "the http method")
	signCmd.Flags().String("path", "", "the route path, e.g. order or asset/balance")
	signCmd.Flags().StringArray("param", nil, "request parameters in key=value form")
	RootCmd.AddCommand(signCmd)
}

// go run ./cmd/multi sign --method POST --path order --param market=btcusd --param amount=0.5
var signCmd = &cobra.Command{
	Use:          "sign --path PATH [--method METHOD] [--param key=value...]",
	Short:        "Print the signed request of a route without sending it",
	SilenceUsage: true,
	PreRunE: cobraInitRequired([]string{
		"path",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := cmd.Flags().GetString("method")
		if err != nil {
			return err
		}

		path, err := cmd.Flags().GetString("path")
		if err != nil {
			return err
		}

		pairs, err := cmd.Flags().GetStringArray("param")
		if err != nil {
			return err
		}

		values, err := parseParams(pairs)
		if err != nil {
			return err
		}

		endpoint, ok := multiapi.Lookup(multiapi.PrivateAPI, method, path)
		if !ok {
			endpoint, ok = multiapi.Lookup(multiapi.PublicAPI, method, path)
		}

		if !ok {
			return fmt.Errorf("unknown endpoint %s %s", method, path)
		}

		client := multiapi.NewClient()
		client.Auth(viper.GetString("multi-api-key"), viper.GetString("multi-api-secret"))

		signed, err := client.Sign(endpoint.Path, endpoint.API, endpoint.Method, multiapi.ParamsFromMap(values))
		if err != nil {
			return err
		}

		return render(cmd, signed, func(w io.Writer) {
			t := style.NewTable(w, "Signed Request "+endpoint.String(), "Field", "Value")
			t.AppendRow([]interface{}{"URL", signed.URL})
			t.AppendRow([]interface{}{"Method", signed.Method})
			if len(signed.Body) > 0 {
				t.AppendRow([]interface{}{"Body", string(signed.Body)})
			}

			var names []string
			for name := range signed.Headers {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				t.AppendRow([]interface{}{name, signed.Headers[name]})
			}
			t.Render()
		})
	},
}
