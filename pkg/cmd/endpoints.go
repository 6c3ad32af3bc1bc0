package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/multiio/multigo/pkg/exchange/multi/multiapi"
	"github.com/multiio/multigo/pkg/style"
)

func init() {
	RootCmd.AddCommand(endpointsCmd)
}

var endpointsCmd = &cobra.Command{
	Use:          "endpoints",
	Short:        "List the REST routes of the exchange api",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoints := multiapi.Endpoints()
		return render(cmd, endpoints, func(w io.Writer) {
			t := style.NewTable(w, "Endpoints", "API", "Method", "Path")
			for _, e := range endpoints {
				t.AppendRow([]interface{}{e.API, e.Method, e.Path})
			}
			t.Render()
		})
	},
}
