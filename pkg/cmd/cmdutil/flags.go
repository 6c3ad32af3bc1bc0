package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for environments
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("multi-api-key", "", "multi api key")
	flags.String("multi-api-secret", "", "multi api secret")
	flags.String("output", OutputTable, "output format, one of table, json and yaml")
}
