package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Render writes v in the given format, the table format is delegated to renderTable
func Render(w io.Writer, format string, v interface{}, renderTable func(w io.Writer)) error {
	switch format {
	case "", OutputTable:
		renderTable(w)
		return nil

	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case OutputYAML:
		// the raw exchange payloads are json documents, go through json so they render as yaml maps
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}

		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("unsupported output format: %q", format)
}
