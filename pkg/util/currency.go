package util

import "strings"

// commonCurrencies maps the legacy or exchange specific codes to the common codes
var commonCurrencies = map[string]string{
	"XBT":    "BTC",
	"BCC":    "BCH",
	"BCHABC": "BCH",
	"BCHSV":  "BSV",
	"DRK":    "DASH",
}

// SafeCurrencyCode converts an exchange currency id to the canonical upper-case code
func SafeCurrencyCode(id string) string {
	code := strings.ToUpper(strings.TrimSpace(id))
	if common, ok := commonCurrencies[code]; ok {
		return common
	}

	return code
}
