package types

import "fmt"

// KLine is a single OHLCV row
type KLine struct {
	Timestamp int64    `json:"timestamp"`
	Open      *float64 `json:"open,omitempty"`
	High      *float64 `json:"high,omitempty"`
	Low       *float64 `json:"low,omitempty"`
	Close     *float64 `json:"close,omitempty"`
	Volume    *float64 `json:"volume,omitempty"`
}

func (k KLine) String() string {
	return fmt.Sprintf("%d O:%s H:%s L:%s C:%s V:%s", k.Timestamp,
		formatOptional(k.Open), formatOptional(k.High), formatOptional(k.Low), formatOptional(k.Close), formatOptional(k.Volume))
}

// FilterKLinesBySinceLimit keeps the rows at or after since and truncates the result to the last limit rows.
func FilterKLinesBySinceLimit(klines []KLine, since int64, limit int) []KLine {
	filtered := make([]KLine, 0, len(klines))
	for _, k := range klines {
		if since > 0 && k.Timestamp < since {
			continue
		}

		filtered = append(filtered, k)
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	return filtered
}
