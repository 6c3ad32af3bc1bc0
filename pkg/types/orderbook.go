package types

import (
	"fmt"
	"sort"
	"strings"
)

type PriceVolume struct {
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

func (p PriceVolume) String() string {
	return fmt.Sprintf("PriceVolume{ Price: %f, Volume: %f }", p.Price, p.Volume)
}

type PriceVolumeSlice []PriceVolume

// SortBids sorts the slice by price in descending order
func (slice PriceVolumeSlice) SortBids() {
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].Price > slice[j].Price
	})
}

// SortAsks sorts the slice by price in ascending order
func (slice PriceVolumeSlice) SortAsks() {
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].Price < slice[j].Price
	})
}

type OrderBook struct {
	Symbol string `json:"symbol"`

	// Bids are sorted by price in descending order
	Bids PriceVolumeSlice `json:"bids"`

	// Asks are sorted by price in ascending order
	Asks PriceVolumeSlice `json:"asks"`

	// Timestamp is in milliseconds
	Timestamp *int64 `json:"timestamp,omitempty"`
	Datetime  string `json:"datetime,omitempty"`
	Nonce     *int64 `json:"nonce,omitempty"`
}

func (b *OrderBook) BestBid() (PriceVolume, bool) {
	if len(b.Bids) == 0 {
		return PriceVolume{}, false
	}

	return b.Bids[0], true
}

func (b *OrderBook) BestAsk() (PriceVolume, bool) {
	if len(b.Asks) == 0 {
		return PriceVolume{}, false
	}

	return b.Asks[0], true
}

func (b *OrderBook) String() string {
	sb := strings.Builder{}
	sb.WriteString("BOOK ")
	sb.WriteString(b.Symbol)
	sb.WriteString("\n")

	if len(b.Asks) > 0 {
		sb.WriteString("ASKS:\n")
		for i := len(b.Asks) - 1; i >= 0; i-- {
			sb.WriteString("- ASK: ")
			sb.WriteString(b.Asks[i].String())
			sb.WriteString("\n")
		}
	}

	if len(b.Bids) > 0 {
		sb.WriteString("BIDS:\n")
		for _, bid := range b.Bids {
			sb.WriteString("- BID: ")
			sb.WriteString(bid.String())
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
