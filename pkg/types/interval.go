package types

import (
	"encoding/json"
	"time"
)

type Interval string

// Seconds returns the length of the interval in seconds, zero for unsupported intervals
func (i Interval) Seconds() int64 {
	return SupportedIntervals[i]
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Seconds()) * time.Second
}

func (i Interval) IsSupported() bool {
	_, ok := SupportedIntervals[i]
	return ok
}

func (i *Interval) UnmarshalJSON(b []byte) (err error) {
	var a string
	err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	*i = Interval(a)
	return
}

func (i Interval) String() string {
	return string(i)
}

var Interval1h = Interval("1h")
var Interval4h = Interval("4h")
var Interval8h = Interval("8h")
var Interval1d = Interval("1d")
var Interval1w = Interval("1w")

var SupportedIntervals = map[Interval]int64{
	Interval1h: 60 * 60,
	Interval4h: 60 * 60 * 4,
	Interval8h: 60 * 60 * 8,
	Interval1d: 60 * 60 * 24,
	Interval1w: 60 * 60 * 24 * 7,
}
