package multi

import (
	"fmt"
	"time"

	"github.com/multiio/multigo/pkg/types"
)

// klineWindow is the query window of the kline endpoint in unix seconds
type klineWindow struct {
	Start *int64
	End   int64
}

// resolveKLineWindow computes the query window from the optional since (milliseconds) and limit:
//
//   - since and limit: the window covers the last limit intervals before now
//   - since only: only the end is sent
//   - no since: the start is the epoch
func resolveKLineWindow(interval types.Interval, since *int64, limit *int, now time.Time) (klineWindow, error) {
	seconds := interval.Seconds()
	if seconds == 0 {
		return klineWindow{}, fmt.Errorf("unsupported interval %q", interval)
	}

	end := now.Unix()
	window := klineWindow{End: end}

	switch {
	case since != nil && limit != nil:
		start := end - int64(*limit)*seconds
		window.Start = &start

	case since != nil:
		// the server picks the start

	default:
		// an absent since counts as zero
		var start int64
		window.Start = &start
	}

	return window, nil
}

func toSinceLimit(sinceTime *time.Time, limit int) (since *int64, limitPtr *int) {
	if sinceTime != nil {
		ms := sinceTime.UnixMilli()
		since = &ms
	}

	if limit > 0 {
		limitPtr = &limit
	}

	return since, limitPtr
}
