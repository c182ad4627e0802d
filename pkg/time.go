// Package pkg holds small shared helpers with no internal dependencies.
package pkg

import (
	"strconv"
	"strings"
	"time"
)

type timeUnit struct {
	short string
	value time.Duration
}

// Units from largest to smallest; formatting picks at most two.
var units = []timeUnit{
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
	{"ms", time.Millisecond},
	{"μs", time.Microsecond},
	{"ns", time.Nanosecond},
}

// SmartDurationFormat renders a duration compactly for log output:
// sub-second values as a single unit, larger values as up to two units
// (e.g. "1h12m", "3s", "245ms").
func SmartDurationFormat(d time.Duration) string {
	if d == 0 {
		return "0"
	}

	if d < time.Second {
		if d >= time.Millisecond {
			return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
		}
		if d >= time.Microsecond {
			return strconv.FormatInt(d.Microseconds(), 10) + "μs"
		}
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	}

	var b strings.Builder
	remaining := d
	parts := 0
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		b.WriteString(strconv.FormatInt(int64(count), 10))
		b.WriteString(u.short)
		remaining %= u.value
		parts++
		if parts == 2 || remaining == 0 {
			break
		}
	}
	return b.String()
}
