package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{250 * time.Millisecond, "250ms"},
		{42 * time.Microsecond, "42μs"},
		{7 * time.Nanosecond, "7ns"},
		{3 * time.Second, "3s"},
		{72 * time.Minute, "1h12m"},
		{25*time.Hour + 30*time.Minute, "1d1h"},
	}
	for _, tc := range cases {
		if got := SmartDurationFormat(tc.in); got != tc.want {
			t.Errorf("%v: want %q, got %q", tc.in, tc.want, got)
		}
	}
}
