package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// segments splits a "H[H]:MM[:SS]" string and parses each part as a
// non-negative integer.
func segments(s string) ([]int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("invalid time format %q: want HH:MM or HH:MM:SS", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid segment %q in %q", p, s)
		}
		nums[i] = n
	}
	return nums, nil
}

// Parse converts a clock string into a point in time on the same calendar
// day as ref, in ref's location. Two segments default the seconds to zero.
func Parse(s string, ref time.Time) (time.Time, error) {
	nums, err := segments(s)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, second := nums[0], nums[1], 0
	if len(nums) == 3 {
		second = nums[2]
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("time %q out of range", s)
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, second, 0, ref.Location()), nil
}

// ParseSpan converts a "HH:MM[:SS]" string into an elapsed-time span, used
// for goals. Values are summed, so "39:00" is a valid 39-hour span.
func ParseSpan(s string) (time.Duration, error) {
	nums, err := segments(s)
	if err != nil {
		return 0, err
	}

	d := time.Duration(nums[0])*time.Hour + time.Duration(nums[1])*time.Minute
	if len(nums) == 3 {
		d += time.Duration(nums[2]) * time.Second
	}
	return d, nil
}

// ParseInterval parses a break given as "<time>-<time>" and returns the
// span between the two clock times. The result is the same no matter which
// endpoint comes first.
func ParseInterval(s string, ref time.Time) (time.Duration, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid break interval %q: want HH:MM-HH:MM", s)
	}

	start, err := Parse(parts[0], ref)
	if err != nil {
		return 0, err
	}
	end, err := Parse(parts[1], ref)
	if err != nil {
		return 0, err
	}

	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return d, nil
}

// FormatHMS renders a duration as zero-padded HH:MM:SS. The sign is
// discarded; direction is conveyed by surrounding text.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Hours converts a duration to decimal hours (whole hours plus minutes/60),
// rounded to two places. Seconds are ignored.
func Hours(d time.Duration) float64 {
	if d < 0 {
		d = -d
	}
	h := float64(d / time.Hour)
	m := float64(d % time.Hour / time.Minute)
	return Round2(h + m/60)
}

// FormatHours renders Hours without trailing zeros, e.g. "7.8" or "2.75".
func FormatHours(d time.Duration) string {
	return FormatFloat(Hours(d))
}

// FormatFloat renders a float without trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
