// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Clock is a now() seam so date-sensitive code can be tested deterministically
type Clock func() time.Time

// System returns the wall clock
func System() Clock { return time.Now }

// Fixed returns a clock frozen at t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }
