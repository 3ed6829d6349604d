package cli

import (
	"testing"
	"time"
)

// SetNowForTest pins the clock used for "Posted" labels.
func SetNowForTest(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}
