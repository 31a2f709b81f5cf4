package testflags

import (
	"os"
	"testing"
)

// SlowTest gates exhaustive property-style tests behind an env var so
// the default test run stays fast.
func SlowTest(t *testing.T) {
	_, ok := os.LookupEnv("SSS_ENABLE_SLOW_TESTS")
	if !ok {
		t.SkipNow()
	}
	t.Parallel()
}
