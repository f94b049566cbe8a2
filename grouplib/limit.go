package grouplib

import (
	"os"
	"strconv"
)

// DefaultTestingLimit is the number of library groups an integration
// test touches when STABCHAIN_GROUP_TESTING_LIMIT is unset (spec.md §6).
const DefaultTestingLimit = 1000

// TestingLimit returns the number of library groups an integration test
// should sample this run: STABCHAIN_GROUP_TESTING_LIMIT if it parses as
// a positive integer, else DefaultTestingLimit.
func TestingLimit() int {
	if raw, ok := os.LookupEnv("STABCHAIN_GROUP_TESTING_LIMIT"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return DefaultTestingLimit
}

// NoLimit reports whether STABCHAIN_GROUP_TESTING_NO_LIMIT is set to
// any value, disabling TestingLimit's cap entirely.
func NoLimit() bool {
	_, ok := os.LookupEnv("STABCHAIN_GROUP_TESTING_NO_LIMIT")
	return ok
}

// SampleSize returns how many of n available library groups an
// integration test should use this run, honoring NoLimit.
func SampleSize(n int) int {
	if NoLimit() {
		return n
	}
	if limit := TestingLimit(); limit < n {
		return limit
	}
	return n
}
