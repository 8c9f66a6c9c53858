package testsupport

import (
	"fmt"
	"sync/atomic"
	"time"
)

var (
	// Global counter for generating unique sequential IDs in tests
	testSequence uint64
)

func init() {
	// Initialize with current timestamp to ensure uniqueness across test runs
	testSequence = uint64(time.Now().UnixNano() % 1000000)
}

// NextSequence returns next unique sequence number
func NextSequence() uint64 {
	return atomic.AddUint64(&testSequence, 1)
}

// UniqueName generates a unique name with given prefix
// Example: UniqueName("item") -> "item_123456"
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, NextSequence())
}

// UniqueEmail generates a unique email address
// Example: UniqueEmail("shopper") -> "shopper_123456@test.local"
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.local", prefix, NextSequence())
}

// UniqueStore generates a unique store name
func UniqueStore() string {
	return fmt.Sprintf("Store %d", NextSequence())
}
