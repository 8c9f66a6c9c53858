package testsupport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSequence_Monotonic(t *testing.T) {
	first := NextSequence()
	second := NextSequence()

	assert.Greater(t, second, first)
}

func TestUniqueEmail(t *testing.T) {
	a := UniqueEmail("shopper")
	b := UniqueEmail("shopper")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "shopper_"))
	assert.True(t, strings.HasSuffix(a, "@test.local"))
}

func TestUniqueName(t *testing.T) {
	assert.NotEqual(t, UniqueName("item"), UniqueName("item"))
}
