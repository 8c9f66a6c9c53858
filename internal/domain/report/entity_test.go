package report

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopItem_AvgQuantityValue(t *testing.T) {
	valid := TopItem{AvgQuantity: sql.NullFloat64{Float64: 2.5, Valid: true}}
	assert.Equal(t, 2.5, valid.AvgQuantityValue())

	null := TopItem{}
	assert.Equal(t, 0.0, null.AvgQuantityValue(), "null averages coerce to zero")
}
