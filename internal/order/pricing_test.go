package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotalExact(t *testing.T) {
	// 9.99 * 3 must not pick up float noise
	got, err := LineTotal("9.99", 3)
	require.NoError(t, err)
	assert.Equal(t, "29.97", got.StringFixed(2))
}

func TestLineTotalAccumulates(t *testing.T) {
	total := decimal.Zero
	for _, line := range []struct {
		price string
		qty   int
	}{
		{"10.00", 2},
		{"0.10", 3},
		{"5.55", 1},
	} {
		lt, err := LineTotal(line.price, line.qty)
		require.NoError(t, err)
		total = total.Add(lt)
	}
	assert.Equal(t, "25.85", total.StringFixed(2))
}

func TestLineTotalBadPrice(t *testing.T) {
	_, err := LineTotal("not-a-number", 1)
	assert.Error(t, err)
}
