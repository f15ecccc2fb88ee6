package mathutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSatsToBTC(t *testing.T) {
	tests := []struct {
		sats uint64
		btc  string
	}{
		{0, "0"},
		{1, "0.00000001"},
		{100000000, "1"},
		{150000000, "1.5"},
		{2100000000000000, "21000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.btc, SatsToBTC(tt.sats).String())
	}
}

func TestBTCToSats(t *testing.T) {
	tests := []struct {
		btc  string
		sats uint64
	}{
		{"0", 0},
		{"0.00000001", 1},
		{"1", 100000000},
		{"0.5", 50000000},
		// digits beyond the 8th decimal place are truncated
		{"0.000000015", 1},
	}
	for _, tt := range tests {
		btc, err := decimal.NewFromString(tt.btc)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, tt.sats, BTCToSats(btc))
	}
}

func TestRoundTrip(t *testing.T) {
	sats := uint64(48080)
	assert.Equal(t, sats, BTCToSats(SatsToBTC(sats)))
}
