package mathutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// BigOne represents a single BTC unit with precision 8
	BigOne = uint64(math.Pow10(8))
	// BigOneDecimal represents a single BTC unit with precision 8 as decimal.Decimal
	BigOneDecimal = decimal.NewFromInt(int64(BigOne))
)

func init() {
	decimal.DivisionPrecision = 8
}

// SatsToBTC converts an amount in satoshis to its BTC representation
func SatsToBTC(sats uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(sats), 0).
		Div(BigOneDecimal)
}

// BTCToSats converts a BTC amount to satoshis, truncating any digit beyond
// the 8th decimal place
func BTCToSats(btc decimal.Decimal) uint64 {
	return uint64(btc.Mul(BigOneDecimal).IntPart())
}
