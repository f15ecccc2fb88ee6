package wallet

const (
	// txBaseSize accounts for version, locktime and the in/out counters.
	txBaseSize = 10
	// txInputSize is the legacy-sized weight of a single-signature input.
	txInputSize = 148
	// txOutputSize is the size of a value plus P2WPKH script output.
	txOutputSize = 34

	// MinRelayFee is the floor, in satoshis, below which an estimated fee is
	// never allowed to fall. It guards against pathologically low rates
	// producing an unrelayable transaction.
	MinRelayFee = 1000
	// DefaultSatsPerByte is the fee rate applied when the caller does not
	// provide one.
	DefaultSatsPerByte = 10
)

// EstimateTxSize returns the estimated serialized size in bytes of a
// transaction spending single-signature witness inputs. The figure is a
// deliberate legacy-sized approximation, not a precise virtual-byte
// accounting: it overestimates witness spends, which keeps the computed fee
// on the safe side of the relay threshold.
func EstimateTxSize(numInputs, numOutputs int) int {
	return numInputs*txInputSize + numOutputs*txOutputSize + txBaseSize
}

// EstimateFee converts a fee rate in satoshis per byte into an absolute fee
// for a transaction with the given number of inputs and outputs, enforcing
// the MinRelayFee floor. A zero rate falls back to DefaultSatsPerByte.
func EstimateFee(numInputs, numOutputs int, satsPerByte uint64) uint64 {
	if satsPerByte == 0 {
		satsPerByte = DefaultSatsPerByte
	}
	fee := uint64(EstimateTxSize(numInputs, numOutputs)) * satsPerByte
	if fee < MinRelayFee {
		return MinRelayFee
	}
	return fee
}
