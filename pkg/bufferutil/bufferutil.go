package bufferutil

import (
	"encoding/hex"
)

// TxIDFromBytes returns the hex encoding of an internal-byte-order hash,
// reversed to the conventional display order.
func TxIDFromBytes(buffer []byte) string {
	return hex.EncodeToString(ReverseBytes(buffer))
}

// TxIDToBytes converts a display-order txid to its internal byte order.
func TxIDToBytes(str string) ([]byte, error) {
	buffer, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}
	return ReverseBytes(buffer), nil
}

// ScriptToHex returns the hex representation of an output script.
func ScriptToHex(script []byte) string {
	return hex.EncodeToString(script)
}

// ReverseBytes returns a copy of the given slice with its bytes in
// reverse order.
func ReverseBytes(buf []byte) []byte {
	if len(buf) == 0 {
		return buf
	}
	tmp := make([]byte, len(buf))
	copy(tmp, buf)
	for i := len(tmp)/2 - 1; i >= 0; i-- {
		j := len(tmp) - 1 - i
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp
}
