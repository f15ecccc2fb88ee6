package bufferutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxIDRoundTrip(t *testing.T) {
	txid := "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16"

	buf, err := TxIDToBytes(txid)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 32, len(buf))
	assert.Equal(t, txid, TxIDFromBytes(buf))
}

func TestFailingTxIDToBytes(t *testing.T) {
	_, err := TxIDToBytes("not an hex string")
	assert.NotNil(t, err)
}

func TestScriptToHex(t *testing.T) {
	script := []byte{
		0x00, 0x14, 0xc0, 0xce, 0xbc, 0xd6, 0xc3, 0xd3, 0xca, 0x8c, 0x75,
		0xdc, 0x5e, 0xc6, 0x2e, 0xbe, 0x55, 0x33, 0x0e, 0xf9, 0x10, 0xe2,
	}
	assert.Equal(
		t, "0014c0cebcd6c3d3ca8c75dc5ec62ebe55330ef910e2", ScriptToHex(script),
	)
}

func TestReverseBytes(t *testing.T) {
	tests := []struct {
		in  []byte
		out []byte
	}{
		{nil, nil},
		{[]byte{0x01}, []byte{0x01}},
		{[]byte{0x01, 0x02, 0x03}, []byte{0x03, 0x02, 0x01}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, ReverseBytes(tt.in))
	}
}
