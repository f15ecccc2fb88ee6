package transactionutil

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/wire"

	"github.com/bitsend-network/bitsend-daemon/pkg/bufferutil"
)

// NewTxFromHex deserializes a transaction from its hex representation on the
// wire, witness data included.
func NewTxFromHex(txhex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(txhex)
	if err != nil {
		return nil, fmt.Errorf("invalid tx hex: %w", err)
	}
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("invalid tx: %w", err)
	}
	return tx, nil
}

// TxToHex serializes a transaction to its full wire representation, witness
// data included, and returns it in hex format.
func TxToHex(tx *wire.MsgTx) (string, error) {
	buf := bytes.NewBuffer(make([]byte, 0, tx.SerializeSize()))
	if err := tx.Serialize(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// TxID returns the transaction id of the given transaction, ie. the
// double-SHA256 of its serialization stripped of any witness data, in
// conventional reversed byte order.
func TxID(tx *wire.MsgTx) string {
	hash := tx.TxHash()
	return bufferutil.TxIDFromBytes(hash[:])
}

// PrevoutFromTx returns the output of the given transaction at the given
// index, or an error if the index is out of range.
func PrevoutFromTx(tx *wire.MsgTx, vout uint32) (*wire.TxOut, error) {
	if int(vout) >= len(tx.TxOut) {
		return nil, fmt.Errorf(
			"output index %d out of range [0, %d]", vout, len(tx.TxOut)-1,
		)
	}
	return tx.TxOut[vout], nil
}
