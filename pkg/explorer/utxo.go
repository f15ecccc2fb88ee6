package explorer

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

type status struct {
	Confirmed bool `json:"confirmed"`
}

type witnessUtxo struct {
	UHash   string `json:"txid"`
	UIndex  uint32 `json:"vout"`
	UValue  uint64 `json:"value"`
	UStatus status `json:"status"`
	UScript []byte
}

// NewWitnessUtxo is the factory for a P2WPKH utxo.
func NewWitnessUtxo(
	hash string, index uint32, value uint64, script []byte, confirmed bool,
) Utxo {
	return witnessUtxo{
		UHash:   hash,
		UIndex:  index,
		UValue:  value,
		UScript: script,
		UStatus: status{Confirmed: confirmed},
	}
}

func (wu witnessUtxo) Hash() string {
	return wu.UHash
}

func (wu witnessUtxo) Index() uint32 {
	return wu.UIndex
}

func (wu witnessUtxo) Value() uint64 {
	return wu.UValue
}

func (wu witnessUtxo) Script() []byte {
	return wu.UScript
}

func (wu witnessUtxo) IsConfirmed() bool {
	return wu.UStatus.Confirmed
}

func (wu witnessUtxo) Parse() (*wire.TxIn, *wire.TxOut, error) {
	inHash, err := chainhash.NewHashFromStr(wu.UHash)
	if err != nil {
		return nil, nil, err
	}
	input := wire.NewTxIn(wire.NewOutPoint(inHash, wu.UIndex), nil, nil)
	prevout := wire.NewTxOut(int64(wu.UValue), wu.UScript)
	return input, prevout, nil
}
