package esplora

import (
	"encoding/json"
	"fmt"

	"github.com/bitsend-network/bitsend-daemon/pkg/bufferutil"
	"github.com/bitsend-network/bitsend-daemon/pkg/explorer"
	"github.com/bitsend-network/bitsend-daemon/pkg/transactionutil"
	"github.com/btcsuite/btcd/wire"
)

/**** TRANSACTION ****/

// tx is the implementation of the explorer's Transaction interface
type tx struct {
	TxHash      string
	TxVersion   int
	TxLocktime  int
	TxInputs    []*wire.TxIn
	TxOutputs   []*wire.TxOut
	TxConfirmed bool
}

// NewTxFromHex is the factory for a Transaction given its hex format.
func NewTxFromHex(txhex string, confirmed bool) (explorer.Transaction, error) {
	t, err := transactionutil.NewTxFromHex(txhex)
	if err != nil {
		return nil, err
	}

	return &tx{
		TxHash:      transactionutil.TxID(t),
		TxVersion:   int(t.Version),
		TxLocktime:  int(t.LockTime),
		TxInputs:    t.TxIn,
		TxOutputs:   t.TxOut,
		TxConfirmed: confirmed,
	}, nil
}

func (t *tx) Hash() string {
	return t.TxHash
}

func (t *tx) Version() int {
	return t.TxVersion
}

func (t *tx) Locktime() int {
	return t.TxLocktime
}

func (t *tx) Inputs() []*wire.TxIn {
	return t.TxInputs
}

func (t *tx) Outputs() []*wire.TxOut {
	return t.TxOutputs
}

func (t *tx) Confirmed() bool {
	return t.TxConfirmed
}

// txStatus is the typed representation of the /tx/:txid/status response.
type txStatus struct {
	Confirmed   bool   `json:"confirmed"`
	BlockHash   string `json:"block_hash"`
	BlockHeight int    `json:"block_height"`
	BlockTime   int64  `json:"block_time"`
}

func parseTxStatus(resp string) (*txStatus, error) {
	s := &txStatus{}
	if err := json.Unmarshal([]byte(resp), s); err != nil {
		return nil, fmt.Errorf("invalid tx status JSON: %w", err)
	}
	return s, nil
}

/**** UTXO ****/

// utxoResult is the typed representation of an entry of the
// /address/:addr/utxo response.
type utxoResult struct {
	Txid   string      `json:"txid"`
	Vout   uint32      `json:"vout"`
	Value  uint64      `json:"value"`
	Status statusField `json:"status"`
}

type statusField struct {
	Confirmed bool `json:"confirmed"`
}

func (r utxoResult) validate() error {
	buf, err := bufferutil.TxIDToBytes(r.Txid)
	if err != nil || len(buf) != 32 {
		return fmt.Errorf("invalid utxo txid '%s'", r.Txid)
	}
	return nil
}

func parseUtxoResults(resp string) ([]utxoResult, error) {
	results := make([]utxoResult, 0)
	if err := json.Unmarshal([]byte(resp), &results); err != nil {
		return nil, fmt.Errorf("invalid utxo list JSON: %w", err)
	}
	for _, r := range results {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	return results, nil
}

/**** ADDRESS ****/

// addressInfo is the typed representation of the /address/:addr response.
type addressInfo struct {
	Address    string     `json:"address"`
	ChainStats chainStats `json:"chain_stats"`
}

type chainStats struct {
	FundedTxoSum uint64 `json:"funded_txo_sum"`
	SpentTxoSum  uint64 `json:"spent_txo_sum"`
	TxCount      int    `json:"tx_count"`
}

func (i addressInfo) balance() (uint64, error) {
	if i.ChainStats.SpentTxoSum > i.ChainStats.FundedTxoSum {
		return 0, fmt.Errorf(
			"malformed address stats: spent %d exceeds funded %d",
			i.ChainStats.SpentTxoSum, i.ChainStats.FundedTxoSum,
		)
	}
	return i.ChainStats.FundedTxoSum - i.ChainStats.SpentTxoSum, nil
}

func parseAddressInfo(resp string) (*addressInfo, error) {
	info := &addressInfo{}
	if err := json.Unmarshal([]byte(resp), info); err != nil {
		return nil, fmt.Errorf("invalid address JSON: %w", err)
	}
	return info, nil
}
