package explorer

import (
	"context"

	"github.com/btcsuite/btcd/wire"
)

// Utxo represents an unspent transaction output in the bitcoin chain.
type Utxo interface {
	Hash() string
	Index() uint32
	Value() uint64
	Script() []byte
	IsConfirmed() bool
	Parse() (*wire.TxIn, *wire.TxOut, error)
}

// Transaction represents a transaction in the bitcoin chain.
type Transaction interface {
	Hash() string
	Version() int
	Locktime() int
	Inputs() []*wire.TxIn
	Outputs() []*wire.TxOut
	Confirmed() bool
}

// Service is the representation of an explorer that allows to fetch data
// from the blockchain and to broadcast transactions. Every call is bound to
// the given context, a cancelled context aborts the underlying request.
type Service interface {
	// GetTransactionHex fetches the transaction in hex format given its hash.
	GetTransactionHex(ctx context.Context, txid string) (txhex string, err error)
	// GetTransaction fetches and parses the transaction given its hash.
	GetTransaction(ctx context.Context, txid string) (tx Transaction, err error)
	// IsTransactionConfirmed returns whether the tx identified by its hash has
	// been included in the blockchain.
	IsTransactionConfirmed(ctx context.Context, txid string) (confirmed bool, err error)
	// GetUnspents fetches the utxos owned by the given address.
	GetUnspents(ctx context.Context, addr string) (unspents []Utxo, err error)
	// GetUnspentsForAddresses fetches the utxos owned by the given list of
	// addresses.
	GetUnspentsForAddresses(ctx context.Context, addresses []string) (unspents []Utxo, err error)
	// GetBalance returns the confirmed balance in satoshis of the given address.
	GetBalance(ctx context.Context, addr string) (balance uint64, err error)
	// BroadcastTransaction attempts to add the given tx in hex format to the
	// mempool and returns its tx hash.
	BroadcastTransaction(ctx context.Context, txhex string) (txid string, err error)
	// GetBlockHeight returns the number of blocks of the blockchain.
	GetBlockHeight(ctx context.Context) (int, error)
}
