package wallet

import (
	"bytes"
	"fmt"

	"github.com/bitsend-network/bitsend-daemon/pkg/transactionutil"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// SignTransactionOpts is the struct given to SignTransaction method
type SignTransactionOpts struct {
	Unsigned *UnsignedTransaction
	// DerivationPath overrides the wallet's default signing key when set.
	DerivationPath string
}

func (o SignTransactionOpts) validate() error {
	if o.Unsigned == nil || len(o.Unsigned.tx.TxIn) <= 0 {
		return ErrEmptyInputs
	}
	if len(o.Unsigned.prevouts) != len(o.Unsigned.tx.TxIn) {
		return ErrMalformedTransaction
	}
	if len(o.DerivationPath) > 0 {
		derivationPath, err := ParseDerivationPath(o.DerivationPath)
		if err != nil {
			return err
		}
		return checkDerivationPath(derivationPath)
	}
	return nil
}

// SignTransaction signs every input of the unsigned transaction with the
// wallet's signing key and finalizes the witness data. The signing key must
// own the locking script of every input, a single key covers all of them.
// Signatures are deterministic, signing the same transaction twice yields
// byte-identical results.
func (w *Wallet) SignTransaction(opts SignTransactionOpts) (*SignedTransaction, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	prvkey, pubkey, err := w.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{
		DerivationPath: opts.DerivationPath,
	})
	if err != nil {
		return nil, err
	}

	ownedScript, err := payToWitnessPubkeyHashScript(pubkey, w.net)
	if err != nil {
		return nil, err
	}

	// the unsigned transaction stays untouched, witnesses are attached to a
	// deep copy.
	tx := opts.Unsigned.tx.Copy()

	prevoutMap := make(map[wire.OutPoint]*wire.TxOut)
	for i, in := range tx.TxIn {
		prevoutMap[in.PreviousOutPoint] = opts.Unsigned.prevouts[i]
	}
	sigHashes := txscript.NewTxSigHashes(tx, txscript.NewMultiPrevOutFetcher(prevoutMap))

	for i := range tx.TxIn {
		prevout := opts.Unsigned.prevouts[i]
		if !bytes.Equal(prevout.PkScript, ownedScript) {
			return nil, fmt.Errorf(
				"%w: input %d", ErrScriptNotOwned, i,
			)
		}

		witness, err := txscript.WitnessSignature(
			tx, sigHashes, i, prevout.Value, prevout.PkScript,
			txscript.SigHashAll, prvkey, true,
		)
		if err != nil {
			return nil, err
		}

		if err := verifyInputSignature(
			tx, sigHashes, i, prevout, witness, pubkey,
		); err != nil {
			return nil, err
		}

		tx.TxIn[i].Witness = witness
	}

	return &SignedTransaction{tx: tx, fee: opts.Unsigned.fee}, nil
}

// verifyInputSignature re-computes the witness sighash of the input and
// checks the produced signature against it before the witness is attached.
func verifyInputSignature(
	tx *wire.MsgTx,
	sigHashes *txscript.TxSigHashes,
	inIndex int,
	prevout *wire.TxOut,
	witness wire.TxWitness,
	pubkey *btcec.PublicKey,
) error {
	hashForSignature, err := txscript.CalcWitnessSigHash(
		prevout.PkScript, sigHashes, txscript.SigHashAll, tx, inIndex, prevout.Value,
	)
	if err != nil {
		return err
	}

	// strip the trailing sighash type byte
	rawSig := witness[0][:len(witness[0])-1]
	signature, err := ecdsa.ParseDERSignature(rawSig)
	if err != nil {
		return err
	}
	if !signature.Verify(hashForSignature, pubkey) {
		return fmt.Errorf(
			"signature verification failed for input %d", inIndex,
		)
	}
	return nil
}

// SignedTransaction is an immutable fully signed transaction. It exposes the
// canonical wire serialization and the derived transaction id.
type SignedTransaction struct {
	tx  *wire.MsgTx
	fee uint64
}

// Hex returns the canonical wire encoding of the transaction in hex format,
// witness data included. It errors with ErrMalformedTransaction if any input
// misses its witness, a transaction in that state must never be relayed.
func (s *SignedTransaction) Hex() (string, error) {
	for i, in := range s.tx.TxIn {
		if len(in.Witness) <= 0 {
			return "", fmt.Errorf(
				"%w: missing witness for input %d", ErrMalformedTransaction, i,
			)
		}
	}
	txhex, err := transactionutil.TxToHex(s.tx)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedTransaction, err)
	}
	return txhex, nil
}

// TxID returns the transaction id, ie. the double-SHA256 of the transaction
// serialization stripped of witness data, in conventional reversed byte
// order.
func (s *SignedTransaction) TxID() string {
	return transactionutil.TxID(s.tx)
}

// Fee returns the network fee in satoshis paid by the transaction.
func (s *SignedTransaction) Fee() uint64 {
	return s.fee
}
