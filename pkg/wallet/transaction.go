package wallet

import (
	"context"
	"fmt"

	"github.com/bitsend-network/bitsend-daemon/pkg/transactionutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// PrevoutResolver fetches a raw transaction by its id so that the builder
// can bind every input to the value and locking script of the output it
// spends. It is satisfied by explorer.Service.
type PrevoutResolver interface {
	GetTransactionHex(ctx context.Context, txid string) (string, error)
}

// InputRef identifies the previous output an input spends.
type InputRef struct {
	TxID string
	VOut uint32
}

// builderState tracks the monotonic life cycle of a transaction under
// construction. Transitions are never retractable, once ready to sign the
// inputs and outputs are frozen.
type builderState int

const (
	stateEmpty builderState = iota
	stateInputsAdded
	stateOutputsAdded
	stateFeeComputed
	stateChangeResolved
	stateReadyToSign
)

type txInput struct {
	ref     InputRef
	prevout *wire.TxOut
}

type txOutput struct {
	script []byte
	value  uint64
}

// TxBuilder composes inputs and outputs into an unsigned transaction. It
// spends exactly the inputs it is given, no coin selection is performed.
type TxBuilder struct {
	net      Network
	resolver PrevoutResolver
	state    builderState

	// prevTxCache avoids refetching the same previous transaction for
	// multiple inputs that spend from it. It lives only as long as the
	// builder itself.
	prevTxCache map[string]*wire.MsgTx

	inputs  []txInput
	outputs []txOutput
	fee     uint64
}

// TxBuilderOpts is the struct given to the NewTxBuilder factory
type TxBuilderOpts struct {
	Network  Network
	Resolver PrevoutResolver
}

func (o TxBuilderOpts) validate() error {
	if o.Resolver == nil {
		return ErrNullResolver
	}
	return nil
}

// NewTxBuilder returns an empty transaction builder bound to the given
// network and prevout resolver.
func NewTxBuilder(opts TxBuilderOpts) (*TxBuilder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &TxBuilder{
		net:         opts.Network,
		resolver:    opts.Resolver,
		prevTxCache: make(map[string]*wire.MsgTx),
	}, nil
}

// AddInput resolves the referenced previous output to obtain its locking
// script and satoshi value and binds the input to them. The previous
// transaction is fetched once per distinct txid.
func (b *TxBuilder) AddInput(ctx context.Context, ref InputRef) error {
	if b.state > stateInputsAdded {
		return ErrOutOfOrderOperation
	}
	if _, err := chainhash.NewHashFromStr(ref.TxID); err != nil {
		return fmt.Errorf("%w: invalid txid '%s'", ErrUnresolvedPrevout, ref.TxID)
	}

	prevTx, ok := b.prevTxCache[ref.TxID]
	if !ok {
		txhex, err := b.resolver.GetTransactionHex(ctx, ref.TxID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnresolvedPrevout, err)
		}
		prevTx, err = transactionutil.NewTxFromHex(txhex)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnresolvedPrevout, err)
		}
		b.prevTxCache[ref.TxID] = prevTx
	}

	prevout, err := transactionutil.PrevoutFromTx(prevTx, ref.VOut)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnresolvedPrevout, err)
	}

	b.inputs = append(b.inputs, txInput{ref: ref, prevout: prevout})
	b.state = stateInputsAdded
	return nil
}

// AddOutput appends a payment output. The address must decode under the
// builder's network and the amount must be a positive integer of satoshis.
func (b *TxBuilder) AddOutput(address string, value uint64) error {
	if b.state < stateInputsAdded || b.state > stateOutputsAdded {
		return ErrOutOfOrderOperation
	}
	if value == 0 {
		return ErrZeroOutputAmount
	}
	script, err := OutputScriptFromAddress(address, b.net)
	if err != nil {
		return err
	}

	b.outputs = append(b.outputs, txOutput{script: script, value: value})
	b.state = stateOutputsAdded
	return nil
}

// ComputeFee estimates the network fee for the current number of inputs and
// outputs at the given rate, a zero rate selects the default one.
func (b *TxBuilder) ComputeFee(satsPerByte uint64) (uint64, error) {
	if b.state != stateOutputsAdded {
		return 0, ErrOutOfOrderOperation
	}

	b.fee = EstimateFee(len(b.inputs), len(b.outputs), satsPerByte)
	b.state = stateFeeComputed
	return b.fee, nil
}

// ResolveChange computes the leftover value of the transaction and, when
// positive, appends an output returning it to the given change address. A
// negative leftover makes the construction fail, a zero one adds no output.
func (b *TxBuilder) ResolveChange(changeAddress string) error {
	if b.state != stateFeeComputed {
		return ErrOutOfOrderOperation
	}
	if len(changeAddress) <= 0 {
		return ErrNullChangeAddress
	}
	changeScript, err := OutputScriptFromAddress(changeAddress, b.net)
	if err != nil {
		return err
	}

	inValue := b.totalInputValue()
	outValue := b.totalOutputValue()
	if inValue < outValue+b.fee {
		return fmt.Errorf(
			"%w: input total %d cannot cover outputs %d plus fee %d",
			ErrInsufficientFunds, inValue, outValue, b.fee,
		)
	}

	if changeValue := inValue - outValue - b.fee; changeValue > 0 {
		b.outputs = append(b.outputs, txOutput{
			script: changeScript,
			value:  changeValue,
		})
	}

	b.state = stateChangeResolved
	return nil
}

// Unsigned freezes the builder and returns the unsigned transaction with
// every input bound to its resolved previous output.
func (b *TxBuilder) Unsigned() (*UnsignedTransaction, error) {
	if b.state == stateReadyToSign {
		return nil, ErrFrozenTransaction
	}
	if b.state != stateChangeResolved {
		return nil, ErrOutOfOrderOperation
	}
	if len(b.inputs) <= 0 {
		return nil, ErrEmptyInputs
	}
	if len(b.outputs) <= 0 {
		return nil, ErrEmptyOutputs
	}

	tx := wire.NewMsgTx(2)
	prevouts := make([]*wire.TxOut, 0, len(b.inputs))
	for _, in := range b.inputs {
		prevHash, err := chainhash.NewHashFromStr(in.ref.TxID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedPrevout, err)
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prevHash, in.ref.VOut), nil, nil))
		prevouts = append(prevouts, in.prevout)
	}
	for _, out := range b.outputs {
		tx.AddTxOut(wire.NewTxOut(int64(out.value), out.script))
	}

	b.state = stateReadyToSign
	return &UnsignedTransaction{
		tx:       tx,
		prevouts: prevouts,
		fee:      b.fee,
	}, nil
}

func (b *TxBuilder) totalInputValue() uint64 {
	var total uint64
	for _, in := range b.inputs {
		total += uint64(in.prevout.Value)
	}
	return total
}

func (b *TxBuilder) totalOutputValue() uint64 {
	var total uint64
	for _, out := range b.outputs {
		total += out.value
	}
	return total
}

// UnsignedTransaction is an immutable transaction ready to be signed, with
// every input bound to the value and locking script of the output it spends.
type UnsignedTransaction struct {
	tx       *wire.MsgTx
	prevouts []*wire.TxOut
	fee      uint64
}

// Fee returns the network fee in satoshis committed into the transaction.
func (u *UnsignedTransaction) Fee() uint64 {
	return u.fee
}

// Inputs returns the number of inputs of the transaction.
func (u *UnsignedTransaction) Inputs() int {
	return len(u.tx.TxIn)
}

// Outputs returns the number of outputs of the transaction, change included.
func (u *UnsignedTransaction) Outputs() int {
	return len(u.tx.TxOut)
}

// TotalOutputValue returns the sum in satoshis of all outputs.
func (u *UnsignedTransaction) TotalOutputValue() uint64 {
	var total uint64
	for _, out := range u.tx.TxOut {
		total += uint64(out.Value)
	}
	return total
}

// TotalInputValue returns the sum in satoshis of all bound previous outputs.
func (u *UnsignedTransaction) TotalInputValue() uint64 {
	var total uint64
	for _, prevout := range u.prevouts {
		total += uint64(prevout.Value)
	}
	return total
}
