package application

import "errors"

var (
	// ErrWalletNotInitialized ...
	ErrWalletNotInitialized = errors.New("wallet must be initialized before using this operation")
	// ErrWalletAlreadyInitialized ...
	ErrWalletAlreadyInitialized = errors.New("wallet is already initialized")
	// ErrMissingInputs ...
	ErrMissingInputs = errors.New("transfer requires at least one input")
	// ErrMissingOutputs ...
	ErrMissingOutputs = errors.New("transfer requires at least one output")
	// ErrNullAddress ...
	ErrNullAddress = errors.New("address must not be null")
	// ErrNullTxHex ...
	ErrNullTxHex = errors.New("transaction hex must not be null")
	// ErrInvalidTxID ...
	ErrInvalidTxID = errors.New("transaction id must be a 32-byte hex string")
)
