package wallet

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

var (
	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network must not be null")
	// ErrInvalidNetwork ...
	ErrInvalidNetwork = errors.New("network must be either mainnet or testnet")
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic is null")
	// ErrNullMasterKey ...
	ErrNullMasterKey = errors.New("master key is null")
	// ErrNullResolver ...
	ErrNullResolver = errors.New("prevout resolver must not be null")
	// ErrNullChangeAddress ...
	ErrNullChangeAddress = errors.New("change address must not be null")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")

	// ErrInvalidMnemonic is returned when the recovery phrase fails the
	// wordlist or checksum validation of BIP39.
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128,256]",
	)
	// ErrInvalidPrivateKey is returned when a WIF encoded private key is
	// malformed or does not match the wallet's network.
	ErrInvalidPrivateKey = errors.New("private key is invalid")
	// ErrInvalidAddress is returned when an address is malformed or does not
	// match the wallet's network.
	ErrInvalidAddress = errors.New("address is invalid")
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrInvalidDerivationPathLength ...
	ErrInvalidDerivationPathLength = errors.New(
		"derivation path must contain at most 9 elements",
	)
	// ErrInvalidDerivationPathAccount ...
	ErrInvalidDerivationPathAccount = errors.New(
		"derivation path's first elem must be hardened (suffix \"'\")",
	)
	// ErrOutOfRangeDerivationPathAccount ...
	ErrOutOfRangeDerivationPathAccount = errors.New(
		"account index must be in hardened range",
	)
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)

	// ErrUnresolvedPrevout is returned when the previous transaction of an
	// input cannot be fetched or the referenced output index is out of range.
	ErrUnresolvedPrevout = errors.New("previous output cannot be resolved")
	// ErrInsufficientFunds is returned when the input total cannot cover the
	// payment outputs plus the network fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrScriptNotOwned is returned when attempting to sign an input whose
	// locking script does not belong to the signing key.
	ErrScriptNotOwned = errors.New(
		"input locking script is not owned by the signing key",
	)
	// ErrMalformedTransaction is returned on a serialization invariant breach.
	// It flags a programmer error, a transaction in this state must never be
	// relayed.
	ErrMalformedTransaction = errors.New("transaction is malformed")

	// ErrEmptyInputs ...
	ErrEmptyInputs = errors.New("input list must not be empty")
	// ErrEmptyOutputs ...
	ErrEmptyOutputs = errors.New("output list must not be empty")
	// ErrZeroOutputAmount ...
	ErrZeroOutputAmount = errors.New("output amount must not be zero")
	// ErrZeroFeeRate ...
	ErrZeroFeeRate = errors.New("fee rate must be a positive number")
	// ErrOutOfOrderOperation is returned when a transaction builder method is
	// invoked outside of the expected state sequence.
	ErrOutOfOrderOperation = errors.New(
		"operation not allowed in the current transaction state",
	)
	// ErrFrozenTransaction is returned when attempting to mutate a transaction
	// that reached the ready-to-sign state.
	ErrFrozenTransaction = errors.New("transaction is frozen and cannot change")
)

// Network selects the chain parameters the wallet operates on. It is fixed
// at wallet construction and affects address encoding and the coin type of
// the default derivation path.
type Network int

const (
	// Mainnet ...
	Mainnet Network = iota
	// Testnet identifies testnet3
	Testnet
)

// NetworkFromString parses a network from its name.
func NetworkFromString(net string) (Network, error) {
	switch strings.ToLower(net) {
	case "mainnet":
		return Mainnet, nil
	case "testnet", "testnet3":
		return Testnet, nil
	case "":
		return 0, ErrNullNetwork
	default:
		return 0, ErrInvalidNetwork
	}
}

// Params returns the btcd chain parameters of the network.
func (n Network) Params() *chaincfg.Params {
	if n == Testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

// String returns the canonical name of the network.
func (n Network) String() string {
	if n == Testnet {
		return "testnet"
	}
	return "mainnet"
}

func (n Network) coinType() uint32 {
	if n == Testnet {
		return 1
	}
	return 0
}

// Wallet allows to create a new HD wallet from a fresh or restored mnemonic,
// or from a WIF encoded private key, to derive key pairs and addresses, and
// to build and sign transactions spending the wallet's utxos.
type Wallet struct {
	mnemonic    []string
	masterKey   []byte
	importedKey *btcec.PrivateKey
	net         Network
}

// NewWalletOpts is the struct given to the NewWallet method
type NewWalletOpts struct {
	Network     Network
	EntropySize int
}

func (o NewWalletOpts) validate() error {
	if o.EntropySize < 128 || o.EntropySize > 256 || o.EntropySize%32 != 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewWallet creates a new wallet with a freshly generated mnemonic
func NewWallet(opts NewWalletOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mnemonic, err := generateMnemonic(opts.EntropySize)
	if err != nil {
		return nil, err
	}
	seed := generateSeedFromMnemonic(mnemonic, "")
	masterKey, err := generateMasterKey(seed, opts.Network)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic:  mnemonic,
		masterKey: masterKey,
		net:       opts.Network,
	}, nil
}

// NewWalletFromMnemonicOpts is the struct given to the NewWalletFromMnemonic method
type NewWalletFromMnemonicOpts struct {
	Network    Network
	Mnemonic   []string
	Passphrase string
}

func (o NewWalletFromMnemonicOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewWalletFromMnemonic restores a wallet from the provided mnemonic and
// optional passphrase. Derivation is deterministic, the same mnemonic and
// passphrase always yield the same keys.
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seed := generateSeedFromMnemonic(opts.Mnemonic, opts.Passphrase)
	masterKey, err := generateMasterKey(seed, opts.Network)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic:  opts.Mnemonic,
		masterKey: masterKey,
		net:       opts.Network,
	}, nil
}

// NewWalletFromWIFOpts is the struct given to the NewWalletFromWIF method
type NewWalletFromWIFOpts struct {
	Network Network
	WIF     string
}

func (o NewWalletFromWIFOpts) validate() error {
	if len(o.WIF) <= 0 {
		return ErrInvalidPrivateKey
	}
	return nil
}

// NewWalletFromWIF imports a wallet from a WIF encoded private key, skipping
// any mnemonic derivation. The encoded key must match the wallet's network.
func NewWalletFromWIF(opts NewWalletFromWIFOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	wif, err := btcutil.DecodeWIF(opts.WIF)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	if !wif.IsForNet(opts.Network.Params()) {
		return nil, ErrInvalidPrivateKey
	}

	return &Wallet{
		importedKey: wif.PrivKey,
		net:         opts.Network,
	}, nil
}

func (w *Wallet) validate() error {
	if w.importedKey != nil {
		return nil
	}
	if len(w.masterKey) <= 0 {
		return ErrNullMasterKey
	}
	if len(w.mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(w.mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// Mnemonic is the getter for the wallet's recovery phrase. It errors for
// wallets imported from a raw private key.
func (w *Wallet) Mnemonic() ([]string, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	if len(w.mnemonic) <= 0 {
		return nil, ErrNullMnemonic
	}
	return w.mnemonic, nil
}

// Network is the getter for the wallet's network.
func (w *Wallet) Network() Network {
	return w.net
}

// IsImported returns whether the wallet was created from a raw private key
// instead of a mnemonic.
func (w *Wallet) IsImported() bool {
	return w.importedKey != nil
}
