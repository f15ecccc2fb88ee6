package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// ExtendedKeyOpts is the struct given to
// ExtendedPrivateKey and ExtendedPublicKey methods
type ExtendedKeyOpts struct {
	Account uint32
}

func (o ExtendedKeyOpts) validate() error {
	if o.Account > MaxHardenedValue {
		return ErrOutOfRangeDerivationPathAccount
	}
	return nil
}

// ExtendedPrivateKey returns the extended private key in base58 format for
// the provided account index, derived at m/84'/coin'/account'
func (w *Wallet) ExtendedPrivateKey(opts ExtendedKeyOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}
	if w.IsImported() {
		return "", ErrNullMasterKey
	}

	xprv, err := w.deriveAccountKey(opts.Account)
	if err != nil {
		return "", err
	}
	return xprv.String(), nil
}

// ExtendedPublicKey returns the extended public key in base58 format for
// the provided account index, derived at m/84'/coin'/account'
func (w *Wallet) ExtendedPublicKey(opts ExtendedKeyOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if err := w.validate(); err != nil {
		return "", err
	}
	if w.IsImported() {
		return "", ErrNullMasterKey
	}

	xprv, err := w.deriveAccountKey(opts.Account)
	if err != nil {
		return "", err
	}
	xpub, err := xprv.Neuter()
	if err != nil {
		return "", err
	}
	return xpub.String(), nil
}

func (w *Wallet) deriveAccountKey(account uint32) (*hdkeychain.ExtendedKey, error) {
	hdNode, err := w.masterNode()
	if err != nil {
		return nil, err
	}
	accountPath := DerivationPath{
		hdkeychain.HardenedKeyStart + 84,
		hdkeychain.HardenedKeyStart + w.net.coinType(),
		hdkeychain.HardenedKeyStart + account,
	}
	for _, step := range accountPath {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, err
		}
	}
	return hdNode, nil
}

// DeriveSigningKeyPairOpts is the struct given to DeriveSigningKeyPair method
type DeriveSigningKeyPairOpts struct {
	// DerivationPath overrides the wallet's default BIP84 path when set.
	DerivationPath string
}

func (o DeriveSigningKeyPairOpts) validate() error {
	if len(o.DerivationPath) <= 0 {
		return nil
	}
	derivationPath, err := ParseDerivationPath(o.DerivationPath)
	if err != nil {
		return err
	}
	return checkDerivationPath(derivationPath)
}

// DeriveSigningKeyPair derives the key pair at the provided derivation path,
// or at the wallet's default path when none is given. For wallets imported
// from a raw private key the imported pair is returned and the path ignored.
func (w *Wallet) DeriveSigningKeyPair(opts DeriveSigningKeyPairOpts) (
	*btcec.PrivateKey,
	*btcec.PublicKey,
	error,
) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	if err := w.validate(); err != nil {
		return nil, nil, err
	}

	if w.IsImported() {
		return w.importedKey, w.importedKey.PubKey(), nil
	}

	derivationPath := DefaultDerivationPath(w.net)
	if len(opts.DerivationPath) > 0 {
		derivationPath, _ = ParseDerivationPath(opts.DerivationPath)
	}

	hdNode, err := w.masterNode()
	if err != nil {
		return nil, nil, err
	}
	for _, step := range derivationPath {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, nil, err
		}
	}

	privateKey, err := hdNode.ECPrivKey()
	if err != nil {
		return nil, nil, err
	}
	publicKey, err := hdNode.ECPubKey()
	if err != nil {
		return nil, nil, err
	}

	return privateKey, publicKey, nil
}

// DeriveAddressOpts is the struct given to DeriveAddress method
type DeriveAddressOpts struct {
	DerivationPath string
}

// DeriveAddress derives the native segwit address of the key pair at the
// provided derivation path, or at the wallet's default path when none is
// given.
func (w *Wallet) DeriveAddress(opts DeriveAddressOpts) (string, error) {
	_, pubkey, err := w.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{
		DerivationPath: opts.DerivationPath,
	})
	if err != nil {
		return "", err
	}
	return AddressFromPublicKey(pubkey, w.net)
}

// PublicKeyHex returns the compressed public key of the wallet's signing key
// pair in hex format.
func (w *Wallet) PublicKeyHex(opts DeriveSigningKeyPairOpts) (string, error) {
	_, pubkey, err := w.DeriveSigningKeyPair(opts)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pubkey.SerializeCompressed()), nil
}

// WIF exports the wallet's signing private key in WIF format.
func (w *Wallet) WIF(opts DeriveSigningKeyPairOpts) (string, error) {
	prvkey, _, err := w.DeriveSigningKeyPair(opts)
	if err != nil {
		return "", err
	}
	wif, err := btcutil.NewWIF(prvkey, w.net.Params(), true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}
