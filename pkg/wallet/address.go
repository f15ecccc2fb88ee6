package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

// AddressFromPublicKey encodes the native segwit address of the 20-byte hash
// of the given compressed public key.
func AddressFromPublicKey(pubkey *btcec.PublicKey, net Network) (string, error) {
	pubkeyHash := btcutil.Hash160(pubkey.SerializeCompressed())
	addr, err := btcutil.NewAddressWitnessPubKeyHash(pubkeyHash, net.Params())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// OutputScriptFromAddress decodes any well-formed address, not only those
// produced by this wallet, and returns its locking script. It errors with
// ErrInvalidAddress for malformed addresses and for addresses whose prefix
// does not match the given network.
func OutputScriptFromAddress(address string, net Network) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, net.Params())
	if err != nil {
		return nil, ErrInvalidAddress
	}
	if !addr.IsForNet(net.Params()) {
		return nil, ErrInvalidAddress
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, ErrInvalidAddress
	}
	return script, nil
}

// payToWitnessPubkeyHashScript returns the P2WPKH locking script of the
// given public key.
func payToWitnessPubkeyHashScript(pubkey *btcec.PublicKey, net Network) ([]byte, error) {
	pubkeyHash := btcutil.Hash160(pubkey.SerializeCompressed())
	addr, err := btcutil.NewAddressWitnessPubKeyHash(pubkeyHash, net.Params())
	if err != nil {
		return nil, err
	}
	return txscript.PayToAddrScript(addr)
}
