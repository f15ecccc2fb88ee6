package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
)

func TestAddressRoundTrip(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	_, pubkey, err := wallet.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{})
	if err != nil {
		t.Fatal(err)
	}

	addr, err := AddressFromPublicKey(pubkey, Mainnet)
	if err != nil {
		t.Fatal(err)
	}

	script, err := OutputScriptFromAddress(addr, Mainnet)
	if err != nil {
		t.Fatal(err)
	}

	// a P2WPKH script is OP_0 followed by the pushed 20-byte pubkey hash
	pubkeyHash := btcutil.Hash160(pubkey.SerializeCompressed())
	assert.Len(t, script, 22)
	assert.Equal(t, byte(0x00), script[0])
	assert.Equal(t, byte(0x14), script[1])
	assert.Equal(t, pubkeyHash, script[2:])
}

func TestDecodeForeignAddresses(t *testing.T) {
	// addresses of any script type produced by other wallets must decode
	tests := []struct {
		name      string
		address   string
		scriptHex string
	}{
		{
			name:      "p2wpkh",
			address:   "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu",
			scriptHex: "0014c0cebcd6c3d3ca8c75dc5ec62ebe55330ef910e2",
		},
		{
			name:      "p2pkh",
			address:   "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
			scriptHex: "76a91477bff20c60e522dfaa3350c39b030a5d004e839a88ac",
		},
		{
			name:      "p2sh",
			address:   "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
			scriptHex: "a914b472a266d0bd89c13706a4132ccfb16f7c3b9fcb87",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := OutputScriptFromAddress(tt.address, Mainnet)
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, tt.scriptHex, hex.EncodeToString(script))
		})
	}
}

func TestFailingOutputScriptFromAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		net     Network
	}{
		{
			name:    "malformed",
			address: "not an address",
			net:     Mainnet,
		},
		{
			name:    "bad checksum",
			address: "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyv",
			net:     Mainnet,
		},
		{
			name:    "network mismatch",
			address: "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu",
			net:     Testnet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OutputScriptFromAddress(tt.address, tt.net)
			assert.Equal(t, ErrInvalidAddress, err)
		})
	}
}
