package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// reference vector from the BIP84 derivation scheme
var (
	testMnemonic = strings.Split(
		"abandon abandon abandon abandon abandon abandon abandon abandon "+
			"abandon abandon abandon about",
		" ",
	)
	testAddress   = "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"
	testWIF       = "KyZpNDKnfs94vbrwhJneDi77V6jF64PWPF8x5cdJb8ifgg2DUc9d"
	testPubkeyHex = "0330d54fd0dd420a6e5f8d3624f5f3482cae350f79d5f0753bf5beef9c2d91af3c"
)

func newTestWallet() (*Wallet, error) {
	return NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Network:  Mainnet,
		Mnemonic: testMnemonic,
	})
}

func TestNewWallet(t *testing.T) {
	wallet, err := NewWallet(NewWalletOpts{
		Network:     Mainnet,
		EntropySize: 128,
	})
	if err != nil {
		t.Fatal(err)
	}

	mnemonic, err := wallet.Mnemonic()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, isMnemonicValid(mnemonic))
	assert.Len(t, mnemonic, 12)

	addr, err := wallet.DeriveAddress(DeriveAddressOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, strings.HasPrefix(addr, "bc1q"))
}

func TestFailingNewWallet(t *testing.T) {
	tests := []int{-1, 0, 127, 257, 130}
	for _, tt := range tests {
		_, err := NewWallet(NewWalletOpts{Network: Mainnet, EntropySize: tt})
		assert.Equal(t, ErrInvalidEntropySize, err)
	}
}

func TestNewWalletFromMnemonic(t *testing.T) {
	wallet, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}

	addr, err := wallet.DeriveAddress(DeriveAddressOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, testAddress, addr)

	pubkey, err := wallet.PublicKeyHex(DeriveSigningKeyPairOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, testPubkeyHex, pubkey)

	wif, err := wallet.WIF(DeriveSigningKeyPairOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, testWIF, wif)
}

func TestDerivationIsDeterministic(t *testing.T) {
	first, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}
	second, err := newTestWallet()
	if err != nil {
		t.Fatal(err)
	}

	firstAddr, err := first.DeriveAddress(DeriveAddressOpts{})
	if err != nil {
		t.Fatal(err)
	}
	secondAddr, err := second.DeriveAddress(DeriveAddressOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, firstAddr, secondAddr)

	firstWIF, err := first.WIF(DeriveSigningKeyPairOpts{})
	if err != nil {
		t.Fatal(err)
	}
	secondWIF, err := second.WIF(DeriveSigningKeyPairOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, firstWIF, secondWIF)
}

func TestPassphraseChangesDerivation(t *testing.T) {
	wallet, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Network:    Mainnet,
		Mnemonic:   testMnemonic,
		Passphrase: "TREZOR",
	})
	if err != nil {
		t.Fatal(err)
	}

	addr, err := wallet.DeriveAddress(DeriveAddressOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, testAddress, addr)
}

func TestFailingNewWalletFromMnemonic(t *testing.T) {
	tests := []struct {
		name string
		opts NewWalletFromMnemonicOpts
		err  error
	}{
		{
			name: "null mnemonic",
			opts: NewWalletFromMnemonicOpts{Network: Mainnet},
			err:  ErrNullMnemonic,
		},
		{
			name: "bad checksum",
			opts: NewWalletFromMnemonicOpts{
				Network: Mainnet,
				Mnemonic: strings.Split(
					"abandon abandon abandon abandon abandon abandon abandon "+
						"abandon abandon abandon abandon abandon",
					" ",
				),
			},
			err: ErrInvalidMnemonic,
		},
		{
			name: "word not in list",
			opts: NewWalletFromMnemonicOpts{
				Network:  Mainnet,
				Mnemonic: []string{"definitely", "not", "a", "bip39", "phrase"},
			},
			err: ErrInvalidMnemonic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWalletFromMnemonic(tt.opts)
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestNewWalletFromWIF(t *testing.T) {
	wallet, err := NewWalletFromWIF(NewWalletFromWIFOpts{
		Network: Mainnet,
		WIF:     testWIF,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, wallet.IsImported())

	addr, err := wallet.DeriveAddress(DeriveAddressOpts{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, testAddress, addr)

	// no recovery phrase for imported wallets
	_, err = wallet.Mnemonic()
	assert.Equal(t, ErrNullMnemonic, err)
}

func TestFailingNewWalletFromWIF(t *testing.T) {
	tests := []struct {
		name string
		opts NewWalletFromWIFOpts
	}{
		{
			name: "null wif",
			opts: NewWalletFromWIFOpts{Network: Mainnet},
		},
		{
			name: "malformed wif",
			opts: NewWalletFromWIFOpts{Network: Mainnet, WIF: "notawif"},
		},
		{
			name: "network mismatch",
			opts: NewWalletFromWIFOpts{Network: Testnet, WIF: testWIF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWalletFromWIF(tt.opts)
			assert.Equal(t, ErrInvalidPrivateKey, err)
		})
	}
}

func TestNetworkFromString(t *testing.T) {
	tests := []struct {
		str string
		net Network
		err error
	}{
		{"mainnet", Mainnet, nil},
		{"testnet", Testnet, nil},
		{"Testnet3", Testnet, nil},
		{"", 0, ErrNullNetwork},
		{"signet", 0, ErrInvalidNetwork},
	}
	for _, tt := range tests {
		net, err := NetworkFromString(tt.str)
		if tt.err != nil {
			assert.Equal(t, tt.err, err)
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, tt.net, net)
	}
}
