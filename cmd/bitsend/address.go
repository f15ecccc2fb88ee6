package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/internal/config"
	"github.com/bitsend-network/bitsend-daemon/pkg/wallet"
)

var address = cli.Command{
	Name:  "address",
	Usage: "derive the receiving address of a seed without touching the network",
	Flags: []cli.Flag{
		seedFlag,
		passphraseFlag,
		wifFlag,
		&cli.StringFlag{
			Name:  "path",
			Usage: "derivation path overriding the default BIP84 one",
		},
	},
	Action: addressAction,
}

func addressAction(ctx *cli.Context) error {
	w, err := walletFromFlags(ctx)
	if err != nil {
		return err
	}

	addr, err := w.DeriveAddress(wallet.DeriveAddressOpts{
		DerivationPath: ctx.String("path"),
	})
	if err != nil {
		return err
	}
	pubkey, err := w.PublicKeyHex(wallet.DeriveSigningKeyPairOpts{
		DerivationPath: ctx.String("path"),
	})
	if err != nil {
		return err
	}

	printRespJSON(map[string]string{
		"address": addr,
		"pubkey":  pubkey,
	})

	return nil
}

func walletFromFlags(ctx *cli.Context) (*wallet.Wallet, error) {
	net := config.GetNetwork()

	if wif := ctx.String("wif"); len(wif) > 0 {
		return wallet.NewWalletFromWIF(wallet.NewWalletFromWIFOpts{
			Network: net,
			WIF:     wif,
		})
	}
	if seed := ctx.String("seed"); len(seed) > 0 {
		return wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
			Network:    net,
			Mnemonic:   strings.Split(seed, " "),
			Passphrase: ctx.String("passphrase"),
		})
	}
	return nil, &invalidUsageError{ctx, ctx.Command.Name}
}
