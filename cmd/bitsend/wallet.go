package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/internal/core/application"
)

var (
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "the mnemonic seed of the wallet",
	}
	passphraseFlag = &cli.StringFlag{
		Name:  "passphrase",
		Usage: "the optional BIP39 passphrase protecting the seed",
	}
	wifFlag = &cli.StringFlag{
		Name:  "wif",
		Usage: "a WIF encoded private key to use instead of a seed",
	}
)

// unlockWallet initializes the service wallet from the --wif or --seed flag.
func unlockWallet(
	ctx *cli.Context, svc application.WalletService,
) (*application.WalletInfo, error) {
	if wif := ctx.String("wif"); len(wif) > 0 {
		return svc.ImportWallet(ctx.Context, wif)
	}
	if seed := ctx.String("seed"); len(seed) > 0 {
		return svc.RestoreWallet(
			ctx.Context, strings.Split(seed, " "), ctx.String("passphrase"),
		)
	}
	return nil, &invalidUsageError{ctx, ctx.Command.Name}
}
