package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/pkg/wallet"
)

var genseed = cli.Command{
	Name:  "genseed",
	Usage: "generate a mnemonic seed",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "entropy",
			Value: 128,
			Usage: "entropy size in bits, between 128 and 256 in steps of 32",
		},
	},
	Action: genSeedAction,
}

func genSeedAction(ctx *cli.Context) error {
	mnemonic, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{
		EntropySize: ctx.Int("entropy"),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(strings.Join(mnemonic, " "))

	return nil
}
