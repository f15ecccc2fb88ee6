package main

import (
	"strings"

	"github.com/urfave/cli/v2"
)

var initwallet = cli.Command{
	Name:  "init",
	Usage: "initialize the internal wallet from a fresh or existing seed",
	Flags: []cli.Flag{
		seedFlag,
		passphraseFlag,
		&cli.IntFlag{
			Name:  "entropy",
			Value: 128,
			Usage: "entropy size in bits when generating a new seed",
		},
	},
	Action: initWalletAction,
}

func initWalletAction(ctx *cli.Context) error {
	svc, err := getWalletService()
	if err != nil {
		return err
	}

	seed := ctx.String("seed")

	if len(seed) > 0 {
		info, err := svc.RestoreWallet(
			ctx.Context, strings.Split(seed, " "), ctx.String("passphrase"),
		)
		if err != nil {
			return err
		}
		printRespJSON(info)
		return nil
	}

	info, err := svc.CreateWallet(ctx.Context, ctx.Int("entropy"))
	if err != nil {
		return err
	}
	printRespJSON(info)

	return nil
}
