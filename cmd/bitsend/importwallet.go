package main

import (
	"github.com/urfave/cli/v2"
)

var importwallet = cli.Command{
	Name:  "import",
	Usage: "initialize the internal wallet from a WIF encoded private key",
	Flags: []cli.Flag{
		wifFlag,
	},
	Action: importWalletAction,
}

func importWalletAction(ctx *cli.Context) error {
	wif := ctx.String("wif")
	if len(wif) <= 0 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	svc, err := getWalletService()
	if err != nil {
		return err
	}

	info, err := svc.ImportWallet(ctx.Context, wif)
	if err != nil {
		return err
	}
	printRespJSON(info)

	return nil
}
