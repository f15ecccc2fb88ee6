package main

import (
	"github.com/urfave/cli/v2"
)

var txstatus = cli.Command{
	Name:      "txstatus",
	Usage:     "check whether a transaction has been confirmed",
	ArgsUsage: "<txid>",
	Action:    txStatusAction,
}

func txStatusAction(ctx *cli.Context) error {
	txid := ctx.Args().First()
	if len(txid) <= 0 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	svc, err := getWalletService()
	if err != nil {
		return err
	}

	status, err := svc.GetTransactionStatus(ctx.Context, txid)
	if err != nil {
		return err
	}
	printRespJSON(status)

	return nil
}
