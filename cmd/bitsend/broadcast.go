package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var broadcast = cli.Command{
	Name:      "broadcast",
	Usage:     "push a signed transaction to the network",
	ArgsUsage: "<txhex>",
	Action:    broadcastAction,
}

func broadcastAction(ctx *cli.Context) error {
	txhex := ctx.Args().First()
	if len(txhex) <= 0 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	svc, err := getWalletService()
	if err != nil {
		return err
	}

	txid, err := svc.Broadcast(ctx.Context, txhex)
	if err != nil {
		return err
	}

	fmt.Println(txid)

	return nil
}
