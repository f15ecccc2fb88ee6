package main

import (
	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/pkg/mathutil"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "fetch the balance of an address, or of the wallet's own address",
	Flags: []cli.Flag{
		seedFlag,
		passphraseFlag,
		wifFlag,
		&cli.StringFlag{
			Name:  "address",
			Usage: "the address to inspect instead of the wallet's own one",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	svc, err := getWalletService()
	if err != nil {
		return err
	}

	addr := ctx.String("address")
	if len(addr) <= 0 {
		if _, err := unlockWallet(ctx, svc); err != nil {
			return err
		}
	}

	info, err := svc.GetBalance(ctx.Context, addr)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"confirmed_balance":   info.ConfirmedBalance,
		"unconfirmed_balance": info.UnconfirmedBalance,
		"unspent_count":       info.UnspentCount,
		"confirmed_btc":       mathutil.SatsToBTC(info.ConfirmedBalance).String(),
	})

	return nil
}
