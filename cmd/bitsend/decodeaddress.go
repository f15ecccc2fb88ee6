package main

import (
	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/internal/config"
	"github.com/bitsend-network/bitsend-daemon/pkg/bufferutil"
	"github.com/bitsend-network/bitsend-daemon/pkg/wallet"
)

var decodeaddress = cli.Command{
	Name:      "decodeaddress",
	Usage:     "decode an address into the output script it locks to",
	ArgsUsage: "<address>",
	Action:    decodeAddressAction,
}

func decodeAddressAction(ctx *cli.Context) error {
	addr := ctx.Args().First()
	if len(addr) <= 0 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	net := config.GetNetwork()
	script, err := wallet.OutputScriptFromAddress(addr, net)
	if err != nil {
		return err
	}

	printRespJSON(map[string]string{
		"address": addr,
		"network": net.String(),
		"script":  bufferutil.ScriptToHex(script),
	})

	return nil
}
