package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/internal/core/application"
	"github.com/bitsend-network/bitsend-daemon/pkg/mathutil"
	"github.com/bitsend-network/bitsend-daemon/pkg/wallet"
)

var send = cli.Command{
	Name:  "send",
	Usage: "build and sign a transaction spending the given unspents",
	Flags: []cli.Flag{
		seedFlag,
		passphraseFlag,
		wifFlag,
		&cli.StringSliceFlag{
			Name:  "input",
			Usage: "an unspent to spend in txid:vout format, repeatable",
		},
		&cli.StringSliceFlag{
			Name:  "output",
			Usage: "a recipient in address:amount format where amount is " +
				"either an integer of sats or a decimal of BTC, repeatable",
		},
		&cli.Uint64Flag{
			Name:  "sats-per-byte",
			Usage: "fee rate overriding the configured one",
		},
		&cli.StringFlag{
			Name:  "change",
			Usage: "change address, defaults to the wallet's own address",
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "derivation path of the signing key",
		},
		&cli.BoolFlag{
			Name:  "push",
			Usage: "broadcast the signed transaction right away",
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	inputs, err := parseInputs(ctx.StringSlice("input"))
	if err != nil {
		return err
	}
	outputs, err := parseOutputs(ctx.StringSlice("output"))
	if err != nil {
		return err
	}
	if len(inputs) <= 0 || len(outputs) <= 0 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	svc, err := getWalletService()
	if err != nil {
		return err
	}
	if _, err := unlockWallet(ctx, svc); err != nil {
		return err
	}

	res, err := svc.Transfer(ctx.Context, application.TransferParams{
		Inputs:         inputs,
		Outputs:        outputs,
		SatsPerByte:    ctx.Uint64("sats-per-byte"),
		ChangeAddress:  ctx.String("change"),
		DerivationPath: ctx.String("path"),
	})
	if err != nil {
		return err
	}

	if ctx.Bool("push") {
		if _, err := svc.Broadcast(ctx.Context, res.TxHex); err != nil {
			return err
		}
	}

	printRespJSON(res)

	return nil
}

func parseInputs(raw []string) ([]wallet.InputRef, error) {
	inputs := make([]wallet.InputRef, 0, len(raw))
	for _, in := range raw {
		parts := strings.SplitN(in, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid input '%s', expected txid:vout", in)
		}
		vout, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid input '%s', expected txid:vout", in)
		}
		inputs = append(inputs, wallet.InputRef{
			TxID: parts[0],
			VOut: uint32(vout),
		})
	}
	return inputs, nil
}

func parseOutputs(raw []string) ([]application.TransferOutput, error) {
	outputs := make([]application.TransferOutput, 0, len(raw))
	for _, out := range raw {
		parts := strings.SplitN(out, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid output '%s', expected address:amount", out)
		}
		amount, err := parseAmount(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid output '%s', expected address:amount", out)
		}
		outputs = append(outputs, application.TransferOutput{
			Address: parts[0],
			Amount:  amount,
		})
	}
	return outputs, nil
}

// parseAmount reads an amount given either as an integer of satoshis or,
// when it carries a decimal point, as BTC.
func parseAmount(raw string) (uint64, error) {
	if !strings.Contains(raw, ".") {
		return strconv.ParseUint(raw, 10, 64)
	}
	btc, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	if btc.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return mathutil.BTCToSats(btc), nil
}
