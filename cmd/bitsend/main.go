package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/bitsend-network/bitsend-daemon/internal/config"
	"github.com/bitsend-network/bitsend-daemon/internal/core/application"
	"github.com/bitsend-network/bitsend-daemon/pkg/explorer/esplora"
)

var version = "dev"

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "bitsend CLI"
	app.Usage = "Command line interface for building and broadcasting bitcoin transactions"
	app.Commands = append(
		app.Commands,
		&genseed,
		&initwallet,
		&importwallet,
		&address,
		&balance,
		&send,
		&broadcast,
		&txstatus,
		&decodeaddress,
	)

	if err := config.InitConfig(); err != nil {
		fatal(err)
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// getWalletService wires the esplora explorer configured through the
// environment into a fresh wallet service. It reaches the explorer for a
// health check, commands that work offline should not call it.
func getWalletService() (application.WalletService, error) {
	explorerSvc, err := esplora.NewService(esplora.ServiceOpts{
		APIURL:            config.GetString(config.ExplorerURLKey),
		RequestsPerSecond: config.GetInt(config.ExplorerRequestsPerSecondKey),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to explorer: %w", err)
	}

	return application.NewWalletService(
		explorerSvc,
		config.GetNetwork(),
		uint64(config.GetInt(config.SatsPerByteKey)),
	), nil
}

func printRespJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonStr))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[bitsend] %v\n", err)
	}
	os.Exit(1)
}
