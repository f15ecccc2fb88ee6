package config

import (
	"fmt"

	"github.com/bitsend-network/bitsend-daemon/pkg/wallet"
	"github.com/spf13/viper"
)

const (
	// NetworkKey selects the chain the daemon operates on, either mainnet or testnet
	NetworkKey = "NETWORK"
	// ExplorerURLKey is the endpoint of the esplora instance used to resolve utxos and broadcast transactions
	ExplorerURLKey = "EXPLORER_URL"
	// ExplorerRequestsPerSecondKey caps the frequency of the outbound explorer calls
	ExplorerRequestsPerSecondKey = "EXPLORER_REQUESTS_PER_SECOND"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// SatsPerByteKey is the fee rate applied to transactions when the caller does not provide one
	SatsPerByteKey = "SATS_PER_BYTE"
)

var vip *viper.Viper

// InitConfig loads the daemon configuration from the environment applying
// the default values below.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("BITSEND")
	vip.AutomaticEnv()

	vip.SetDefault(NetworkKey, wallet.Mainnet.String())
	vip.SetDefault(ExplorerURLKey, "https://blockstream.info/api")
	vip.SetDefault(ExplorerRequestsPerSecondKey, 5)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(SatsPerByteKey, wallet.DefaultSatsPerByte)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetNetwork returns the configured network as its wallet representation.
func GetNetwork() wallet.Network {
	net, _ := wallet.NetworkFromString(GetString(NetworkKey))
	return net
}

func validate() error {
	if _, err := wallet.NetworkFromString(GetString(NetworkKey)); err != nil {
		return err
	}

	if len(GetString(ExplorerURLKey)) <= 0 {
		return fmt.Errorf("missing explorer url")
	}

	if GetInt(ExplorerRequestsPerSecondKey) < 0 {
		return fmt.Errorf(
			"%s must be a positive number", ExplorerRequestsPerSecondKey,
		)
	}

	if GetInt(SatsPerByteKey) <= 0 {
		return fmt.Errorf("%s must be a positive number", SatsPerByteKey)
	}

	return nil
}
