package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

// This is the global app config for the ledger.
type AppConfig struct {
	// How many leading 0s to form a valid hash. Only used for a fresh chain,
	// a loaded chain keeps its own difficulty.
	DIFFICULTY int
	// Where the chain document is persisted.
	CHAIN_PATH string
	// Bolt file backing the balance ledger.
	LEDGER_PATH string
	// Directory with one identity file per wallet.
	WALLET_DIR string
	// Sender recorded for wallet funding transactions.
	FAUCET_NAME string
	// Address the node serves RPC on.
	LISTEN_ADDR string
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		DIFFICULTY:  2,
		CHAIN_PATH:  "./data/blockchain.json",
		LEDGER_PATH: "./wallet_db",
		WALLET_DIR:  "./wallets",
		FAUCET_NAME: "Faucet",
		LISTEN_ADDR: "localhost:10000",
	}
}

// ParseAppConfig reads a yaml config on top of the defaults. A missing file
// yields the defaults.
func ParseAppConfig(path string) (AppConfig, error) {
	c := DefaultAppConfig()
	yamlFile, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(yamlFile, &c); err != nil {
		return c, err
	}
	if c.DIFFICULTY < 0 {
		return c, errors.New("difficulty must not be negative")
	}
	return c, nil
}
