package network

import (
	"errors"
	"fmt"
	"sort"
)

// Config describes one supported EVM network: the chain ID stamped on every
// generated token entry, the slug the upstream price API uses for the network,
// and the decimal precision applied uniformly to the network's tokens.
type Config struct {
	Key          string
	ChainID      int
	PlatformSlug string
	DisplayName  string
	Decimals     uint8
}

// DefaultKey is the network used when no key is given on the command line.
const DefaultKey = "ethereum"

var ErrUnknownNetwork = errors.New("unknown network")

// registry maps short network keys to their configuration. Slugs follow the
// upstream API's asset platform naming, which differs from the common short
// name for several chains.
var registry = map[string]Config{
	"ethereum":  {Key: "ethereum", ChainID: 1, PlatformSlug: "ethereum", DisplayName: "Ethereum", Decimals: 18},
	"bsc":       {Key: "bsc", ChainID: 56, PlatformSlug: "binance-smart-chain", DisplayName: "BNB Smart Chain", Decimals: 18},
	"polygon":   {Key: "polygon", ChainID: 137, PlatformSlug: "polygon-pos", DisplayName: "Polygon", Decimals: 18},
	"arbitrum":  {Key: "arbitrum", ChainID: 42161, PlatformSlug: "arbitrum-one", DisplayName: "Arbitrum One", Decimals: 18},
	"optimism":  {Key: "optimism", ChainID: 10, PlatformSlug: "optimistic-ethereum", DisplayName: "OP Mainnet", Decimals: 18},
	"avalanche": {Key: "avalanche", ChainID: 43114, PlatformSlug: "avalanche", DisplayName: "Avalanche C-Chain", Decimals: 18},
	"base":      {Key: "base", ChainID: 8453, PlatformSlug: "base", DisplayName: "Base", Decimals: 18},
	"fantom":    {Key: "fantom", ChainID: 250, PlatformSlug: "fantom", DisplayName: "Fantom Opera", Decimals: 18},
	"gnosis":    {Key: "gnosis", ChainID: 100, PlatformSlug: "xdai", DisplayName: "Gnosis", Decimals: 18},
}

// Resolve returns the configuration for a network key. Unknown keys get
// ErrUnknownNetwork with the offending key in the message.
func Resolve(key string) (Config, error) {
	cfg, ok := registry[key]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, key)
	}
	return cfg, nil
}

// Keys returns the supported network keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every supported network configuration, sorted by key.
func All() []Config {
	configs := make([]Config, 0, len(registry))
	for _, key := range Keys() {
		configs = append(configs, registry[key])
	}
	return configs
}
