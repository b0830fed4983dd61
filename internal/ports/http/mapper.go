package http

import (
	"github.com/esssios/evm-tokenList/internal/domain/network"
	"github.com/esssios/evm-tokenList/internal/domain/tokenlist"
)

func ToHTTPNetwork(cfg network.Config) Network {
	return Network{
		Key:          cfg.Key,
		ChainID:      cfg.ChainID,
		PlatformSlug: cfg.PlatformSlug,
		DisplayName:  cfg.DisplayName,
		Decimals:     cfg.Decimals,
	}
}

func ToHTTPNetworks(configs []network.Config) []Network {
	result := make([]Network, len(configs))
	for i, cfg := range configs {
		result[i] = ToHTTPNetwork(cfg)
	}
	return result
}

func ToHTTPRun(r *tokenlist.Run) *Run {
	if r == nil {
		return nil
	}
	return &Run{
		ID:          r.ID,
		NetworkKey:  r.NetworkKey,
		TokenCount:  r.TokenCount,
		GeneratedAt: r.GeneratedAt,
	}
}

func ToHTTPRuns(runs []*tokenlist.Run) []*Run {
	result := make([]*Run, len(runs))
	for i, r := range runs {
		result[i] = ToHTTPRun(r)
	}
	return result
}
