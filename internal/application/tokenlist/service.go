package tokenlist

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/esssios/evm-tokenList/internal/adapters/logger"
	"github.com/esssios/evm-tokenList/internal/domain/network"
	domainlist "github.com/esssios/evm-tokenList/internal/domain/tokenlist"
)

// CoinSource provides the upstream coin records for one platform slug.
type CoinSource interface {
	CoinsByPlatform(ctx context.Context, platformSlug string) ([]domainlist.Coin, error)
}

// Service runs the fetch-transform-assemble pipeline for one network.
type Service struct {
	source CoinSource
	logger *logger.Logger
}

func NewService(source CoinSource, logger *logger.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Generate fetches the upstream listing for the network's platform and
// assembles the token-list envelope. A fetch failure is logged and degrades
// to an empty token set so a valid (if empty) list still gets written.
func (s *Service) Generate(ctx context.Context, net network.Config) *domainlist.List {
	coins, err := s.source.CoinsByPlatform(ctx, net.PlatformSlug)
	if err != nil {
		s.logger.Error("Fetch failed, continuing with empty token set",
			zap.String("network", net.Key),
			zap.String("platform", net.PlatformSlug),
			zap.Error(err),
		)
		coins = nil
	}

	list := domainlist.NewList(net)
	list.Tokens = Transform(coins, net)

	s.logger.Info("Assembled token list",
		zap.String("network", net.Key),
		zap.Int("fetched", len(coins)),
		zap.Int("tokens", len(list.Tokens)),
	)

	return list
}

// Transform maps upstream coin records to token entries for one network.
// Records without a usable contract address under the network's platform
// slug are dropped; survivors keep their upstream order. Addresses are
// EIP-55 checksummed, symbols upper-cased, decimals taken uniformly from
// the network configuration.
func Transform(coins []domainlist.Coin, net network.Config) []domainlist.Token {
	tokens := make([]domainlist.Token, 0, len(coins))

	for _, coin := range coins {
		addr, ok := coin.Platforms[net.PlatformSlug]
		if !ok || addr == "" {
			continue
		}
		// Upstream platform data occasionally carries junk values.
		if !common.IsHexAddress(addr) {
			continue
		}

		tokens = append(tokens, domainlist.Token{
			ChainID:  net.ChainID,
			Address:  common.HexToAddress(addr).Hex(),
			Name:     coin.Name,
			Symbol:   strings.ToUpper(coin.Symbol),
			Decimals: net.Decimals,
			LogoURI:  "",
		})
	}

	return tokens
}
