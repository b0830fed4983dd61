package coingecko

import (
	"context"

	"github.com/esssios/evm-tokenList/internal/domain/tokenlist"
)

// MockCoinSource serves a fixed coin set for tests and offline development.
// Err, when set, is returned on every call to simulate a transport failure.
type MockCoinSource struct {
	Coins []tokenlist.Coin
	Err   error

	Calls int
}

func (m *MockCoinSource) CoinsByPlatform(_ context.Context, platformSlug string) ([]tokenlist.Coin, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}

	// Mirror the server-side platform filter: only coins listed on the
	// requested platform come back.
	coins := make([]tokenlist.Coin, 0, len(m.Coins))
	for _, coin := range m.Coins {
		if _, ok := coin.Platforms[platformSlug]; ok {
			coins = append(coins, coin)
		}
	}
	return coins, nil
}
