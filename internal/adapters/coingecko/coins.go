package coingecko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/esssios/evm-tokenList/internal/domain/tokenlist"
)

// CoinsByPlatform fetches the coins listing filtered to one asset platform.
// include_platform must be requested explicitly, otherwise the API omits the
// contract address mapping entirely.
func (c *Client) CoinsByPlatform(ctx context.Context, platformSlug string) ([]tokenlist.Coin, error) {
	endpoint := fmt.Sprintf("coins/list?include_platform=true&platform=%s", url.QueryEscape(platformSlug))

	var coins []tokenlist.Coin
	if err := c.Get(ctx, endpoint, &coins); err != nil {
		return nil, fmt.Errorf("failed to fetch coins list: %w", err)
	}

	return coins, nil
}
