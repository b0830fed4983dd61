package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/esssios/evm-tokenList/internal/adapters/cache"
	"github.com/esssios/evm-tokenList/internal/adapters/logger"
	"github.com/esssios/evm-tokenList/internal/domain/network"
	domainlist "github.com/esssios/evm-tokenList/internal/domain/tokenlist"
	httpports "github.com/esssios/evm-tokenList/internal/ports/http"
)

const defaultRunsLimit = 20

// ListStore is the persistence surface the handlers read from.
type ListStore interface {
	GetTokens(ctx context.Context, networkKey string) ([]domainlist.Token, error)
	GetTokenByAddress(ctx context.Context, networkKey, address string) (*domainlist.Token, error)
	LatestRun(ctx context.Context, networkKey string) (*domainlist.Run, error)
	Runs(ctx context.Context, networkKey string, limit int) ([]*domainlist.Run, error)
}

// cachedList ties an assembled envelope to the run it was built from, so a
// newer generation invalidates the cache entry.
type cachedList struct {
	RunID string
	List  *domainlist.List
}

// HandlerAdapter adapts the token-list store to HTTP handlers
type HandlerAdapter struct {
	store  ListStore
	cache  *cache.Cache[string, cachedList]
	logger *logger.Logger
}

// NewHandlerAdapter creates a new handler adapter
func NewHandlerAdapter(store ListStore, logger *logger.Logger) *HandlerAdapter {
	return &HandlerAdapter{
		store:  store,
		cache:  cache.New[string, cachedList](len(network.Keys())),
		logger: logger,
	}
}

func (h *HandlerAdapter) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetNetworks returns every supported network configuration.
func (h *HandlerAdapter) GetNetworks(c echo.Context) error {
	return c.JSON(http.StatusOK, httpports.ToHTTPNetworks(network.All()))
}

// GetTokenList serves the latest generated token-list envelope for a network.
func (h *HandlerAdapter) GetTokenList(c echo.Context) error {
	key := c.Param("network")

	net, err := network.Resolve(key)
	if err != nil {
		return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
			Error:   "Not Found",
			Message: err.Error(),
		})
	}

	ctx := c.Request().Context()

	run, err := h.store.LatestRun(ctx, net.Key)
	if err != nil {
		if errors.Is(err, domainlist.ErrListNotFound) {
			return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
				Error:   "Not Found",
				Message: err.Error(),
			})
		}
		h.logger.Error("Failed to load latest run", zap.String("network", net.Key), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	if cached, ok := h.cache.Get(ctx, net.Key); ok && cached.RunID == run.ID {
		return c.JSON(http.StatusOK, cached.List)
	}

	tokens, err := h.store.GetTokens(ctx, net.Key)
	if err != nil {
		h.logger.Error("Failed to load tokens", zap.String("network", net.Key), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	list := domainlist.NewList(net)
	list.Tokens = tokens
	list.Timestamp = run.GeneratedAt

	h.cache.Set(ctx, net.Key, cachedList{RunID: run.ID, List: list})

	return c.JSON(http.StatusOK, list)
}

// GetToken serves a single token from a network's latest list by address.
func (h *HandlerAdapter) GetToken(c echo.Context) error {
	key := c.Param("network")
	address := c.Param("address")

	net, err := network.Resolve(key)
	if err != nil {
		return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
			Error:   "Not Found",
			Message: err.Error(),
		})
	}

	token, err := h.store.GetTokenByAddress(c.Request().Context(), net.Key, address)
	if err != nil {
		if errors.Is(err, domainlist.ErrTokenNotFound) {
			return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
				Error:   "Not Found",
				Message: err.Error(),
			})
		}
		h.logger.Error("Failed to load token",
			zap.String("network", net.Key),
			zap.String("address", address),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, token)
}

// GetRuns lists recent generation runs for a network, most recent first.
func (h *HandlerAdapter) GetRuns(c echo.Context) error {
	key := c.Param("network")

	net, err := network.Resolve(key)
	if err != nil {
		return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
			Error:   "Not Found",
			Message: err.Error(),
		})
	}

	limit := defaultRunsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, httpports.ErrorResponse{
				Error:   "Bad Request",
				Message: "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	runs, err := h.store.Runs(c.Request().Context(), net.Key, limit)
	if err != nil {
		h.logger.Error("Failed to load runs", zap.String("network", net.Key), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, httpports.ToHTTPRuns(runs))
}
