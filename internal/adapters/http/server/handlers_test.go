package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/esssios/evm-tokenList/internal/adapters/logger"
	domainlist "github.com/esssios/evm-tokenList/internal/domain/tokenlist"
	httpports "github.com/esssios/evm-tokenList/internal/ports/http"
)

// mockListStore implements ListStore
type mockListStore struct {
	tokens map[string][]domainlist.Token
	runs   map[string][]*domainlist.Run

	getTokensCalls int
}

func newMockListStore() *mockListStore {
	return &mockListStore{
		tokens: make(map[string][]domainlist.Token),
		runs:   make(map[string][]*domainlist.Run),
	}
}

func (m *mockListStore) GetTokens(_ context.Context, networkKey string) ([]domainlist.Token, error) {
	m.getTokensCalls++
	return m.tokens[networkKey], nil
}

func (m *mockListStore) GetTokenByAddress(_ context.Context, networkKey, address string) (*domainlist.Token, error) {
	for _, t := range m.tokens[networkKey] {
		if strings.EqualFold(t.Address, address) {
			tok := t
			return &tok, nil
		}
	}
	return nil, domainlist.ErrTokenNotFound
}

func (m *mockListStore) LatestRun(_ context.Context, networkKey string) (*domainlist.Run, error) {
	runs := m.runs[networkKey]
	if len(runs) == 0 {
		return nil, domainlist.ErrListNotFound
	}
	return runs[0], nil
}

func (m *mockListStore) Runs(_ context.Context, networkKey string, limit int) ([]*domainlist.Run, error) {
	runs := m.runs[networkKey]
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func seedStore(store *mockListStore) *domainlist.Run {
	run := &domainlist.Run{
		ID:          "run-1",
		NetworkKey:  "ethereum",
		TokenCount:  1,
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	store.runs["ethereum"] = []*domainlist.Run{run}
	store.tokens["ethereum"] = []domainlist.Token{
		{ChainID: 1, Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Name: "USDC", Symbol: "USDC", Decimals: 18},
	}
	return run
}

func doRequest(t *testing.T, handler func(echo.Context) error, path string, names, values []string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestHealthCheck(t *testing.T) {
	h := NewHandlerAdapter(newMockListStore(), logger.NewNop())

	rec := doRequest(t, h.HealthCheck, "/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGetNetworks(t *testing.T) {
	h := NewHandlerAdapter(newMockListStore(), logger.NewNop())

	rec := doRequest(t, h.GetNetworks, "/api/v1/networks", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var networks []httpports.Network
	if err := json.Unmarshal(rec.Body.Bytes(), &networks); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(networks) == 0 {
		t.Fatal("no networks returned")
	}
	for _, n := range networks {
		if n.Key == "" || n.ChainID == 0 || n.PlatformSlug == "" {
			t.Errorf("incomplete network entry: %+v", n)
		}
	}
}

func TestGetTokenList(t *testing.T) {
	store := newMockListStore()
	run := seedStore(store)
	h := NewHandlerAdapter(store, logger.NewNop())

	rec := doRequest(t, h.GetTokenList, "/api/v1/tokenlists/ethereum", []string{"network"}, []string{"ethereum"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var list domainlist.List
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if list.Name != "Ethereum Token List" {
		t.Errorf("Name = %q, want Ethereum Token List", list.Name)
	}
	if len(list.Tokens) != 1 || list.Tokens[0].Symbol != "USDC" {
		t.Errorf("Tokens = %+v", list.Tokens)
	}
	if !list.Timestamp.Equal(run.GeneratedAt) {
		t.Errorf("Timestamp = %v, want run time %v", list.Timestamp, run.GeneratedAt)
	}

	t.Run("second request served from cache", func(t *testing.T) {
		before := store.getTokensCalls
		rec := doRequest(t, h.GetTokenList, "/api/v1/tokenlists/ethereum", []string{"network"}, []string{"ethereum"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if store.getTokensCalls != before {
			t.Errorf("GetTokens called %d extra times, want cache hit", store.getTokensCalls-before)
		}
	})

	t.Run("newer run invalidates cache", func(t *testing.T) {
		store.runs["ethereum"] = []*domainlist.Run{{
			ID:          "run-2",
			NetworkKey:  "ethereum",
			TokenCount:  1,
			GeneratedAt: run.GeneratedAt.Add(time.Hour),
		}}
		before := store.getTokensCalls
		rec := doRequest(t, h.GetTokenList, "/api/v1/tokenlists/ethereum", []string{"network"}, []string{"ethereum"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if store.getTokensCalls != before+1 {
			t.Errorf("GetTokens calls = %d, want %d (rebuild on new run)", store.getTokensCalls, before+1)
		}
	})
}

func TestGetTokenList_NotFound(t *testing.T) {
	h := NewHandlerAdapter(newMockListStore(), logger.NewNop())

	t.Run("unknown network", func(t *testing.T) {
		rec := doRequest(t, h.GetTokenList, "/api/v1/tokenlists/not-a-chain", []string{"network"}, []string{"not-a-chain"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
		var resp httpports.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse error response: %v", err)
		}
		if resp.Error != "Not Found" {
			t.Errorf("Error = %q, want Not Found", resp.Error)
		}
	})

	t.Run("no generated list", func(t *testing.T) {
		rec := doRequest(t, h.GetTokenList, "/api/v1/tokenlists/polygon", []string{"network"}, []string{"polygon"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestGetToken(t *testing.T) {
	store := newMockListStore()
	seedStore(store)
	h := NewHandlerAdapter(store, logger.NewNop())

	t.Run("found, case-insensitive", func(t *testing.T) {
		rec := doRequest(t, h.GetToken, "/api/v1/tokenlists/ethereum/tokens/x",
			[]string{"network", "address"},
			[]string{"ethereum", "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		var token domainlist.Token
		if err := json.Unmarshal(rec.Body.Bytes(), &token); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if token.Symbol != "USDC" {
			t.Errorf("Symbol = %q, want USDC", token.Symbol)
		}
	})

	t.Run("unknown address", func(t *testing.T) {
		rec := doRequest(t, h.GetToken, "/api/v1/tokenlists/ethereum/tokens/x",
			[]string{"network", "address"},
			[]string{"ethereum", "0x0000000000000000000000000000000000000001"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("unknown network", func(t *testing.T) {
		rec := doRequest(t, h.GetToken, "/api/v1/tokenlists/nope/tokens/x",
			[]string{"network", "address"},
			[]string{"nope", "0x0000000000000000000000000000000000000001"})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestGetRuns(t *testing.T) {
	store := newMockListStore()
	seedStore(store)
	h := NewHandlerAdapter(store, logger.NewNop())

	rec := doRequest(t, h.GetRuns, "/api/v1/tokenlists/ethereum/runs", []string{"network"}, []string{"ethereum"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var runs []*httpports.Run
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" {
		t.Errorf("runs = %+v, want the seeded run", runs)
	}

	t.Run("invalid limit", func(t *testing.T) {
		rec := doRequest(t, h.GetRuns, "/api/v1/tokenlists/ethereum/runs?limit=zero", []string{"network"}, []string{"ethereum"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
