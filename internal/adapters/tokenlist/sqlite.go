package tokenlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	domainlist "github.com/esssios/evm-tokenList/internal/domain/tokenlist"
)

// Store persists generation runs and per-network token rows in sqlite so
// the HTTP server can serve lists without re-fetching upstream data.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite has a single writer, and an in-memory database exists per
	// connection; one pooled connection avoids both problems.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		network_key TEXT NOT NULL,
		token_count INTEGER NOT NULL,
		generated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tokens (
		network_key TEXT NOT NULL,
		position INTEGER NOT NULL,
		chain_id INTEGER NOT NULL,
		address TEXT NOT NULL,
		name TEXT NOT NULL,
		symbol TEXT NOT NULL,
		decimals INTEGER NOT NULL,
		logo_uri TEXT NOT NULL,
		PRIMARY KEY (network_key, position)
	);

	CREATE INDEX IF NOT EXISTS idx_tokens_address ON tokens(network_key, address);
	CREATE INDEX IF NOT EXISTS idx_runs_network ON runs(network_key, generated_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveList replaces the stored tokens for a network and records a run.
func (s *Store) SaveList(ctx context.Context, networkKey string, list *domainlist.List) (*domainlist.Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens WHERE network_key = ?`, networkKey); err != nil {
		return nil, fmt.Errorf("failed to clear tokens: %w", err)
	}

	insert := `
		INSERT INTO tokens (network_key, position, chain_id, address, name, symbol, decimals, logo_uri)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, t := range list.Tokens {
		if _, err := tx.ExecContext(ctx, insert, networkKey, i, t.ChainID, t.Address, t.Name, t.Symbol, t.Decimals, t.LogoURI); err != nil {
			return nil, fmt.Errorf("failed to insert token %s: %w", t.Address, err)
		}
	}

	run := &domainlist.Run{
		ID:          uuid.New().String(),
		NetworkKey:  networkKey,
		TokenCount:  len(list.Tokens),
		GeneratedAt: list.Timestamp,
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, network_key, token_count, generated_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.NetworkKey, run.TokenCount, run.GeneratedAt.Format(time.RFC3339Nano),
	); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return run, nil
}

// GetTokens returns the stored tokens for a network in generation order.
func (s *Store) GetTokens(ctx context.Context, networkKey string) ([]domainlist.Token, error) {
	query := `
		SELECT chain_id, address, name, symbol, decimals, logo_uri
		FROM tokens
		WHERE network_key = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, networkKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]domainlist.Token, 0)
	for rows.Next() {
		var t domainlist.Token
		if err := rows.Scan(&t.ChainID, &t.Address, &t.Name, &t.Symbol, &t.Decimals, &t.LogoURI); err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tokens: %w", err)
	}

	return tokens, nil
}

// GetTokenByAddress looks a token up case-insensitively by contract address.
func (s *Store) GetTokenByAddress(ctx context.Context, networkKey, address string) (*domainlist.Token, error) {
	query := `
		SELECT chain_id, address, name, symbol, decimals, logo_uri
		FROM tokens
		WHERE network_key = ? AND lower(address) = lower(?)
	`

	var t domainlist.Token
	err := s.db.QueryRowContext(ctx, query, networkKey, address).Scan(
		&t.ChainID,
		&t.Address,
		&t.Name,
		&t.Symbol,
		&t.Decimals,
		&t.LogoURI,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s on %s", domainlist.ErrTokenNotFound, address, networkKey)
		}
		return nil, fmt.Errorf("failed to get token by address: %w", err)
	}

	return &t, nil
}

// LatestRun returns the most recent run for a network.
func (s *Store) LatestRun(ctx context.Context, networkKey string) (*domainlist.Run, error) {
	query := `
		SELECT id, network_key, token_count, generated_at
		FROM runs
		WHERE network_key = ?
		ORDER BY generated_at DESC
		LIMIT 1
	`

	run, err := s.scanRun(s.db.QueryRowContext(ctx, query, networkKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domainlist.ErrListNotFound, networkKey)
		}
		return nil, err
	}
	return run, nil
}

// Runs returns runs for a network, most recent first, up to limit.
func (s *Store) Runs(ctx context.Context, networkKey string, limit int) ([]*domainlist.Run, error) {
	query := `
		SELECT id, network_key, token_count, generated_at
		FROM runs
		WHERE network_key = ?
		ORDER BY generated_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, networkKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*domainlist.Run, 0)
	for rows.Next() {
		run, err := s.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *Store) scanRun(row rowScanner) (*domainlist.Run, error) {
	var run domainlist.Run
	var generatedAtStr string

	if err := row.Scan(&run.ID, &run.NetworkKey, &run.TokenCount, &generatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, generatedAtStr)
	if err != nil {
		// Try the sqlite datetime format if RFC3339 fails
		generatedAt, err = time.Parse("2006-01-02 15:04:05", generatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse generated_at: %w", err)
		}
	}
	run.GeneratedAt = generatedAt

	return &run, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
