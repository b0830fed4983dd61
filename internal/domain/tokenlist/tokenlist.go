package tokenlist

import (
	"errors"
	"time"

	"github.com/esssios/evm-tokenList/internal/domain/network"
)

var (
	ErrListNotFound  = errors.New("no generated list for network")
	ErrTokenNotFound = errors.New("token not found")
)

// Coin is one record of the upstream coins listing. Platforms maps the
// upstream platform slug to the coin's contract address on that chain;
// coins without a contract on the requested platform simply lack the key.
type Coin struct {
	ID        string            `json:"id"`
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name"`
	Platforms map[string]string `json:"platforms"`
}

// Token is one entry of a generated list.
type Token struct {
	ChainID  int    `json:"chainId"`
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	LogoURI  string `json:"logoURI"`
}

type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// List is the token-list envelope written to disk and served over HTTP.
type List struct {
	Name      string    `json:"name"`
	LogoURI   string    `json:"logoURI"`
	Keywords  []string  `json:"keywords"`
	Timestamp time.Time `json:"timestamp"`
	Version   Version   `json:"version"`
	Tokens    []Token   `json:"tokens"`
}

// Run records one completed list generation.
type Run struct {
	ID          string
	NetworkKey  string
	TokenCount  int
	GeneratedAt time.Time
}

// CurrentVersion is stamped on every generated list.
var CurrentVersion = Version{Major: 1, Minor: 0, Patch: 0}

// NewList builds the envelope skeleton for a network. The caller attaches
// the token sequence; the timestamp is refreshed again right before writing.
func NewList(net network.Config) *List {
	return &List{
		Name:      net.DisplayName + " Token List",
		LogoURI:   "",
		Keywords:  []string{net.Key, "tokenlist"},
		Timestamp: time.Now().UTC(),
		Version:   CurrentVersion,
		Tokens:    []Token{},
	}
}

// Touch refreshes the generation timestamp.
func (l *List) Touch() {
	l.Timestamp = time.Now().UTC()
}
