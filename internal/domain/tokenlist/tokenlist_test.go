package tokenlist

import (
	"testing"
	"time"

	"github.com/esssios/evm-tokenList/internal/domain/network"
)

func testNetwork(t *testing.T) network.Config {
	t.Helper()
	cfg, err := network.Resolve("ethereum")
	if err != nil {
		t.Fatalf("failed to resolve test network: %v", err)
	}
	return cfg
}

func TestNewList(t *testing.T) {
	net := testNetwork(t)
	list := NewList(net)

	if list.Name != "Ethereum Token List" {
		t.Errorf("Name = %q, want %q", list.Name, "Ethereum Token List")
	}
	if list.LogoURI != "" {
		t.Errorf("LogoURI = %q, want empty placeholder", list.LogoURI)
	}
	if len(list.Keywords) != 2 || list.Keywords[0] != "ethereum" || list.Keywords[1] != "tokenlist" {
		t.Errorf("Keywords = %v, want [ethereum tokenlist]", list.Keywords)
	}
	if list.Version != CurrentVersion {
		t.Errorf("Version = %+v, want %+v", list.Version, CurrentVersion)
	}
	if list.Version.Major != 1 || list.Version.Minor != 0 || list.Version.Patch != 0 {
		t.Errorf("Version = %+v, want 1.0.0", list.Version)
	}
	if list.Tokens == nil || len(list.Tokens) != 0 {
		t.Errorf("Tokens = %v, want empty non-nil slice", list.Tokens)
	}
	if list.Timestamp.IsZero() {
		t.Error("Timestamp not set at construction")
	}
}

func TestList_Touch(t *testing.T) {
	net := testNetwork(t)
	list := NewList(net)

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	list.Timestamp = stale

	list.Touch()

	if !list.Timestamp.After(stale) {
		t.Errorf("Touch() did not refresh timestamp: %v", list.Timestamp)
	}
	if list.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp location = %v, want UTC", list.Timestamp.Location())
	}
}
