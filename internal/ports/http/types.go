package http

import "time"

// Network describes one supported network in API responses.
type Network struct {
	Key          string `json:"key"`
	ChainID      int    `json:"chain_id"`
	PlatformSlug string `json:"platform_slug"`
	DisplayName  string `json:"display_name"`
	Decimals     uint8  `json:"decimals"`
}

// Run describes one recorded list generation.
type Run struct {
	ID          string    `json:"id"`
	NetworkKey  string    `json:"network_key"`
	TokenCount  int       `json:"token_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
