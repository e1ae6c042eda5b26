package bo

import (
	"time"
)

// NATConfig is the desired-state record of one internet-sharing setup.
// Records are append-only: every save creates a new record and "current"
// means the most recently created one. Old records are never mutated.
type NATConfig struct {
	Enabled           bool      `json:"enabled"`
	WANInterface      string    `json:"wanInterface" validate:"required,min=2"`
	LANInterface      string    `json:"lanInterface" validate:"required,min=2"`
	DHCPRangeStart    string    `json:"dhcpRangeStart" validate:"required,ip4_addr"`
	DHCPRangeEnd      string    `json:"dhcpRangeEnd" validate:"required,ip4_addr"`
	GatewayIP         string    `json:"gatewayIp"`
	MasqueradeEnabled bool      `json:"masqueradeEnabled"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy,omitempty"`
}

// NATStatus is the reconciliation of the latest NATConfig record against
// the live forwarding flag and masquerade rule presence.
type NATStatus string

const (
	NATStatusNotConfigured         NATStatus = "not_configured"
	NATStatusDisabled              NATStatus = "disabled"
	NATStatusConfiguredButInactive NATStatus = "configured_but_inactive"
	NATStatusActive                NATStatus = "active"
)

// DHCPLease is one entry parsed from the dnsmasq lease file.
type DHCPLease struct {
	Expiry   time.Time
	MAC      string
	IP       string
	Hostname string
}
