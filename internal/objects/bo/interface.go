package bo

import (
	"time"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/objects/dto"
)

// PhysicalInterface is the canonical model of one host link. It is ephemeral
// ground truth, recomputed on every inventory query and never persisted.
type PhysicalInterface struct {
	Name        string
	DisplayName string
	Type        string
	LinkState   string
	MACAddress  string
}

type PhysicalInterfaces []PhysicalInterface

func (p PhysicalInterface) IsUp() bool {
	return p.LinkState == constants.LinkStateUp
}

func (p PhysicalInterface) ToDto() dto.PhysicalInterface {
	return dto.PhysicalInterface{
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Type:        p.Type,
		LinkState:   p.LinkState,
		MACAddress:  p.MACAddress,
	}
}

func (p PhysicalInterfaces) ToDto() dto.PhysicalInterfaces {
	interfaces := make(dto.PhysicalInterfaces, 0, len(p))
	for _, physicalInterface := range p {
		interfaces = append(interfaces, physicalInterface.ToDto())
	}

	return interfaces
}

// InterfaceConfig is the desired-state record for one physical interface,
// keyed by the interface name. At most one record exists per name.
type InterfaceConfig struct {
	Name   string `json:"name" validate:"required,min=2"`
	IPMode string `json:"ipMode" validate:"required,oneof=static dhcp"`

	Address string `json:"address,omitempty" validate:"omitempty,ip4_addr"`
	Netmask string `json:"netmask,omitempty" validate:"omitempty,ip4_addr"`
	Gateway string `json:"gateway,omitempty" validate:"omitempty,ip4_addr"`
	DNS1    string `json:"dns1,omitempty" validate:"omitempty,ip4_addr"`
	DNS2    string `json:"dns2,omitempty" validate:"omitempty,ip4_addr"`
	MTU     int    `json:"mtu,omitempty" validate:"omitempty,min=576,max=9216"`
	VLANID  int    `json:"vlanId,omitempty" validate:"omitempty,min=1,max=4094"`

	ICSEnabled         bool   `json:"icsEnabled"`
	ICSSourceInterface string `json:"icsSourceInterface,omitempty"`
	DHCPRangeStart     string `json:"dhcpRangeStart,omitempty" validate:"omitempty,ip4_addr"`
	DHCPRangeEnd       string `json:"dhcpRangeEnd,omitempty" validate:"omitempty,ip4_addr"`

	AdminEnabled bool      `json:"adminEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c InterfaceConfig) IsStatic() bool {
	return c.IPMode == constants.IPModeStatic
}

// InterfaceStatistics carries the live interface counters reported by the
// status domain. Observational only, never part of a desired-state record.
type InterfaceStatistics struct {
	Name      string
	RxBytes   uint64
	TxBytes   uint64
	RxPackets uint64
	TxPackets uint64
	RxErrors  uint64
	TxErrors  uint64
	RxDropped uint64
	TxDropped uint64
}

func (s InterfaceStatistics) ToDto() dto.InterfaceStatistics {
	return dto.InterfaceStatistics{
		Name:      s.Name,
		RxBytes:   s.RxBytes,
		TxBytes:   s.TxBytes,
		RxPackets: s.RxPackets,
		TxPackets: s.TxPackets,
		RxErrors:  s.RxErrors,
		TxErrors:  s.TxErrors,
		RxDropped: s.RxDropped,
		TxDropped: s.TxDropped,
	}
}
