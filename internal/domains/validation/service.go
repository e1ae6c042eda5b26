// Package validation holds the pure, read-only checks a proposed WAN/LAN
// pair must pass before any internet-sharing mutation proceeds. Its verdict
// is computed against a fresh inventory snapshot and becomes stale if the
// inventory changes between validation and mutation.
package validation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/objects/dto"
)

type (
	IInventoryService interface {
		ListPhysicalInterfaces() (interfaces bo.PhysicalInterfaces, degraded bool)
	}
)

type Service struct {
	inventoryService IInventoryService
}

func NewService(inventoryService IInventoryService) *Service {
	return &Service{
		inventoryService: inventoryService,
	}
}

// ValidatePair checks the proposed pair against the current inventory and
// the role constraints: the WAN side must be wireless-class and the LAN
// side ethernet-class, with candidate lists derived from live inventory. A
// link being down is a warning, not an error, since pre-configuration
// before a cable or association is legitimate.
func (s *Service) ValidatePair(wanName, lanName string) (result dto.ValidationResult) {
	interfaces, degraded := s.inventoryService.ListPhysicalInterfaces()
	if degraded {
		result.Warnings = append(result.Warnings, "interface inventory is degraded, verdict is based on fallback data")
	}

	if wanName == lanName {
		result.Errors = append(result.Errors, fmt.Sprintf("WAN and LAN interface must differ, got %q for both", wanName))
	}

	byName := lo.SliceToMap(interfaces, func(physicalInterface bo.PhysicalInterface) (string, bo.PhysicalInterface) {
		return physicalInterface.Name, physicalInterface
	})

	wanInterface, wanFound := byName[wanName]
	if !wanFound {
		result.Errors = append(result.Errors, fmt.Sprintf("WAN interface %q not found in current inventory", wanName))
	}

	lanInterface, lanFound := byName[lanName]
	if !lanFound {
		result.Errors = append(result.Errors, fmt.Sprintf("LAN interface %q not found in current inventory", lanName))
	}

	if wanFound && wanInterface.Type != constants.InterfaceTypeWireless {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"WAN interface %q must be wireless-class, candidates: %s",
			wanName, candidateNames(interfaces, constants.InterfaceTypeWireless),
		))
	}

	if lanFound && lanInterface.Type != constants.InterfaceTypeEthernet {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"LAN interface %q must be ethernet-class, candidates: %s",
			lanName, candidateNames(interfaces, constants.InterfaceTypeEthernet),
		))
	}

	if wanFound && !wanInterface.IsUp() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("WAN interface %q link is down", wanName))
	}

	if lanFound && !lanInterface.IsUp() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("LAN interface %q link is down", lanName))
	}

	result.Valid = len(result.Errors) == 0

	return result
}

func candidateNames(interfaces bo.PhysicalInterfaces, interfaceType string) string {
	names := lo.FilterMap(interfaces, func(physicalInterface bo.PhysicalInterface, _ int) (string, bool) {
		return physicalInterface.Name, physicalInterface.Type == interfaceType
	})

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ", ")
}
