package inventory

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
)

type (
	ILinkLister interface {
		ListLinks() (links []Link, err error)
	}
)

// virtual and container link name prefixes excluded from the inventory
var defaultDenylist = []string{
	"lo", "docker", "veth", "br-", "virbr", "tun", "tap", "wg", "vnet", "dummy", "ifb",
}

type Service struct {
	linkLister ILinkLister
	classifier Classifier
	denylist   []string
}

func NewService(linkLister ILinkLister, classifier Classifier) *Service {
	return &Service{
		linkLister: linkLister,
		classifier: classifier,
		denylist:   defaultDenylist,
	}
}

// ListPhysicalInterfaces enumerates host links and normalizes them into the
// canonical model. On enumeration failure it returns a fixed fallback pair
// and degraded=true so dependent flows stay usable; degraded output must not
// be treated as ground truth.
func (s *Service) ListPhysicalInterfaces() (interfaces bo.PhysicalInterfaces, degraded bool) {
	links, err := s.linkLister.ListLinks()
	if err != nil {
		log.Error().
			Err(err).
			Msg("ListPhysicalInterfaces: link enumeration failed, serving fallback pair")

		return s.fallbackPair(), true
	}

	interfaces = make(bo.PhysicalInterfaces, 0, len(links))
	for _, link := range links {
		if s.denied(link.Name) {
			continue
		}

		interfaceType := s.classifier.Classify(link.Name)

		linkState := constants.LinkStateDown
		if link.Up {
			linkState = constants.LinkStateUp
		}

		interfaces = append(interfaces, bo.PhysicalInterface{
			Name:        link.Name,
			DisplayName: displayName(link.Name, interfaceType),
			Type:        interfaceType,
			LinkState:   linkState,
			MACAddress:  link.MAC,
		})
	}

	return interfaces, false
}

// Resolve returns the current inventory entry for name.
func (s *Service) Resolve(name string) (physicalInterface bo.PhysicalInterface, err error) {
	interfaces, _ := s.ListPhysicalInterfaces()
	for _, candidate := range interfaces {
		if candidate.Name == name {
			return candidate, nil
		}
	}

	return physicalInterface, fmt.Errorf("Resolve: %q: %w", name, errs.ErrInterfaceNotFound)
}

func (s *Service) denied(linkName string) bool {
	for _, prefix := range s.denylist {
		if strings.HasPrefix(linkName, prefix) {
			return true
		}
	}

	return false
}

func (s *Service) fallbackPair() bo.PhysicalInterfaces {
	return bo.PhysicalInterfaces{
		{
			Name:        "eth0",
			DisplayName: displayName("eth0", constants.InterfaceTypeEthernet),
			Type:        constants.InterfaceTypeEthernet,
			LinkState:   constants.LinkStateDown,
		},
		{
			Name:        "wlan0",
			DisplayName: displayName("wlan0", constants.InterfaceTypeWireless),
			Type:        constants.InterfaceTypeWireless,
			LinkState:   constants.LinkStateDown,
		},
	}
}

func displayName(linkName, interfaceType string) string {
	switch interfaceType {
	case constants.InterfaceTypeEthernet:
		return fmt.Sprintf("Ethernet (%s)", linkName)
	case constants.InterfaceTypeWireless:
		return fmt.Sprintf("Wireless (%s)", linkName)
	default:
		return fmt.Sprintf("Interface (%s)", linkName)
	}
}
