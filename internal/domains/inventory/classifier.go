package inventory

import (
	"strings"

	"github.com/samber/lo"

	"github.com/routeforge/netagent/internal/constants"
)

// Classifier decides the interface class from its OS name. It is pluggable
// so platform-specific naming schemes can be swapped without touching the
// orchestration logic.
type Classifier interface {
	Classify(linkName string) (interfaceType string)
}

type PrefixClassifier struct {
	ethernetPrefixes []string
	wirelessPrefixes []string
}

// NewPrefixClassifier builds the default name-prefix heuristic used on
// predictable-name and legacy-name Linux hosts.
func NewPrefixClassifier() *PrefixClassifier {
	return &PrefixClassifier{
		ethernetPrefixes: []string{"eth", "enp", "eno", "ens", "em"},
		wirelessPrefixes: []string{"wlan", "wlp", "wlx"},
	}
}

func (c *PrefixClassifier) Classify(linkName string) string {
	hasPrefix := func(prefix string) bool {
		return strings.HasPrefix(linkName, prefix)
	}

	if lo.SomeBy(c.wirelessPrefixes, hasPrefix) {
		return constants.InterfaceTypeWireless
	}

	if lo.SomeBy(c.ethernetPrefixes, hasPrefix) {
		return constants.InterfaceTypeEthernet
	}

	return constants.InterfaceTypeOther
}
