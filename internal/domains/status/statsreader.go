package status

import (
	"fmt"

	"github.com/vishvananda/netlink"

	"github.com/routeforge/netagent/internal/objects/bo"
)

// NetlinkStatsReader reads live interface counters over rtnetlink.
type NetlinkStatsReader struct{}

func NewNetlinkStatsReader() *NetlinkStatsReader {
	return &NetlinkStatsReader{}
}

func (r *NetlinkStatsReader) Stats(name string) (stats bo.InterfaceStatistics, err error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return stats, fmt.Errorf("Stats: %q: %w", name, err)
	}

	stats.Name = name

	linkStats := link.Attrs().Statistics
	if linkStats == nil {
		return stats, nil
	}

	stats.RxBytes = linkStats.RxBytes
	stats.TxBytes = linkStats.TxBytes
	stats.RxPackets = linkStats.RxPackets
	stats.TxPackets = linkStats.TxPackets
	stats.RxErrors = linkStats.RxErrors
	stats.TxErrors = linkStats.TxErrors
	stats.RxDropped = linkStats.RxDropped
	stats.TxDropped = linkStats.TxDropped

	return stats, nil
}
