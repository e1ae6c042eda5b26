package inventory

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// Link is the raw view of one host link before normalization.
type Link struct {
	Name string
	MAC  string
	Up   bool
}

// NetlinkLister enumerates host links over rtnetlink.
type NetlinkLister struct{}

func NewNetlinkLister() *NetlinkLister {
	return &NetlinkLister{}
}

func (l *NetlinkLister) ListLinks() (links []Link, err error) {
	netlinkLinks, err := netlink.LinkList()
	if err != nil {
		return links, fmt.Errorf("ListLinks: %w", err)
	}

	links = make([]Link, 0, len(netlinkLinks))
	for _, netlinkLink := range netlinkLinks {
		attrs := netlinkLink.Attrs()

		link := Link{
			Name: attrs.Name,
			Up:   attrs.OperState == netlink.OperUp,
		}
		if !link.Up && attrs.Flags&net.FlagUp != 0 {
			// operstate is unreliable on some drivers, trust the flag
			link.Up = true
		}

		if attrs.HardwareAddr != nil {
			link.MAC = attrs.HardwareAddr.String()
		}

		links = append(links, link)
	}

	return links, nil
}
