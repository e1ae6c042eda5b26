package nat

import (
	"fmt"
	"net"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/routeforge/netagent/internal/objects/bo"
)

var leaseHeader = table.Row{"#", "MAC", "IP", "HOSTNAME", "EXPIRES"}

// formatLeasesToTable renders active leases as a pretty table. When
// filterCIDR is set, leases outside that network are dropped, so callers can
// scope the view to the shared LAN subnet.
func formatLeasesToTable(leases []bo.DHCPLease, filterCIDR *string) (output string, err error) {
	var filterNet *net.IPNet
	if filterCIDR != nil {
		if _, filterNet, err = net.ParseCIDR(*filterCIDR); err != nil {
			return output, fmt.Errorf("formatLeasesToTable: %w", err)
		}
	}

	t := table.NewWriter()
	t.AppendHeader(leaseHeader)

	rowNumber := 1
	for _, lease := range leases {
		if filterNet != nil {
			ip := net.ParseIP(lease.IP)
			if ip == nil || !filterNet.Contains(ip) {
				continue
			}
		}

		expires := ""
		if !lease.Expiry.IsZero() {
			expires = lease.Expiry.Format(time.RFC3339)
		}

		t.AppendRow(table.Row{rowNumber, lease.MAC, lease.IP, lease.Hostname, expires})
		rowNumber++
	}

	return t.Render(), nil
}
