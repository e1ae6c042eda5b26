package nat

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell/commands"
)

const defaultLeaseTime = "12h"

// DNSMasqManager owns the DHCP responder: it writes a dnsmasq configuration
// scoped to one LAN interface and drives the service unit.
type DNSMasqManager struct {
	shellService IShellService
	confPath     string
	leasePath    string
}

func NewDNSMasqManager(shellService IShellService, confPath, leasePath string) *DNSMasqManager {
	return &DNSMasqManager{
		shellService: shellService,
		confPath:     confPath,
		leasePath:    leasePath,
	}
}

// Apply writes the responder configuration and restarts the service so it
// picks the new scope up.
func (m *DNSMasqManager) Apply(ctx context.Context, lanInterface, rangeStart, rangeEnd, gatewayIP string) (err error) {
	content := m.generateConfig(lanInterface, rangeStart, rangeEnd, gatewayIP)

	if err = os.MkdirAll(filepath.Dir(m.confPath), constants.FilePerm); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	if err = os.WriteFile(m.confPath, []byte(content), constants.ConfFilePerm); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	if err = m.shellService.Exec(ctx, commands.NewSystemctlCmd("restart", constants.DNSMasqUnit)); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	if err = m.shellService.Exec(ctx, commands.NewSystemctlCmd("enable", constants.DNSMasqUnit)); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

// Stop stops the responder. A missing unit is not an error.
func (m *DNSMasqManager) Stop(ctx context.Context) (err error) {
	if err = m.shellService.Exec(ctx, commands.NewSystemctlCmd("stop", constants.DNSMasqUnit)); err != nil {
		return fmt.Errorf("Stop: %w", err)
	}

	return nil
}

// Leases parses the lease file. Format: expiry MAC IP hostname clientID.
func (m *DNSMasqManager) Leases() (leases []bo.DHCPLease, err error) {
	leaseFile, err := os.Open(m.leasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("Leases: %w", err)
	}
	defer leaseFile.Close()

	scanner := bufio.NewScanner(leaseFile)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}

		lease := bo.DHCPLease{
			MAC:      fields[1],
			IP:       fields[2],
			Hostname: fields[3],
		}
		if expiry, parseErr := strconv.ParseInt(fields[0], 10, 64); parseErr == nil {
			lease.Expiry = time.Unix(expiry, 0).UTC()
		}

		leases = append(leases, lease)
	}

	if err = scanner.Err(); err != nil {
		return leases, fmt.Errorf("Leases: %w", err)
	}

	return leases, nil
}

func (m *DNSMasqManager) generateConfig(lanInterface, rangeStart, rangeEnd, gatewayIP string) string {
	var sb strings.Builder

	sb.WriteString("# Managed by netagent - do not edit manually\n")
	sb.WriteString("bind-interfaces\n")
	sb.WriteString("port=0\n")
	sb.WriteString(fmt.Sprintf("dhcp-leasefile=%s\n", m.leasePath))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("interface=%s\n", lanInterface))
	sb.WriteString(fmt.Sprintf("dhcp-range=%s,%s,%s,%s\n", lanInterface, rangeStart, rangeEnd, defaultLeaseTime))
	sb.WriteString(fmt.Sprintf("dhcp-option=%s,3,%s\n", lanInterface, gatewayIP))

	return sb.String()
}
