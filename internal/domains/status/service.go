// Package status reports live host state: interface counters, the IP
// forwarding flag and masquerade rule presence. It never consults persisted
// configuration, which makes it the reference side of drift detection.
package status

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell"
	"github.com/routeforge/netagent/internal/shell/commands"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) (err error)
	}

	IInventoryService interface {
		ListPhysicalInterfaces() (interfaces bo.PhysicalInterfaces, degraded bool)
	}

	IStatsReader interface {
		Stats(name string) (stats bo.InterfaceStatistics, err error)
	}
)

type Service struct {
	shellService     IShellService
	inventoryService IInventoryService
	statsReader      IStatsReader
	forwardProcPath  string
}

func NewService(shellService IShellService, inventoryService IInventoryService, statsReader IStatsReader,
	forwardProcPath string) *Service {
	return &Service{
		shellService:     shellService,
		inventoryService: inventoryService,
		statsReader:      statsReader,
		forwardProcPath:  forwardProcPath,
	}
}

// InterfaceStatistics returns the live counters of one interface.
func (s *Service) InterfaceStatistics(name string) (stats bo.InterfaceStatistics, err error) {
	if stats, err = s.statsReader.Stats(name); err != nil {
		return stats, fmt.Errorf("InterfaceStatistics: %w", err)
	}

	return stats, nil
}

// AllStatistics collects counters for every inventoried interface
// concurrently. Interfaces whose counters are unreadable are logged and
// skipped.
func (s *Service) AllStatistics() (stats []bo.InterfaceStatistics) {
	interfaces, _ := s.inventoryService.ListPhysicalInterfaces()
	if len(interfaces) == 0 {
		return stats
	}

	p := pool.NewWithResults[*bo.InterfaceStatistics]().WithMaxGoroutines(len(interfaces))
	for _, physicalInterface := range interfaces {
		p.Go(func() *bo.InterfaceStatistics {
			interfaceStats, err := s.statsReader.Stats(physicalInterface.Name)
			if err != nil {
				log.Warn().
					Err(err).
					Str("interface", physicalInterface.Name).
					Msg("AllStatistics: counters unreadable")

				return nil
			}

			return &interfaceStats
		})
	}

	for _, result := range p.Wait() {
		if result != nil {
			stats = append(stats, *result)
		}
	}

	return stats
}

// ForwardingEnabled reads the host-wide IPv4 forwarding flag.
func (s *Service) ForwardingEnabled() (enabled bool, err error) {
	data, err := os.ReadFile(s.forwardProcPath)
	if err != nil {
		return false, fmt.Errorf("ForwardingEnabled: %w", err)
	}

	return strings.TrimSpace(string(data)) == "1", nil
}

// MasqueradePresent probes for the egress masquerade rule on the given WAN
// interface. A non-zero exit means the rule is absent; a missing firewall
// binary or a timed out probe is surfaced as an error, not as absence.
func (s *Service) MasqueradePresent(ctx context.Context, wanInterface string) (present bool, err error) {
	checkCmd := commands.NewIptablesCmd("-t", "nat", "-C", "POSTROUTING", "-o", wanInterface, "-j", "MASQUERADE")
	if err = s.shellService.Exec(ctx, checkCmd); err != nil {
		if errors.Is(err, errs.ErrEnvironment) || errors.Is(err, errs.ErrShellTimeout) {
			return false, fmt.Errorf("MasqueradePresent: %w", err)
		}

		return false, nil
	}

	return true, nil
}
