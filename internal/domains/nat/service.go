package nat

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/domains/ipconfig"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/objects/dto"
	"github.com/routeforge/netagent/internal/shell"
	"github.com/routeforge/netagent/internal/shell/commands"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) (err error)
	}

	IApplierService interface {
		Apply(ctx context.Context, cfg bo.InterfaceConfig) (report ipconfig.ApplyReport, err error)
	}

	IDNSMasqManager interface {
		Apply(ctx context.Context, lanInterface, rangeStart, rangeEnd, gatewayIP string) (err error)
		Stop(ctx context.Context) (err error)
		Leases() (leases []bo.DHCPLease, err error)
	}

	IStoreService interface {
		AppendNATConfig(cfg bo.NATConfig) (err error)
		LatestNATConfig() (cfg bo.NATConfig, err error)
	}

	ILiveStatusService interface {
		ForwardingEnabled() (enabled bool, err error)
		MasqueradePresent(ctx context.Context, wanInterface string) (present bool, err error)
	}

	IAuditService interface {
		Record(component, action, target string, success bool, message string)
	}
)

const auditComponent = "nat"

// Service orchestrates internet sharing between a WAN and a LAN interface:
// LAN gateway address, host-wide IP forwarding, masquerade and forward
// rules, and a scoped DHCP responder. Enable keeps whatever succeeded when a
// later step fails (best effort, no revert); Disable is idempotent and
// order-insensitive.
type Service struct {
	shellService   IShellService
	applierService IApplierService
	dnsmasqManager IDNSMasqManager
	storeService   IStoreService
	statusService  ILiveStatusService
	auditService   IAuditService

	sysctlDropInPath string
}

func NewService(shellService IShellService, applierService IApplierService, dnsmasqManager IDNSMasqManager,
	storeService IStoreService, statusService ILiveStatusService, auditService IAuditService,
	sysctlDropInPath string) *Service {
	return &Service{
		shellService:   shellService,
		applierService: applierService,
		dnsmasqManager: dnsmasqManager,
		storeService:   storeService,
		statusService:  statusService,
		auditService:   auditService,

		sysctlDropInPath: sysctlDropInPath,
	}
}

// Enable converges the host to the sharing configuration. The pair is
// assumed to have passed validation. The desired-state record is appended
// before actuation: a false Success means "accepted but not fully applied",
// and the steps that did succeed are kept.
func (s *Service) Enable(ctx context.Context, wanInterface, lanInterface, dhcpStart, dhcpEnd string) (result dto.NATEnableResult, err error) {
	result = dto.NATEnableResult{
		WANInterface: wanInterface,
		LANInterface: lanInterface,
		GatewayIP:    constants.ICSGatewayIP,
		DHCPRange:    fmt.Sprintf("%s-%s", dhcpStart, dhcpEnd),
	}

	if err = ValidateDHCPRange(dhcpStart, dhcpEnd); err != nil {
		return result, fmt.Errorf("Enable: %w", err)
	}

	cfg := bo.NATConfig{
		Enabled:           true,
		WANInterface:      wanInterface,
		LANInterface:      lanInterface,
		DHCPRangeStart:    dhcpStart,
		DHCPRangeEnd:      dhcpEnd,
		GatewayIP:         constants.ICSGatewayIP,
		MasqueradeEnabled: true,
		CreatedAt:         time.Now().UTC(),
	}
	if err = s.storeService.AppendNATConfig(cfg); err != nil {
		return result, fmt.Errorf("Enable: %w", err)
	}

	if err = s.converge(ctx, cfg); err != nil {
		s.auditService.Record(auditComponent, "enable", wanInterface+"->"+lanInterface, false, err.Error())

		log.Error().
			Err(err).
			Str("wan", wanInterface).
			Str("lan", lanInterface).
			Msg("Enable: converge failed, applied steps kept")

		return result, nil
	}

	result.Success = true
	s.auditService.Record(auditComponent, "enable", wanInterface+"->"+lanInterface, true, "internet sharing enabled")

	return result, nil
}

// Disable tears the sharing configuration down. The disabled record is
// appended before actuation so a restart cannot reconverge sharing the
// operator turned off. Every teardown step is best-effort and idempotent:
// missing rules and a stopped responder are not errors, and a second
// Disable yields the same end state as the first.
func (s *Service) Disable(ctx context.Context, wanInterface, lanInterface string) (err error) {
	if err = s.persistDisabled(); err != nil {
		return fmt.Errorf("Disable: %w", err)
	}

	for _, command := range deleteRuleCommands(wanInterface, lanInterface) {
		if deleteErr := s.shellService.Exec(ctx, command); deleteErr != nil {
			log.Debug().
				Err(deleteErr).
				Str("command", command.String()).
				Msg("Disable: rule delete skipped")
		}
	}

	if stopErr := s.dnsmasqManager.Stop(ctx); stopErr != nil {
		log.Debug().
			Err(stopErr).
			Msg("Disable: dhcp responder stop skipped")
	}

	// reboot persistence goes before the live flag: a failed flag write must
	// not leave forwarding armed for the next boot
	s.clearForwardingPersist()

	if err = s.shellService.Exec(ctx, commands.NewIPForwardCmd(false)); err != nil {
		s.auditService.Record(auditComponent, "disable", wanInterface+"->"+lanInterface, false, err.Error())

		return fmt.Errorf("Disable: %w", err)
	}

	s.auditService.Record(auditComponent, "disable", wanInterface+"->"+lanInterface, true, "internet sharing disabled")

	return nil
}

// Status reconciles the latest desired-state record against the live
// forwarding flag and masquerade rule, independent of how the record was
// applied.
func (s *Service) Status(ctx context.Context) (status bo.NATStatus, err error) {
	cfg, err := s.storeService.LatestNATConfig()
	if err != nil {
		if errors.Is(err, errs.ErrNATNotConfigured) {
			return bo.NATStatusNotConfigured, nil
		}

		return status, fmt.Errorf("Status: %w", err)
	}

	if !cfg.Enabled {
		return bo.NATStatusDisabled, nil
	}

	forwarding, err := s.statusService.ForwardingEnabled()
	if err != nil {
		log.Warn().
			Err(err).
			Msg("Status: forwarding flag unreadable")
	}

	masquerade, err := s.statusService.MasqueradePresent(ctx, cfg.WANInterface)
	if err != nil {
		log.Warn().
			Err(err).
			Str("wan", cfg.WANInterface).
			Msg("Status: masquerade check failed")
	}

	if forwarding && masquerade {
		return bo.NATStatusActive, nil
	}

	return bo.NATStatusConfiguredButInactive, nil
}

// Resync re-applies the latest enabled configuration without creating a
// new record. Run on startup to converge the host after a restart.
func (s *Service) Resync(ctx context.Context) (err error) {
	cfg, err := s.storeService.LatestNATConfig()
	if err != nil {
		if errors.Is(err, errs.ErrNATNotConfigured) {
			return nil
		}

		return fmt.Errorf("Resync: %w", err)
	}

	if !cfg.Enabled {
		return nil
	}

	if err = s.converge(ctx, cfg); err != nil {
		log.Error().
			Err(err).
			Str("wan", cfg.WANInterface).
			Str("lan", cfg.LANInterface).
			Msg("Resync: converge failed, applied steps kept")

		return nil
	}

	log.Info().
		Str("wan", cfg.WANInterface).
		Str("lan", cfg.LANInterface).
		Msg("Resync: internet sharing reconverged")

	return nil
}

// ListLeases renders the responder's active leases, optionally filtered to
// one subnet in CIDR form.
func (s *Service) ListLeases(filterCIDR *string) (output string, err error) {
	leases, err := s.dnsmasqManager.Leases()
	if err != nil {
		return output, fmt.Errorf("ListLeases: %w", err)
	}

	if output, err = formatLeasesToTable(leases, filterCIDR); err != nil {
		return output, fmt.Errorf("ListLeases: %w", err)
	}

	return output, nil
}

func (s *Service) converge(ctx context.Context, cfg bo.NATConfig) (err error) {
	// gateway address on the LAN side
	gatewayConfig := bo.InterfaceConfig{
		Name:    cfg.LANInterface,
		IPMode:  constants.IPModeStatic,
		Address: constants.ICSGatewayIP,
		Netmask: "255.255.255.0",
	}
	if _, err = s.applierService.Apply(ctx, gatewayConfig); err != nil {
		return fmt.Errorf("converge: lan gateway: %w", err)
	}

	if err = s.shellService.Exec(ctx, commands.NewIPForwardCmd(true)); err != nil {
		return fmt.Errorf("converge: ip forwarding: %w", err)
	}
	s.persistForwarding()

	// flush our rules before reinstalling so repeated enables do not stack
	for _, command := range deleteRuleCommands(cfg.WANInterface, cfg.LANInterface) {
		if deleteErr := s.shellService.Exec(ctx, command); deleteErr != nil {
			log.Debug().
				Err(deleteErr).
				Str("command", command.String()).
				Msg("converge: pre-flush skipped")
		}
	}

	for _, command := range addRuleCommands(cfg.WANInterface, cfg.LANInterface) {
		if err = s.shellService.Exec(ctx, command); err != nil {
			return fmt.Errorf("converge: packet filter: %w", err)
		}
	}

	if err = s.dnsmasqManager.Apply(ctx, cfg.LANInterface, cfg.DHCPRangeStart, cfg.DHCPRangeEnd, cfg.GatewayIP); err != nil {
		return fmt.Errorf("converge: dhcp responder: %w", err)
	}

	return nil
}

// persistDisabled appends a disabled copy of the latest record. Without it
// the store would keep reporting the last enabled record as current.
func (s *Service) persistDisabled() (err error) {
	cfg, err := s.storeService.LatestNATConfig()
	if err != nil {
		if errors.Is(err, errs.ErrNATNotConfigured) {
			return nil
		}

		return fmt.Errorf("persistDisabled: %w", err)
	}

	if !cfg.Enabled {
		return nil
	}

	cfg.Enabled = false
	cfg.MasqueradeEnabled = false
	cfg.CreatedAt = time.Now().UTC()
	if err = s.storeService.AppendNATConfig(cfg); err != nil {
		return fmt.Errorf("persistDisabled: %w", err)
	}

	return nil
}

// persistForwarding keeps forwarding on across reboots, best-effort.
func (s *Service) persistForwarding() {
	content := "# Managed by netagent\nnet.ipv4.ip_forward = 1\n"
	if err := os.WriteFile(s.sysctlDropInPath, []byte(content), constants.ConfFilePerm); err != nil {
		log.Warn().
			Err(err).
			Msg("persistForwarding: sysctl drop-in write failed")
	}
}

// clearForwardingPersist drops the reboot persistence of the forwarding
// flag, best-effort. A drop-in that was never written is not an error.
func (s *Service) clearForwardingPersist() {
	if err := os.Remove(s.sysctlDropInPath); err != nil && !os.IsNotExist(err) {
		log.Warn().
			Err(err).
			Msg("clearForwardingPersist: sysctl drop-in remove failed")
	}
}

func addRuleCommands(wanInterface, lanInterface string) []shell.ICommand {
	return []shell.ICommand{
		commands.NewIptablesCmd("-t", "nat", "-A", "POSTROUTING", "-o", wanInterface, "-j", "MASQUERADE"),
		commands.NewIptablesCmd("-A", "FORWARD", "-i", wanInterface, "-o", lanInterface,
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT"),
		commands.NewIptablesCmd("-A", "FORWARD", "-i", lanInterface, "-o", wanInterface, "-j", "ACCEPT"),
	}
}

func deleteRuleCommands(wanInterface, lanInterface string) []shell.ICommand {
	return []shell.ICommand{
		commands.NewIptablesCmd("-t", "nat", "-D", "POSTROUTING", "-o", wanInterface, "-j", "MASQUERADE"),
		commands.NewIptablesCmd("-D", "FORWARD", "-i", wanInterface, "-o", lanInterface,
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT"),
		commands.NewIptablesCmd("-D", "FORWARD", "-i", lanInterface, "-o", wanInterface, "-j", "ACCEPT"),
	}
}

// ValidateDHCPRange checks a lease range against the fixed gateway subnet.
// It is pure, so callers may run it synchronously before queueing an enable.
func ValidateDHCPRange(start, end string) (err error) {
	startIP := net.ParseIP(start).To4()
	if startIP == nil {
		return fmt.Errorf("ValidateDHCPRange: start %q: %w", start, errs.ErrValidation)
	}

	endIP := net.ParseIP(end).To4()
	if endIP == nil {
		return fmt.Errorf("ValidateDHCPRange: end %q: %w", end, errs.ErrValidation)
	}

	gatewayNet := &net.IPNet{
		IP:   net.ParseIP(constants.ICSGatewayIP).To4().Mask(net.CIDRMask(constants.ICSGatewayPrefix, 32)),
		Mask: net.CIDRMask(constants.ICSGatewayPrefix, 32),
	}
	if !gatewayNet.Contains(startIP) || !gatewayNet.Contains(endIP) {
		return fmt.Errorf("ValidateDHCPRange: range outside %s: %w", gatewayNet.String(), errs.ErrValidation)
	}

	if ipToUint32(startIP) > ipToUint32(endIP) {
		return fmt.Errorf("ValidateDHCPRange: start above end: %w", errs.ErrValidation)
	}

	gatewayIP := net.ParseIP(constants.ICSGatewayIP).To4()
	if ipToUint32(startIP) <= ipToUint32(gatewayIP) && ipToUint32(gatewayIP) <= ipToUint32(endIP) {
		return fmt.Errorf("ValidateDHCPRange: range includes gateway: %w", errs.ErrValidation)
	}

	return nil
}

func ipToUint32(ip net.IP) uint32 {
	return binary.BigEndian.Uint32(ip.To4())
}
