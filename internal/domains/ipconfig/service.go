package ipconfig

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell"
	"github.com/routeforge/netagent/internal/shell/commands"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) (err error)
	}
)

type step struct {
	name     string
	critical bool
	run      func(ctx context.Context) error
}

// Service converges one interface to its desired static or DHCP state by
// issuing the ordered OS operations. Steps are independent invocations:
// a best-effort step's failure is recorded and ignored, a critical step's
// failure aborts the remaining sequence. Re-running an unchanged static
// config is idempotent.
type Service struct {
	shellService   IShellService
	resolvConfPath string
}

func NewService(shellService IShellService, resolvConfPath string) *Service {
	return &Service{
		shellService:   shellService,
		resolvConfPath: resolvConfPath,
	}
}

// Apply runs the apply sequence for cfg and reports per-step outcomes.
// The returned error is non-nil only when a critical step failed; the report
// is valid either way.
func (s *Service) Apply(ctx context.Context, cfg bo.InterfaceConfig) (report ApplyReport, err error) {
	report.Interface = cfg.Name

	steps, err := s.buildSteps(cfg)
	if err != nil {
		return report, fmt.Errorf("Apply: %w", err)
	}

	for i, current := range steps {
		result := StepResult{
			Name:     current.name,
			Critical: current.critical,
			OK:       true,
		}

		if stepErr := current.run(ctx); stepErr != nil {
			result.OK = false
			result.Error = stepErr.Error()

			if current.critical {
				report.Steps = append(report.Steps, result)
				report.Aborted = true

				log.Error().
					Err(stepErr).
					Str("interface", cfg.Name).
					Str("step", current.name).
					Int("remaining", len(steps)-i-1).
					Msg("Apply: critical step failed, aborting sequence")

				return report, fmt.Errorf("Apply: step %q: %w", current.name, errs.ErrCriticalStep)
			}

			log.Warn().
				Err(stepErr).
				Str("interface", cfg.Name).
				Str("step", current.name).
				Msg("Apply: best-effort step failed, continuing")
		}

		report.Steps = append(report.Steps, result)
	}

	return report, nil
}

// Shutdown brings the interface down, best-effort. Used on config delete.
func (s *Service) Shutdown(ctx context.Context, name string) {
	if err := s.shellService.Exec(ctx, commands.NewLinkDownCmd(name)); err != nil {
		log.Warn().
			Err(err).
			Str("interface", name).
			Msg("Shutdown: link down failed")
	}
}

func (s *Service) buildSteps(cfg bo.InterfaceConfig) (steps []step, err error) {
	if cfg.IsStatic() {
		return s.buildStaticSteps(cfg)
	}

	return s.buildDHCPSteps(cfg), nil
}

func (s *Service) buildStaticSteps(cfg bo.InterfaceConfig) (steps []step, err error) {
	prefixLen, err := netmaskToPrefix(cfg.Netmask)
	if err != nil {
		return steps, fmt.Errorf("buildStaticSteps: %w", err)
	}

	cidr := fmt.Sprintf("%s/%d", cfg.Address, prefixLen)

	steps = []step{
		s.shellStep("flush addresses", false, commands.NewAddrFlushCmd(cfg.Name)),
		s.shellStep("add address "+cidr, true, commands.NewAddrAddCmd(cfg.Name, cidr)),
		s.shellStep("link up", true, commands.NewLinkUpCmd(cfg.Name)),
	}

	if lo.IsNotEmpty(cfg.Gateway) {
		steps = append(steps,
			s.shellStep("delete default route", false, commands.NewRouteDelDefaultCmd()),
			s.shellStep("replace default route", true, commands.NewRouteReplaceDefaultCmd(cfg.Gateway)),
		)
	}

	if cfg.MTU > 0 {
		steps = append(steps, s.shellStep(fmt.Sprintf("set mtu %d", cfg.MTU), false, commands.NewLinkMTUCmd(cfg.Name, cfg.MTU)))
	}

	if lo.IsNotEmpty(cfg.DNS1) || lo.IsNotEmpty(cfg.DNS2) {
		steps = append(steps, step{
			name: "write resolver config",
			run: func(context.Context) error {
				return s.writeResolvConf(cfg.DNS1, cfg.DNS2)
			},
		})
	}

	return steps, nil
}

func (s *Service) buildDHCPSteps(cfg bo.InterfaceConfig) []step {
	return []step{
		s.shellStep("release dhcp lease", false, commands.NewDHClientReleaseCmd(cfg.Name)),
		s.shellStep("flush addresses", false, commands.NewAddrFlushCmd(cfg.Name)),
		s.shellStep("link up", true, commands.NewLinkUpCmd(cfg.Name)),
		s.shellStep("start dhcp client", true, commands.NewDHClientCmd(cfg.Name)),
	}
}

func (s *Service) shellStep(name string, critical bool, command shell.ICommand) step {
	return step{
		name:     name,
		critical: critical,
		run: func(ctx context.Context) error {
			return s.shellService.Exec(ctx, command)
		},
	}
}

// writeResolvConf overwrites the resolver config wholesale.
func (s *Service) writeResolvConf(servers ...string) error {
	var sb strings.Builder
	for _, server := range servers {
		if lo.IsEmpty(server) {
			continue
		}

		sb.WriteString("nameserver ")
		sb.WriteString(server)
		sb.WriteString("\n")
	}

	return os.WriteFile(s.resolvConfPath, []byte(sb.String()), constants.ConfFilePerm)
}

func netmaskToPrefix(netmask string) (prefixLen int, err error) {
	maskIP := net.ParseIP(netmask).To4()
	if maskIP == nil {
		return 0, fmt.Errorf("netmaskToPrefix: netmask %q: %w", netmask, errs.ErrValidation)
	}

	mask := net.IPv4Mask(maskIP[0], maskIP[1], maskIP[2], maskIP[3])
	ones, bits := mask.Size()
	if bits != 32 || ones == 0 {
		return 0, fmt.Errorf("netmaskToPrefix: netmask %q: %w", netmask, errs.ErrValidation)
	}

	return ones, nil
}
