// Package orchestrator is the entry surface of the reconciliation engine.
// It receives desired-state documents, validates them against the live
// inventory, persists accepted records and schedules the asynchronous apply
// step. A successful result means "accepted and validated", not "fully
// applied": final truth requires a follow-up status query.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/domains/ipconfig"
	"github.com/routeforge/netagent/internal/domains/nat"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/objects/dto"
)

type (
	IInventoryService interface {
		ListPhysicalInterfaces() (interfaces bo.PhysicalInterfaces, degraded bool)
		Resolve(name string) (physicalInterface bo.PhysicalInterface, err error)
	}

	IValidationService interface {
		ValidatePair(wanName, lanName string) (result dto.ValidationResult)
	}

	IApplierService interface {
		Apply(ctx context.Context, cfg bo.InterfaceConfig) (report ipconfig.ApplyReport, err error)
		Shutdown(ctx context.Context, name string)
	}

	INATService interface {
		Enable(ctx context.Context, wanInterface, lanInterface, dhcpStart, dhcpEnd string) (result dto.NATEnableResult, err error)
		Disable(ctx context.Context, wanInterface, lanInterface string) (err error)
		Status(ctx context.Context) (status bo.NATStatus, err error)
	}

	IStoreService interface {
		PutInterfaceConfig(cfg bo.InterfaceConfig) (err error)
		GetInterfaceConfig(name string) (cfg bo.InterfaceConfig, err error)
		DeleteInterfaceConfig(name string) (err error)
		LatestNATConfig() (cfg bo.NATConfig, err error)
	}

	ITaskRunner interface {
		Submit(key, name string, fn func(ctx context.Context) error)
	}

	IAuditService interface {
		Record(component, action, target string, success bool, message string)
	}
)

type Service struct {
	inventoryService  IInventoryService
	validationService IValidationService
	applierService    IApplierService
	natService        INATService
	storeService      IStoreService
	taskRunner        ITaskRunner
	auditService      IAuditService

	validate *validator.Validate
}

func NewService(inventoryService IInventoryService, validationService IValidationService,
	applierService IApplierService, natService INATService, storeService IStoreService,
	taskRunner ITaskRunner, auditService IAuditService) *Service {
	return &Service{
		inventoryService:  inventoryService,
		validationService: validationService,
		applierService:    applierService,
		natService:        natService,
		storeService:      storeService,
		taskRunner:        taskRunner,
		auditService:      auditService,

		validate: validator.New(),
	}
}

// ListInterfaces returns the current inventory snapshot.
func (s *Service) ListInterfaces() dto.Result {
	interfaces, degraded := s.inventoryService.ListPhysicalInterfaces()

	result := dto.OK(interfaces.ToDto(), "current interface inventory")
	if degraded {
		result.Warnings = append(result.Warnings, "enumeration failed, fallback inventory served")
	}

	return result
}

// SaveInterfaceConfig validates and persists one interface desired-state
// record and schedules the apply step behind other work for the same
// interface.
func (s *Service) SaveInterfaceConfig(cfg bo.InterfaceConfig) dto.Result {
	if err := s.validate.Struct(cfg); err != nil {
		return dto.Fail("interface config rejected", err.Error())
	}

	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	if err := s.storeService.PutInterfaceConfig(cfg); err != nil {
		return dto.Fail("interface config not persisted", err.Error())
	}

	result := dto.OK(nil, fmt.Sprintf("interface config for %q accepted", cfg.Name))
	if _, err := s.inventoryService.Resolve(cfg.Name); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("interface %q not present in current inventory", cfg.Name))
	}

	s.auditService.Record("interface", "save", cfg.Name, true, "config accepted")

	if !cfg.AdminEnabled {
		s.taskRunner.Submit(cfg.Name, "interface shutdown", func(ctx context.Context) error {
			s.applierService.Shutdown(ctx, cfg.Name)

			return nil
		})

		return result
	}

	s.taskRunner.Submit(cfg.Name, "interface apply", func(ctx context.Context) error {
		report, err := s.applierService.Apply(ctx, cfg)
		if err != nil {
			s.auditService.Record("interface", "apply", cfg.Name, false, err.Error())

			return err
		}

		if failed := report.Failed(); len(failed) > 0 {
			log.Warn().
				Str("interface", cfg.Name).
				Int("failedSteps", len(failed)).
				Msg("SaveInterfaceConfig: apply finished with best-effort failures")
		}

		s.auditService.Record("interface", "apply", cfg.Name, true, "config applied")

		return nil
	})

	return result
}

// DeleteInterfaceConfig removes the record and, best-effort, brings the
// interface down.
func (s *Service) DeleteInterfaceConfig(name string) dto.Result {
	if _, err := s.storeService.GetInterfaceConfig(name); err != nil {
		return dto.Fail("interface config not found", err.Error())
	}

	if err := s.storeService.DeleteInterfaceConfig(name); err != nil {
		return dto.Fail("interface config not deleted", err.Error())
	}

	s.auditService.Record("interface", "delete", name, true, "config deleted")

	s.taskRunner.Submit(name, "interface shutdown", func(ctx context.Context) error {
		s.applierService.Shutdown(ctx, name)

		return nil
	})

	return dto.OK(nil, fmt.Sprintf("interface config for %q deleted", name))
}

// EnableNAT validates the pair and the lease range synchronously and, on
// pass, schedules the enable sequence on the NAT task lane.
func (s *Service) EnableNAT(wanInterface, lanInterface, dhcpStart, dhcpEnd string) dto.Result {
	validation := s.validationService.ValidatePair(wanInterface, lanInterface)
	if !validation.Valid {
		return dto.Result{
			Success:  false,
			Message:  "nat enable rejected by validation",
			Errors:   validation.Errors,
			Warnings: validation.Warnings,
		}
	}

	if err := nat.ValidateDHCPRange(dhcpStart, dhcpEnd); err != nil {
		return dto.Result{
			Success:  false,
			Message:  "nat enable rejected by validation",
			Errors:   []string{err.Error()},
			Warnings: validation.Warnings,
		}
	}

	s.taskRunner.Submit(constants.NATTaskKey, "nat enable", func(ctx context.Context) error {
		result, err := s.natService.Enable(ctx, wanInterface, lanInterface, dhcpStart, dhcpEnd)
		if err != nil {
			return err
		}

		if !result.Success {
			log.Warn().
				Str("wan", wanInterface).
				Str("lan", lanInterface).
				Msg("EnableNAT: enable finished partially, state kept as applied")
		}

		return nil
	})

	return dto.Result{
		Success:  true,
		Message:  "nat enable accepted",
		Warnings: validation.Warnings,
	}
}

// DisableNAT schedules the teardown sequence on the NAT task lane.
func (s *Service) DisableNAT(wanInterface, lanInterface string) dto.Result {
	s.taskRunner.Submit(constants.NATTaskKey, "nat disable", func(ctx context.Context) error {
		return s.natService.Disable(ctx, wanInterface, lanInterface)
	})

	return dto.OK(nil, "nat disable accepted")
}

// NATStatus reports the reconciliation of the persisted configuration
// against live host signals.
func (s *Service) NATStatus(ctx context.Context) dto.Result {
	status, err := s.natService.Status(ctx)
	if err != nil {
		return dto.Fail("nat status query failed", err.Error())
	}

	return dto.OK(string(status), "nat status")
}
