package firewall

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell"
)

type (
	IShellService interface {
		Exec(ctx context.Context, command shell.ICommand) (err error)
	}

	IStoreService interface {
		PutFirewallRule(rule bo.FirewallRule) (err error)
		GetFirewallRule(ruleName string) (rule bo.FirewallRule, err error)
		DeleteFirewallRule(ruleName string) (err error)
		ListFirewallRules() (rules bo.FirewallRules, err error)
	}

	ITaskRunner interface {
		Submit(key, name string, fn func(ctx context.Context) error)
	}

	IAuditService interface {
		Record(component, action, target string, success bool, message string)
	}
)

const auditComponent = "firewall"

// Service maps declarative rule records onto host firewall primitives.
// Mutations persist the record synchronously and synchronize the host on a
// background task keyed by rule name; a sync failure never rolls the record
// back, so callers must re-query to confirm the host reflects the change.
type Service struct {
	shellService IShellService
	storeService IStoreService
	taskRunner   ITaskRunner
	auditService IAuditService

	validate *validator.Validate
}

func NewService(shellService IShellService, storeService IStoreService, taskRunner ITaskRunner,
	auditService IAuditService) *Service {
	return &Service{
		shellService: shellService,
		storeService: storeService,
		taskRunner:   taskRunner,
		auditService: auditService,

		validate: validator.New(),
	}
}

// Sync validates and persists the rule, then schedules host
// synchronization.
func (s *Service) Sync(rule bo.FirewallRule) (err error) {
	if err = s.validateRule(rule); err != nil {
		return fmt.Errorf("Sync: %w", err)
	}

	now := time.Now().UTC()
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now

	if err = s.storeService.PutFirewallRule(rule); err != nil {
		return fmt.Errorf("Sync: %w", err)
	}

	s.taskRunner.Submit(rule.RuleName, "firewall sync", func(ctx context.Context) error {
		return s.syncHost(ctx, rule)
	})

	return nil
}

// Remove deletes the persisted rule and schedules removal of the host rule.
func (s *Service) Remove(ruleName string) (err error) {
	rule, err := s.storeService.GetFirewallRule(ruleName)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}

	if err = s.storeService.DeleteFirewallRule(ruleName); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}

	s.taskRunner.Submit(ruleName, "firewall remove", func(ctx context.Context) error {
		return s.removeHost(ctx, rule)
	})

	return nil
}

// Replace is Remove(old) followed by Sync(new). The two steps are not
// atomic: an interruption in between leaves the rule absent on the host.
func (s *Service) Replace(oldRuleName string, newRule bo.FirewallRule) (err error) {
	if err = s.Remove(oldRuleName); err != nil {
		return fmt.Errorf("Replace: %w", err)
	}

	if err = s.Sync(newRule); err != nil {
		return fmt.Errorf("Replace: %w", err)
	}

	return nil
}

// ResyncAll schedules host synchronization for every persisted rule. Run on
// startup to converge after a restart.
func (s *Service) ResyncAll() (err error) {
	rules, err := s.storeService.ListFirewallRules()
	if err != nil {
		return fmt.Errorf("ResyncAll: %w", err)
	}

	for _, rule := range rules {
		queued := rule
		s.taskRunner.Submit(queued.RuleName, "firewall resync", func(ctx context.Context) error {
			return s.syncHost(ctx, queued)
		})
	}

	log.Info().
		Int("rules", len(rules)).
		Msg("ResyncAll: host synchronization scheduled")

	return nil
}

// syncHost makes the host reflect the rule: stale instances are removed
// first so repeated syncs do not stack duplicates, then the rule is added
// when enabled.
func (s *Service) syncHost(ctx context.Context, rule bo.FirewallRule) (err error) {
	if err = s.removeHost(ctx, rule); err != nil {
		return fmt.Errorf("syncHost: %w", err)
	}

	if !rule.Enabled {
		s.auditService.Record(auditComponent, "sync", rule.RuleName, true, "rule disabled, host entry removed")

		return nil
	}

	addCommands, err := buildAddCommands(rule)
	if err != nil {
		return fmt.Errorf("syncHost: %w", err)
	}

	for _, command := range addCommands {
		if err = s.shellService.Exec(ctx, command); err != nil {
			s.auditService.Record(auditComponent, "sync", rule.RuleName, false, err.Error())

			return fmt.Errorf("syncHost: %w", err)
		}
	}

	s.auditService.Record(auditComponent, "sync", rule.RuleName, true, "host rule installed")

	return nil
}

func (s *Service) removeHost(ctx context.Context, rule bo.FirewallRule) (err error) {
	deleteCommands, err := buildDeleteCommands(rule)
	if err != nil {
		return fmt.Errorf("removeHost: %w", err)
	}

	for _, command := range deleteCommands {
		// absent rules are fine, delete until the host reports none left
		for {
			if deleteErr := s.shellService.Exec(ctx, command); deleteErr != nil {
				break
			}
		}
	}

	return nil
}

func (s *Service) validateRule(rule bo.FirewallRule) (err error) {
	if err = s.validate.Struct(rule); err != nil {
		return fmt.Errorf("validateRule: %w", err)
	}

	if err = validatePortList(rule.SourcePorts); err != nil {
		return fmt.Errorf("validateRule: source ports: %w", err)
	}

	if err = validatePortList(rule.DestinationPorts); err != nil {
		return fmt.Errorf("validateRule: destination ports: %w", err)
	}

	return nil
}
