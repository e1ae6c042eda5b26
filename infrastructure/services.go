package infrastructure

import (
	"context"
	"sync"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/domains/audit"
	"github.com/routeforge/netagent/internal/domains/firewall"
	"github.com/routeforge/netagent/internal/domains/inventory"
	"github.com/routeforge/netagent/internal/domains/ipconfig"
	"github.com/routeforge/netagent/internal/domains/nat"
	"github.com/routeforge/netagent/internal/domains/orchestrator"
	"github.com/routeforge/netagent/internal/domains/status"
	"github.com/routeforge/netagent/internal/domains/validation"
	"github.com/routeforge/netagent/internal/shell"
	"github.com/routeforge/netagent/internal/storage"
	"github.com/routeforge/netagent/internal/tasks"
)

var (
	shellService     *shell.Service
	shellServiceOnce sync.Once
)

func (k *Kernel) InjectShellService() *shell.Service {
	shellServiceOnce.Do(func() {
		shellService = shell.NewService(k.env.ShellTimeout)
	})

	return shellService
}

var (
	storeService     *storage.Store
	storeServiceOnce sync.Once
)

func (k *Kernel) InjectStoreService() *storage.Store {
	storeServiceOnce.Do(func() {
		storeService = storage.NewStore(k.DB)
	})

	return storeService
}

var (
	taskRunner     *tasks.Runner
	taskRunnerOnce sync.Once
)

func (k *Kernel) InjectTaskRunner() *tasks.Runner {
	taskRunnerOnce.Do(func() {
		// background tasks always run to completion, commands carry
		// their own timeouts
		taskRunner = tasks.NewRunner(context.Background())
	})

	return taskRunner
}

var (
	auditService     *audit.Service
	auditServiceOnce sync.Once
)

func (k *Kernel) InjectAuditService() *audit.Service {
	auditServiceOnce.Do(func() {
		auditService = audit.NewService(
			k.InjectStoreService(),
		)
	})

	return auditService
}

var (
	inventoryService     *inventory.Service
	inventoryServiceOnce sync.Once
)

func (k *Kernel) InjectInventoryService() *inventory.Service {
	inventoryServiceOnce.Do(func() {
		inventoryService = inventory.NewService(
			inventory.NewNetlinkLister(),
			inventory.NewPrefixClassifier(),
		)
	})

	return inventoryService
}

var (
	applierService     *ipconfig.Service
	applierServiceOnce sync.Once
)

func (k *Kernel) InjectApplierService() *ipconfig.Service {
	applierServiceOnce.Do(func() {
		applierService = ipconfig.NewService(
			k.InjectShellService(),
			k.env.ResolvConfPath,
		)
	})

	return applierService
}

var (
	statusService     *status.Service
	statusServiceOnce sync.Once
)

func (k *Kernel) InjectStatusService() *status.Service {
	statusServiceOnce.Do(func() {
		statusService = status.NewService(
			k.InjectShellService(),
			k.InjectInventoryService(),
			status.NewNetlinkStatsReader(),
			constants.IPForwardProcPath,
		)
	})

	return statusService
}

var (
	dnsmasqManager     *nat.DNSMasqManager
	dnsmasqManagerOnce sync.Once
)

func (k *Kernel) InjectDNSMasqManager() *nat.DNSMasqManager {
	dnsmasqManagerOnce.Do(func() {
		dnsmasqManager = nat.NewDNSMasqManager(
			k.InjectShellService(),
			k.env.DNSMasqConfPath,
			k.env.DNSMasqLeasePath,
		)
	})

	return dnsmasqManager
}

var (
	natService     *nat.Service
	natServiceOnce sync.Once
)

func (k *Kernel) InjectNATService() *nat.Service {
	natServiceOnce.Do(func() {
		natService = nat.NewService(
			k.InjectShellService(),
			k.InjectApplierService(),
			k.InjectDNSMasqManager(),
			k.InjectStoreService(),
			k.InjectStatusService(),
			k.InjectAuditService(),
			constants.SysctlDropInPath,
		)
	})

	return natService
}

var (
	firewallService     *firewall.Service
	firewallServiceOnce sync.Once
)

func (k *Kernel) InjectFirewallService() *firewall.Service {
	firewallServiceOnce.Do(func() {
		firewallService = firewall.NewService(
			k.InjectShellService(),
			k.InjectStoreService(),
			k.InjectTaskRunner(),
			k.InjectAuditService(),
		)
	})

	return firewallService
}

var (
	validationService     *validation.Service
	validationServiceOnce sync.Once
)

func (k *Kernel) InjectValidationService() *validation.Service {
	validationServiceOnce.Do(func() {
		validationService = validation.NewService(
			k.InjectInventoryService(),
		)
	})

	return validationService
}

var (
	orchestratorService     *orchestrator.Service
	orchestratorServiceOnce sync.Once
)

func (k *Kernel) InjectOrchestratorService() *orchestrator.Service {
	orchestratorServiceOnce.Do(func() {
		orchestratorService = orchestrator.NewService(
			k.InjectInventoryService(),
			k.InjectValidationService(),
			k.InjectApplierService(),
			k.InjectNATService(),
			k.InjectStoreService(),
			k.InjectTaskRunner(),
			k.InjectAuditService(),
		)
	})

	return orchestratorService
}
