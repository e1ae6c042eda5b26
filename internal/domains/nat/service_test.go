package nat_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/netagent/internal/domains/ipconfig"
	"github.com/routeforge/netagent/internal/domains/nat"
	"github.com/routeforge/netagent/internal/domains/nat/nat_mocks"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell/commands"
	"github.com/routeforge/netagent/internal/storage"
)

var errTestError = errors.New("test error")

const (
	testWAN = "wlan0"
	testLAN = "eth0"
)

type serviceFields struct {
	shellService   *nat_mocks.IShellService
	applierService *nat_mocks.IApplierService
	dnsmasqManager *nat_mocks.IDNSMasqManager
	storeService   *nat_mocks.IStoreService
	statusService  *nat_mocks.ILiveStatusService
	auditService   *nat_mocks.IAuditService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		shellService:   nat_mocks.NewIShellService(t),
		applierService: nat_mocks.NewIApplierService(t),
		dnsmasqManager: nat_mocks.NewIDNSMasqManager(t),
		storeService:   nat_mocks.NewIStoreService(t),
		statusService:  nat_mocks.NewILiveStatusService(t),
		auditService:   nat_mocks.NewIAuditService(t),
	}
}

func newService(t *testing.T, f *serviceFields) *nat.Service {
	return nat.NewService(
		f.shellService,
		f.applierService,
		f.dnsmasqManager,
		f.storeService,
		f.statusService,
		f.auditService,
		filepath.Join(t.TempDir(), "99-forwarding.conf"),
	)
}

// expectConverge wires the full happy-path converge sequence: LAN gateway
// address, forwarding on, rule pre-flush, rule install, dhcp responder.
func expectConverge(f *serviceFields) {
	f.applierService.EXPECT().
		Apply(mock.Anything, bo.InterfaceConfig{
			Name:    testLAN,
			IPMode:  "static",
			Address: "192.168.100.1",
			Netmask: "255.255.255.0",
		}).
		Return(ipconfig.ApplyReport{Interface: testLAN}, nil)

	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIPForwardCmd(true)).
		Return(nil)

	// pre-flush deletes tolerate absent rules
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-t", "nat", "-D", "POSTROUTING", "-o", testWAN, "-j", "MASQUERADE")).
		Return(errTestError)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-D", "FORWARD", "-i", testWAN, "-o", testLAN,
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT")).
		Return(errTestError)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-D", "FORWARD", "-i", testLAN, "-o", testWAN, "-j", "ACCEPT")).
		Return(errTestError)

	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-t", "nat", "-A", "POSTROUTING", "-o", testWAN, "-j", "MASQUERADE")).
		Return(nil)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-A", "FORWARD", "-i", testWAN, "-o", testLAN,
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT")).
		Return(nil)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-A", "FORWARD", "-i", testLAN, "-o", testWAN, "-j", "ACCEPT")).
		Return(nil)

	f.dnsmasqManager.EXPECT().
		Apply(mock.Anything, testLAN, "192.168.100.50", "192.168.100.150", "192.168.100.1").
		Return(nil)
}

func TestService_Enable(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name            string
		dhcpStart       string
		dhcpEnd         string
		prepare         func(f *serviceFields)
		expectedSuccess bool
		expectedErr     error
	}{
		{
			name:      "happy path",
			dhcpStart: "192.168.100.50",
			dhcpEnd:   "192.168.100.150",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					AppendNATConfig(mock.MatchedBy(func(cfg bo.NATConfig) bool {
						return cfg.Enabled &&
							cfg.WANInterface == testWAN &&
							cfg.LANInterface == testLAN &&
							cfg.GatewayIP == "192.168.100.1" &&
							cfg.MasqueradeEnabled &&
							!cfg.CreatedAt.IsZero()
					})).
					Return(nil)

				expectConverge(f)

				f.auditService.EXPECT().
					Record("nat", "enable", testWAN+"->"+testLAN, true, mock.Anything).
					Return()
			},
			expectedSuccess: true,
		},
		{
			name:        "range start above end",
			dhcpStart:   "192.168.100.150",
			dhcpEnd:     "192.168.100.50",
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "range outside gateway subnet",
			dhcpStart:   "10.0.0.10",
			dhcpEnd:     "10.0.0.20",
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "range includes gateway",
			dhcpStart:   "192.168.100.1",
			dhcpEnd:     "192.168.100.50",
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "not an address",
			dhcpStart:   "not-an-ip",
			dhcpEnd:     "192.168.100.50",
			expectedErr: errs.ErrValidation,
		},
		{
			name:      "record append error",
			dhcpStart: "192.168.100.50",
			dhcpEnd:   "192.168.100.150",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					AppendNATConfig(mock.Anything).
					Return(errTestError)
			},
			expectedErr: errTestError,
		},
		{
			name:      "converge failure keeps applied steps",
			dhcpStart: "192.168.100.50",
			dhcpEnd:   "192.168.100.150",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					AppendNATConfig(mock.Anything).
					Return(nil)

				f.applierService.EXPECT().
					Apply(mock.Anything, mock.Anything).
					Return(ipconfig.ApplyReport{}, errTestError)

				f.auditService.EXPECT().
					Record("nat", "enable", testWAN+"->"+testLAN, false, mock.Anything).
					Return()
			},
			expectedSuccess: false,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := newService(t, f)

			result, err := service.Enable(context.Background(), testWAN, testLAN, testCase.dhcpStart, testCase.dhcpEnd)
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				assert.False(t, result.Success)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedSuccess, result.Success)
			assert.Equal(t, "192.168.100.1", result.GatewayIP)
			assert.Equal(t, testCase.dhcpStart+"-"+testCase.dhcpEnd, result.DHCPRange)
		})
	}
}

func TestService_Disable(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		prepare     func(f *serviceFields)
		expectedErr error
	}{
		{
			name: "happy path appends a disabled record",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{
						Enabled:        true,
						WANInterface:   testWAN,
						LANInterface:   testLAN,
						DHCPRangeStart: "192.168.100.50",
						DHCPRangeEnd:   "192.168.100.150",
					}, nil)
				f.storeService.EXPECT().
					AppendNATConfig(mock.MatchedBy(func(cfg bo.NATConfig) bool {
						return !cfg.Enabled &&
							!cfg.MasqueradeEnabled &&
							cfg.WANInterface == testWAN &&
							cfg.LANInterface == testLAN
					})).
					Return(nil)

				expectDisableTeardown(f, nil)

				f.auditService.EXPECT().
					Record("nat", "disable", testWAN+"->"+testLAN, true, mock.Anything).
					Return()
			},
		},
		{
			name: "idempotent when nothing is installed",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{}, errs.ErrNATNotConfigured)

				// absent rules and a stopped responder are not errors
				expectDisableTeardown(f, errTestError)

				f.auditService.EXPECT().
					Record("nat", "disable", testWAN+"->"+testLAN, true, mock.Anything).
					Return()
			},
		},
		{
			name: "already disabled record is not duplicated",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: false, WANInterface: testWAN, LANInterface: testLAN}, nil)

				expectDisableTeardown(f, nil)

				f.auditService.EXPECT().
					Record("nat", "disable", testWAN+"->"+testLAN, true, mock.Anything).
					Return()
			},
		},
		{
			name: "record append failure aborts the teardown",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: true, WANInterface: testWAN, LANInterface: testLAN}, nil)
				f.storeService.EXPECT().
					AppendNATConfig(mock.Anything).
					Return(errTestError)
			},
			expectedErr: errTestError,
		},
		{
			name: "forwarding off failure is surfaced",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{}, errs.ErrNATNotConfigured)

				expectDeleteRules(f, nil)

				f.dnsmasqManager.EXPECT().
					Stop(mock.Anything).
					Return(nil)

				f.shellService.EXPECT().
					Exec(mock.Anything, commands.NewIPForwardCmd(false)).
					Return(errTestError)

				f.auditService.EXPECT().
					Record("nat", "disable", testWAN+"->"+testLAN, false, mock.Anything).
					Return()
			},
			expectedErr: errTestError,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := newService(t, f)

			err := service.Disable(context.Background(), testWAN, testLAN)
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

// TestService_EnableThenDisable drives the service over a real store: the
// disable must leave a disabled record as the latest one, report the
// disabled status and drop the forwarding persistence, so a restart does
// not turn sharing back on.
func TestService_EnableThenDisable(t *testing.T) {
	t.Parallel()

	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	f := newServiceFields(t)
	store := storage.NewStore(db)
	dropInPath := filepath.Join(t.TempDir(), "99-forwarding.conf")

	service := nat.NewService(
		f.shellService,
		f.applierService,
		f.dnsmasqManager,
		store,
		f.statusService,
		f.auditService,
		dropInPath,
	)

	expectConverge(f)
	f.auditService.EXPECT().
		Record("nat", "enable", testWAN+"->"+testLAN, true, mock.Anything).
		Return()

	result, err := service.Enable(context.Background(), testWAN, testLAN, "192.168.100.50", "192.168.100.150")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.FileExists(t, dropInPath)

	// the delete-rule execs reuse the expectations set by expectConverge
	f.dnsmasqManager.EXPECT().
		Stop(mock.Anything).
		Return(nil)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIPForwardCmd(false)).
		Return(nil)
	f.auditService.EXPECT().
		Record("nat", "disable", testWAN+"->"+testLAN, true, mock.Anything).
		Return()

	require.NoError(t, service.Disable(context.Background(), testWAN, testLAN))

	latest, err := store.LatestNATConfig()
	require.NoError(t, err)
	assert.False(t, latest.Enabled)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bo.NATStatusDisabled, status)

	assert.NoFileExists(t, dropInPath)
}

func expectDeleteRules(f *serviceFields, deleteErr error) {
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-t", "nat", "-D", "POSTROUTING", "-o", testWAN, "-j", "MASQUERADE")).
		Return(deleteErr)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-D", "FORWARD", "-i", testWAN, "-o", testLAN,
			"-m", "state", "--state", "RELATED,ESTABLISHED", "-j", "ACCEPT")).
		Return(deleteErr)
	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIptablesCmd("-D", "FORWARD", "-i", testLAN, "-o", testWAN, "-j", "ACCEPT")).
		Return(deleteErr)
}

func expectDisableTeardown(f *serviceFields, stepErr error) {
	expectDeleteRules(f, stepErr)

	f.dnsmasqManager.EXPECT().
		Stop(mock.Anything).
		Return(stepErr)

	f.shellService.EXPECT().
		Exec(mock.Anything, commands.NewIPForwardCmd(false)).
		Return(nil)
}

func TestService_Status(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		prepare        func(f *serviceFields)
		expectedStatus bo.NATStatus
		expectedErr    error
	}{
		{
			name: "no record",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{}, errs.ErrNATNotConfigured)
			},
			expectedStatus: bo.NATStatusNotConfigured,
		},
		{
			name: "latest record disabled",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: false, WANInterface: testWAN}, nil)
			},
			expectedStatus: bo.NATStatusDisabled,
		},
		{
			name: "enabled and live",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: true, WANInterface: testWAN}, nil)
				f.statusService.EXPECT().
					ForwardingEnabled().
					Return(true, nil)
				f.statusService.EXPECT().
					MasqueradePresent(mock.Anything, testWAN).
					Return(true, nil)
			},
			expectedStatus: bo.NATStatusActive,
		},
		{
			name: "enabled but forwarding off",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: true, WANInterface: testWAN}, nil)
				f.statusService.EXPECT().
					ForwardingEnabled().
					Return(false, nil)
				f.statusService.EXPECT().
					MasqueradePresent(mock.Anything, testWAN).
					Return(true, nil)
			},
			expectedStatus: bo.NATStatusConfiguredButInactive,
		},
		{
			name: "enabled but masquerade missing",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: true, WANInterface: testWAN}, nil)
				f.statusService.EXPECT().
					ForwardingEnabled().
					Return(true, nil)
				f.statusService.EXPECT().
					MasqueradePresent(mock.Anything, testWAN).
					Return(false, nil)
			},
			expectedStatus: bo.NATStatusConfiguredButInactive,
		},
		{
			name: "live checks unreadable degrade to inactive",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: true, WANInterface: testWAN}, nil)
				f.statusService.EXPECT().
					ForwardingEnabled().
					Return(false, errTestError)
				f.statusService.EXPECT().
					MasqueradePresent(mock.Anything, testWAN).
					Return(false, errTestError)
			},
			expectedStatus: bo.NATStatusConfiguredButInactive,
		},
		{
			name: "store error",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{}, errTestError)
			},
			expectedErr: errTestError,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := newService(t, f)

			status, err := service.Status(context.Background())
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedStatus, status)
		})
	}
}

func TestService_Resync(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name    string
		prepare func(f *serviceFields)
	}{
		{
			name: "no record is a no-op",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{}, errs.ErrNATNotConfigured)
			},
		},
		{
			name: "disabled record is a no-op",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{Enabled: false}, nil)
			},
		},
		{
			name: "enabled record reconverges without a new record",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{
						Enabled:        true,
						WANInterface:   testWAN,
						LANInterface:   testLAN,
						DHCPRangeStart: "192.168.100.50",
						DHCPRangeEnd:   "192.168.100.150",
						GatewayIP:      "192.168.100.1",
					}, nil)

				expectConverge(f)
			},
		},
		{
			name: "converge failure is swallowed",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					LatestNATConfig().
					Return(bo.NATConfig{
						Enabled:      true,
						WANInterface: testWAN,
						LANInterface: testLAN,
					}, nil)

				f.applierService.EXPECT().
					Apply(mock.Anything, mock.Anything).
					Return(ipconfig.ApplyReport{}, errTestError)
			},
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := newService(t, f)

			require.NoError(t, service.Resync(context.Background()))
		})
	}
}
