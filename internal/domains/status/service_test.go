package status_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/domains/status"
	"github.com/routeforge/netagent/internal/domains/status/status_mocks"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell/commands"
)

var errTestError = errors.New("test error")

type serviceFields struct {
	shellService     *status_mocks.IShellService
	inventoryService *status_mocks.IInventoryService
	statsReader      *status_mocks.IStatsReader
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		shellService:     status_mocks.NewIShellService(t),
		inventoryService: status_mocks.NewIInventoryService(t),
		statsReader:      status_mocks.NewIStatsReader(t),
	}
}

func newService(f *serviceFields, forwardProcPath string) *status.Service {
	return status.NewService(f.shellService, f.inventoryService, f.statsReader, forwardProcPath)
}

func TestService_AllStatistics(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)

	f.inventoryService.EXPECT().
		ListPhysicalInterfaces().
		Return(bo.PhysicalInterfaces{
			{Name: "eth0", Type: constants.InterfaceTypeEthernet},
			{Name: "wlan0", Type: constants.InterfaceTypeWireless},
		}, false)

	f.statsReader.EXPECT().
		Stats("eth0").
		Return(bo.InterfaceStatistics{Name: "eth0", RxBytes: 1024, TxBytes: 2048}, nil)

	// unreadable counters are skipped, not fatal
	f.statsReader.EXPECT().
		Stats("wlan0").
		Return(bo.InterfaceStatistics{}, errTestError)

	service := newService(f, "")

	stats := service.AllStatistics()
	require.Len(t, stats, 1)
	assert.Equal(t, "eth0", stats[0].Name)
	assert.Equal(t, uint64(1024), stats[0].RxBytes)
}

func TestService_ForwardingEnabled(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name            string
		procContent     string
		skipCreateFile  bool
		expectedEnabled bool
		wantErr         bool
	}{
		{name: "enabled", procContent: "1\n", expectedEnabled: true},
		{name: "disabled", procContent: "0\n"},
		{name: "unexpected content", procContent: "2\n"},
		{name: "missing proc entry", skipCreateFile: true, wantErr: true},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			forwardProcPath := filepath.Join(t.TempDir(), "ip_forward")
			if !testCase.skipCreateFile {
				require.NoError(t, os.WriteFile(forwardProcPath, []byte(testCase.procContent), 0600))
			}

			service := newService(newServiceFields(t), forwardProcPath)

			enabled, err := service.ForwardingEnabled()
			if testCase.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedEnabled, enabled)
		})
	}
}

func TestService_MasqueradePresent(t *testing.T) {
	t.Parallel()

	checkCmd := commands.NewIptablesCmd("-t", "nat", "-C", "POSTROUTING", "-o", "wlan0", "-j", "MASQUERADE")

	testTable := []struct {
		name            string
		execErr         error
		expectedPresent bool
		expectedErr     error
	}{
		{
			name:            "rule present",
			expectedPresent: true,
		},
		{
			name:    "non-zero exit means absent",
			execErr: errTestError,
		},
		{
			name:        "missing firewall binary",
			execErr:     errs.ErrEnvironment,
			expectedErr: errs.ErrEnvironment,
		},
		{
			name:        "probe timeout is an error, not absence",
			execErr:     errs.ErrShellTimeout,
			expectedErr: errs.ErrShellTimeout,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			f.shellService.EXPECT().
				Exec(mock.Anything, checkCmd).
				Return(testCase.execErr)

			service := newService(f, "")

			present, err := service.MasqueradePresent(context.Background(), "wlan0")
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedPresent, present)
		})
	}
}
