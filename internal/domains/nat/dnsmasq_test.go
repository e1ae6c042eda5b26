package nat_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/netagent/internal/domains/nat"
	"github.com/routeforge/netagent/internal/domains/nat/nat_mocks"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell/commands"
)

func TestDNSMasqManager_Apply(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	confPath := filepath.Join(dir, "conf", "netagent-ics.conf")
	leasePath := filepath.Join(dir, "dnsmasq.leases")

	shellService := nat_mocks.NewIShellService(t)
	shellService.EXPECT().
		Exec(mock.Anything, commands.NewSystemctlCmd("restart", "dnsmasq")).
		Return(nil)
	shellService.EXPECT().
		Exec(mock.Anything, commands.NewSystemctlCmd("enable", "dnsmasq")).
		Return(nil)

	manager := nat.NewDNSMasqManager(shellService, confPath, leasePath)

	err := manager.Apply(context.Background(), testLAN, "192.168.100.50", "192.168.100.150", "192.168.100.1")
	require.NoError(t, err)

	data, err := os.ReadFile(confPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "bind-interfaces\n")
	assert.Contains(t, content, "port=0\n")
	assert.Contains(t, content, "dhcp-leasefile="+leasePath+"\n")
	assert.Contains(t, content, "interface="+testLAN+"\n")
	assert.Contains(t, content, "dhcp-range="+testLAN+",192.168.100.50,192.168.100.150,12h\n")
	assert.Contains(t, content, "dhcp-option="+testLAN+",3,192.168.100.1\n")
}

func TestDNSMasqManager_Leases(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name           string
		leaseContent   string
		skipCreateFile bool
		expectedLeases []bo.DHCPLease
	}{
		{
			name:           "missing lease file",
			skipCreateFile: true,
		},
		{
			name: "parses entries and skips short lines",
			leaseContent: `1756700000 aa:bb:cc:dd:ee:01 192.168.100.51 laptop 01:aa:bb:cc:dd:ee:01
1756700100 aa:bb:cc:dd:ee:02 192.168.100.52 phone *
garbage line
`,
			expectedLeases: []bo.DHCPLease{
				{
					Expiry:   time.Unix(1756700000, 0).UTC(),
					MAC:      "aa:bb:cc:dd:ee:01",
					IP:       "192.168.100.51",
					Hostname: "laptop",
				},
				{
					Expiry:   time.Unix(1756700100, 0).UTC(),
					MAC:      "aa:bb:cc:dd:ee:02",
					IP:       "192.168.100.52",
					Hostname: "phone",
				},
			},
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			leasePath := filepath.Join(t.TempDir(), "dnsmasq.leases")
			if !testCase.skipCreateFile {
				require.NoError(t, os.WriteFile(leasePath, []byte(testCase.leaseContent), 0600))
			}

			manager := nat.NewDNSMasqManager(nat_mocks.NewIShellService(t), "", leasePath)

			leases, err := manager.Leases()
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedLeases, leases)
		})
	}
}

func TestService_ListLeases(t *testing.T) {
	t.Parallel()

	leases := []bo.DHCPLease{
		{MAC: "aa:bb:cc:dd:ee:01", IP: "192.168.100.51", Hostname: "laptop"},
		{MAC: "aa:bb:cc:dd:ee:02", IP: "10.0.0.7", Hostname: "stray"},
	}

	testTable := []struct {
		name           string
		filterCIDR     *string
		expectContains []string
		expectOmits    []string
		expectedErr    bool
	}{
		{
			name:           "unfiltered includes every lease",
			expectContains: []string{"192.168.100.51", "10.0.0.7", "HOSTNAME"},
		},
		{
			name:           "cidr filter scopes to the shared subnet",
			filterCIDR:     ptr("192.168.100.0/24"),
			expectContains: []string{"192.168.100.51"},
			expectOmits:    []string{"10.0.0.7"},
		},
		{
			name:        "invalid cidr",
			filterCIDR:  ptr("not-a-cidr"),
			expectedErr: true,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			f.dnsmasqManager.EXPECT().
				Leases().
				Return(leases, nil)

			service := newService(t, f)

			output, err := service.ListLeases(testCase.filterCIDR)
			if testCase.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, expected := range testCase.expectContains {
				assert.Contains(t, output, expected)
			}
			for _, omitted := range testCase.expectOmits {
				assert.NotContains(t, output, omitted)
			}
		})
	}
}

func ptr(s string) *string {
	return &s
}
