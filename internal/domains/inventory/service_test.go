package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/domains/inventory"
	"github.com/routeforge/netagent/internal/domains/inventory/inventory_mocks"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
)

var errTestError = errors.New("test error")

type serviceFields struct {
	linkLister *inventory_mocks.ILinkLister
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		linkLister: inventory_mocks.NewILinkLister(t),
	}
}

func newService(f *serviceFields) *inventory.Service {
	return inventory.NewService(f.linkLister, inventory.NewPrefixClassifier())
}

func TestPrefixClassifier_Classify(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		linkName     string
		expectedType string
	}{
		{linkName: "eth0", expectedType: constants.InterfaceTypeEthernet},
		{linkName: "enp3s0", expectedType: constants.InterfaceTypeEthernet},
		{linkName: "eno1", expectedType: constants.InterfaceTypeEthernet},
		{linkName: "ens18", expectedType: constants.InterfaceTypeEthernet},
		{linkName: "em1", expectedType: constants.InterfaceTypeEthernet},
		{linkName: "wlan0", expectedType: constants.InterfaceTypeWireless},
		{linkName: "wlp2s0", expectedType: constants.InterfaceTypeWireless},
		{linkName: "wlx00c0ca", expectedType: constants.InterfaceTypeWireless},
		{linkName: "sit0", expectedType: constants.InterfaceTypeOther},
		{linkName: "usb0", expectedType: constants.InterfaceTypeOther},
	}

	classifier := inventory.NewPrefixClassifier()
	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.linkName, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expectedType, classifier.Classify(testCase.linkName))
		})
	}
}

func TestService_ListPhysicalInterfaces(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name               string
		prepare            func(f *serviceFields)
		expectedInterfaces bo.PhysicalInterfaces
		expectedDegraded   bool
	}{
		{
			name: "virtual links are filtered out",
			prepare: func(f *serviceFields) {
				f.linkLister.EXPECT().
					ListLinks().
					Return([]inventory.Link{
						{Name: "lo", Up: true},
						{Name: "eth0", MAC: "aa:bb:cc:dd:ee:01", Up: true},
						{Name: "docker0", Up: true},
						{Name: "veth12ab", Up: true},
						{Name: "br-9f1c", Up: true},
						{Name: "wlan0", MAC: "aa:bb:cc:dd:ee:02", Up: false},
						{Name: "wg0", Up: true},
					}, nil)
			},
			expectedInterfaces: bo.PhysicalInterfaces{
				{
					Name:        "eth0",
					DisplayName: "Ethernet (eth0)",
					Type:        constants.InterfaceTypeEthernet,
					LinkState:   constants.LinkStateUp,
					MACAddress:  "aa:bb:cc:dd:ee:01",
				},
				{
					Name:        "wlan0",
					DisplayName: "Wireless (wlan0)",
					Type:        constants.InterfaceTypeWireless,
					LinkState:   constants.LinkStateDown,
					MACAddress:  "aa:bb:cc:dd:ee:02",
				},
			},
		},
		{
			name: "unclassified link is kept as other",
			prepare: func(f *serviceFields) {
				f.linkLister.EXPECT().
					ListLinks().
					Return([]inventory.Link{
						{Name: "usb0", Up: true},
					}, nil)
			},
			expectedInterfaces: bo.PhysicalInterfaces{
				{
					Name:        "usb0",
					DisplayName: "Interface (usb0)",
					Type:        constants.InterfaceTypeOther,
					LinkState:   constants.LinkStateUp,
				},
			},
		},
		{
			name: "enumeration failure serves the fallback pair",
			prepare: func(f *serviceFields) {
				f.linkLister.EXPECT().
					ListLinks().
					Return(nil, errTestError)
			},
			expectedInterfaces: bo.PhysicalInterfaces{
				{
					Name:        "eth0",
					DisplayName: "Ethernet (eth0)",
					Type:        constants.InterfaceTypeEthernet,
					LinkState:   constants.LinkStateDown,
				},
				{
					Name:        "wlan0",
					DisplayName: "Wireless (wlan0)",
					Type:        constants.InterfaceTypeWireless,
					LinkState:   constants.LinkStateDown,
				},
			},
			expectedDegraded: true,
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

			service := newService(f)

			interfaces, degraded := service.ListPhysicalInterfaces()
			assert.Equal(t, testCase.expectedDegraded, degraded)
			assert.Equal(t, testCase.expectedInterfaces, interfaces)
		})
	}
}

func TestService_Resolve(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name         string
		resolveName  string
		expectedType string
		expectedErr  error
	}{
		{
			name:         "known interface",
			resolveName:  "eth0",
			expectedType: constants.InterfaceTypeEthernet,
		},
		{
			name:        "unknown interface",
			resolveName: "eth7",
			expectedErr: errs.ErrInterfaceNotFound,
		},
		{
			name:        "denylisted interface is not resolvable",
			resolveName: "docker0",
			expectedErr: errs.ErrInterfaceNotFound,
		},
	}

	for _, testCase := range testTable {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			f.linkLister.EXPECT().
				ListLinks().
				Return([]inventory.Link{
					{Name: "eth0", Up: true},
					{Name: "docker0", Up: true},
				}, nil)

			service := newService(f)

			physicalInterface, err := service.Resolve(testCase.resolveName)
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.resolveName, physicalInterface.Name)
			assert.Equal(t, testCase.expectedType, physicalInterface.Type)
		})
	}
}
