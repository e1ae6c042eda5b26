package firewall_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/netagent/internal/domains/firewall"
	"github.com/routeforge/netagent/internal/domains/firewall/firewall_mocks"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell"
)

var errTestError = errors.New("test error")

const testRuleName = "allow-ssh"

type serviceFields struct {
	shellService *firewall_mocks.IShellService
	storeService *firewall_mocks.IStoreService
	taskRunner   *firewall_mocks.ITaskRunner
	auditService *firewall_mocks.IAuditService

	executed []string
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		shellService: firewall_mocks.NewIShellService(t),
		storeService: firewall_mocks.NewIStoreService(t),
		taskRunner:   firewall_mocks.NewITaskRunner(t),
		auditService: firewall_mocks.NewIAuditService(t),
	}
}

func newService(f *serviceFields) *firewall.Service {
	return firewall.NewService(
		f.shellService,
		f.storeService,
		f.taskRunner,
		f.auditService,
	)
}

func testRule() bo.FirewallRule {
	return bo.FirewallRule{
		RuleName:         testRuleName,
		Protocol:         "TCP",
		Action:           "ALLOW",
		Direction:        "IN",
		DestinationPorts: []string{"22"},
		Enabled:          true,
		Priority:         100,
	}
}

// expectInlineTask makes the background task run in the caller's goroutine
// so the host-side effects are observable within the test.
func expectInlineTask(f *serviceFields, key, name string) {
	f.taskRunner.EXPECT().
		Submit(key, name, mock.Anything).
		Run(func(_, _ string, fn func(ctx context.Context) error) {
			_ = fn(context.Background())
		}).
		Return()
}

// recordExec succeeds on add invocations and fails delete invocations after
// the first, mimicking a host that reports "no rule left to delete".
func recordExec(f *serviceFields) {
	deleted := map[string]bool{}
	f.shellService.EXPECT().
		Exec(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, command shell.ICommand) error {
			line := command.String()
			f.executed = append(f.executed, line)

			if command.Args()[0] == "-D" {
				if deleted[line] {
					return errTestError
				}
				deleted[line] = true
				return nil
			}

			return nil
		})
}

func TestService_Sync(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name             string
		rule             bo.FirewallRule
		prepare          func(f *serviceFields)
		expectedCommands []string
		wantErr          bool
		expectedErr      error
	}{
		{
			name: "enabled rule is persisted and installed",
			rule: testRule(),
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					PutFirewallRule(mock.MatchedBy(func(rule bo.FirewallRule) bool {
						return rule.RuleName == testRuleName && !rule.UpdatedAt.IsZero() && !rule.CreatedAt.IsZero()
					})).
					Return(nil)

				expectInlineTask(f, testRuleName, "firewall sync")
				recordExec(f)

				f.auditService.EXPECT().
					Record("firewall", "sync", testRuleName, true, mock.Anything).
					Return()
			},
			expectedCommands: []string{
				"iptables -D INPUT -p tcp -m multiport --dports 22 -m comment --comment netagent:allow-ssh -j ACCEPT",
				"iptables -D INPUT -p tcp -m multiport --dports 22 -m comment --comment netagent:allow-ssh -j ACCEPT",
				"iptables -A INPUT -p tcp -m multiport --dports 22 -m comment --comment netagent:allow-ssh -j ACCEPT",
			},
		},
		{
			name: "disabled rule only removes the host entry",
			rule: func() bo.FirewallRule {
				rule := testRule()
				rule.Enabled = false
				return rule
			}(),
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					PutFirewallRule(mock.Anything).
					Return(nil)

				expectInlineTask(f, testRuleName, "firewall sync")
				recordExec(f)

				f.auditService.EXPECT().
					Record("firewall", "sync", testRuleName, true, mock.Anything).
					Return()
			},
			expectedCommands: []string{
				"iptables -D INPUT -p tcp -m multiport --dports 22 -m comment --comment netagent:allow-ssh -j ACCEPT",
				"iptables -D INPUT -p tcp -m multiport --dports 22 -m comment --comment netagent:allow-ssh -j ACCEPT",
			},
		},
		{
			name: "struct validation failure",
			rule: func() bo.FirewallRule {
				rule := testRule()
				rule.Action = "PERMIT"
				return rule
			}(),
			wantErr: true,
		},
		{
			name: "port validation failure",
			rule: func() bo.FirewallRule {
				rule := testRule()
				rule.DestinationPorts = []string{"443-80"}
				return rule
			}(),
			expectedErr: errs.ErrValidation,
		},
		{
			name: "store failure",
			rule: testRule(),
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					PutFirewallRule(mock.Anything).
					Return(errTestError)
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

			service := newService(f)

			err := service.Sync(testCase.rule)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedCommands, f.executed)
		})
	}
}

func TestService_Remove(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		prepare     func(f *serviceFields)
		expectedErr error
	}{
		{
			name: "happy path",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					GetFirewallRule(testRuleName).
					Return(testRule(), nil)
				f.storeService.EXPECT().
					DeleteFirewallRule(testRuleName).
					Return(nil)

				expectInlineTask(f, testRuleName, "firewall remove")
				recordExec(f)
			},
		},
		{
			name: "unknown rule",
			prepare: func(f *serviceFields) {
				f.storeService.EXPECT().
					GetFirewallRule(testRuleName).
					Return(bo.FirewallRule{}, errs.ErrRuleNotFound)
			},
			expectedErr: errs.ErrRuleNotFound,
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

			err := service.Remove(testRuleName)
			if testCase.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Replace(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)

	newRule := testRule()
	newRule.RuleName = "allow-ssh-v2"

	f.storeService.EXPECT().
		GetFirewallRule(testRuleName).
		Return(testRule(), nil)
	f.storeService.EXPECT().
		DeleteFirewallRule(testRuleName).
		Return(nil)
	f.storeService.EXPECT().
		PutFirewallRule(mock.MatchedBy(func(rule bo.FirewallRule) bool {
			return rule.RuleName == newRule.RuleName
		})).
		Return(nil)

	// host sync runs on per-rule lanes, the records are already swapped
	f.taskRunner.EXPECT().
		Submit(testRuleName, "firewall remove", mock.Anything).
		Return()
	f.taskRunner.EXPECT().
		Submit(newRule.RuleName, "firewall sync", mock.Anything).
		Return()

	service := newService(f)

	require.NoError(t, service.Replace(testRuleName, newRule))
}

func TestService_ResyncAll(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)

	ruleA := testRule()
	ruleB := testRule()
	ruleB.RuleName = "allow-dns"

	f.storeService.EXPECT().
		ListFirewallRules().
		Return(bo.FirewallRules{ruleA, ruleB}, nil)

	f.taskRunner.EXPECT().
		Submit(ruleA.RuleName, "firewall resync", mock.Anything).
		Return()
	f.taskRunner.EXPECT().
		Submit(ruleB.RuleName, "firewall resync", mock.Anything).
		Return()

	service := newService(f)

	require.NoError(t, service.ResyncAll())
}
