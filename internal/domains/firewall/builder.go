package firewall

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/errs"
	"github.com/routeforge/netagent/internal/objects/bo"
	"github.com/routeforge/netagent/internal/shell"
	"github.com/routeforge/netagent/internal/shell/commands"
)

var actionTargets = map[string]string{
	"ALLOW":  "ACCEPT",
	"DENY":   "DROP",
	"DROP":   "DROP",
	"REJECT": "REJECT",
}

// buildAddCommands translates one declarative rule into host firewall add
// invocations. Direction BOTH expands into both chains.
func buildAddCommands(rule bo.FirewallRule) (addCommands []shell.ICommand, err error) {
	args, err := ruleMatchArgs(rule)
	if err != nil {
		return addCommands, fmt.Errorf("buildAddCommands: %w", err)
	}

	for _, chain := range chainsFor(rule.Direction) {
		addArgs := append([]string{"-A", chain}, args...)
		addCommands = append(addCommands, commands.NewIptablesCmd(addArgs...))
	}

	return addCommands, nil
}

// buildDeleteCommands translates the same rule into best-effort delete
// invocations keyed by identical match args.
func buildDeleteCommands(rule bo.FirewallRule) (deleteCommands []shell.ICommand, err error) {
	args, err := ruleMatchArgs(rule)
	if err != nil {
		return deleteCommands, fmt.Errorf("buildDeleteCommands: %w", err)
	}

	for _, chain := range chainsFor(rule.Direction) {
		deleteArgs := append([]string{"-D", chain}, args...)
		deleteCommands = append(deleteCommands, commands.NewIptablesCmd(deleteArgs...))
	}

	return deleteCommands, nil
}

func chainsFor(direction string) []string {
	switch direction {
	case "IN":
		return []string{"INPUT"}
	case "OUT":
		return []string{"OUTPUT"}
	default:
		return []string{"INPUT", "OUTPUT"}
	}
}

func ruleMatchArgs(rule bo.FirewallRule) (args []string, err error) {
	if rule.Protocol != "ANY" {
		args = append(args, "-p", strings.ToLower(rule.Protocol))
	}

	if len(rule.SourceIPs) > 0 {
		args = append(args, "-s", strings.Join(rule.SourceIPs, ","))
	}

	if len(rule.DestinationIPs) > 0 {
		args = append(args, "-d", strings.Join(rule.DestinationIPs, ","))
	}

	// port matches only make sense for port-carrying protocols
	if rule.Protocol == "TCP" || rule.Protocol == "UDP" {
		if len(rule.SourcePorts) > 0 {
			args = append(args, "-m", "multiport", "--sports", joinPorts(rule.SourcePorts))
		}

		if len(rule.DestinationPorts) > 0 {
			args = append(args, "-m", "multiport", "--dports", joinPorts(rule.DestinationPorts))
		}
	}

	if rule.Schedule.IsComplete() {
		args = append(args, "-m", "time",
			"--timestart", rule.Schedule.StartTime,
			"--timestop", rule.Schedule.EndTime,
		)
		if len(rule.Schedule.Days) > 0 {
			args = append(args, "--weekdays", strings.Join(rule.Schedule.Days, ","))
		}
	}

	args = append(args, "-m", "comment", "--comment", constants.FirewallCommentPrefix+rule.RuleName)

	target, ok := actionTargets[rule.Action]
	if !ok {
		return args, fmt.Errorf("ruleMatchArgs: action %q: %w", rule.Action, errs.ErrValidation)
	}

	return append(args, "-j", target), nil
}

// joinPorts joins port entries into the comma-list form the host expects,
// with range separators normalized.
func joinPorts(ports []string) string {
	normalized := lo.Map(ports, func(port string, _ int) string {
		return strings.ReplaceAll(port, "-", ":")
	})

	return strings.Join(normalized, ",")
}

// validatePortList accepts single ports and lo-hi ranges within 1..65535.
func validatePortList(ports []string) (err error) {
	for _, port := range ports {
		lowRaw, highRaw, isRange := strings.Cut(port, "-")

		low, err := parsePort(lowRaw)
		if err != nil {
			return fmt.Errorf("validatePortList: %q: %w", port, errs.ErrValidation)
		}

		if !isRange {
			continue
		}

		high, err := parsePort(highRaw)
		if err != nil || high < low {
			return fmt.Errorf("validatePortList: %q: %w", port, errs.ErrValidation)
		}
	}

	return nil
}

func parsePort(raw string) (port int, err error) {
	if port, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil {
		return 0, err
	}

	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}

	return port, nil
}
