// Package commands models every host-facing OS interaction as a typed
// command, so call sites state intent instead of assembling argv strings.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Command struct {
	name string
	args []string
}

func (c Command) Name() string {
	return c.name
}

func (c Command) Args() []string {
	return c.args
}

func (c Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}

	return c.name + " " + strings.Join(c.args, " ")
}

// NewCustomCmd builds a command from a raw whitespace-separated line.
func NewCustomCmd(command string) Command {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Command{}
	}

	return Command{name: fields[0], args: fields[1:]}
}

// Link management.

func NewAddrFlushCmd(linkName string) Command {
	return Command{name: "ip", args: []string{"addr", "flush", "dev", linkName}}
}

func NewAddrAddCmd(linkName, cidr string) Command {
	return Command{name: "ip", args: []string{"addr", "add", cidr, "dev", linkName}}
}

func NewLinkUpCmd(linkName string) Command {
	return Command{name: "ip", args: []string{"link", "set", linkName, "up"}}
}

func NewLinkDownCmd(linkName string) Command {
	return Command{name: "ip", args: []string{"link", "set", linkName, "down"}}
}

func NewLinkMTUCmd(linkName string, mtu int) Command {
	return Command{name: "ip", args: []string{"link", "set", linkName, "mtu", strconv.Itoa(mtu)}}
}

// Routing.

func NewRouteDelDefaultCmd() Command {
	return Command{name: "ip", args: []string{"route", "del", "default"}}
}

func NewRouteReplaceDefaultCmd(gateway string) Command {
	return Command{name: "ip", args: []string{"route", "replace", "default", "via", gateway}}
}

// DHCP client.

func NewDHClientReleaseCmd(linkName string) Command {
	return Command{name: "dhclient", args: []string{"-r", linkName}}
}

func NewDHClientCmd(linkName string) Command {
	return Command{name: "dhclient", args: []string{linkName}}
}

// IP forwarding.

func NewIPForwardCmd(enabled bool) Command {
	value := "0"
	if enabled {
		value = "1"
	}

	return Command{name: "sysctl", args: []string{"-w", fmt.Sprintf("net.ipv4.ip_forward=%s", value)}}
}

// Packet filter / NAT.

func NewIptablesCmd(args ...string) Command {
	return Command{name: "iptables", args: args}
}

// Service management.

func NewSystemctlCmd(action, unit string) Command {
	return Command{name: "systemctl", args: []string{action, unit}}
}
