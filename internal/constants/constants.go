package constants

const (
	InterfaceTypeEthernet = "ethernet"
	InterfaceTypeWireless = "wireless"
	InterfaceTypeOther    = "other"

	LinkStateUp   = "up"
	LinkStateDown = "down"
)

const (
	IPModeStatic = "static"
	IPModeDHCP   = "dhcp"
)

const (
	ICSGatewayIP     = "192.168.100.1"
	ICSGatewayPrefix = 24
)

const (
	FirewallCommentPrefix = "netagent:"
	NATTaskKey            = "nat"
)

const (
	FilePerm     = 0755
	LogFilePerm  = 0644
	ConfFilePerm = 0644
)

const (
	DefaultDataPath         = "/var/lib/netagent/db"
	DefaultLogfilePath      = "/var/log/netagent/agent.log"
	DefaultResolvConfPath   = "/etc/resolv.conf"
	DefaultDNSMasqConfPath  = "/etc/netagent/dnsmasq.conf"
	DefaultDNSMasqLeasePath = "/var/lib/misc/dnsmasq.leases"
	DNSMasqUnit             = "dnsmasq"
	IPForwardProcPath       = "/proc/sys/net/ipv4/ip_forward"
	SysctlDropInPath        = "/etc/sysctl.d/90-netagent.conf"
)

// Store key prefixes. Documents are JSON-encoded under these namespaces.
const (
	StoreKeyInterfaceConfig = "ifcfg/"
	StoreKeyNATConfig       = "nat/"
	StoreKeyFirewallRule    = "fwrule/"
	StoreKeyAuditRecord     = "audit/"
)

const (
	DefaultShellTimeoutSeconds = 10
)
