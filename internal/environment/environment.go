package environment

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/routeforge/netagent/internal/constants"
)

type Environment struct {
	Agent
}

type Agent struct {
	DataPath         string
	LogfilePath      string
	LogLevel         string
	ShellTimeout     time.Duration
	ResolvConfPath   string
	DNSMasqConfPath  string
	DNSMasqLeasePath string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.SetEnvPrefix("NETAGENT")
	v.AutomaticEnv()

	e.Agent.DataPath = v.GetString("DATA_PATH")
	if lo.IsEmpty(e.Agent.DataPath) {
		e.Agent.DataPath = constants.DefaultDataPath
	}

	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = constants.DefaultLogfilePath
	}

	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.Agent.LogLevel) {
		e.Agent.LogLevel = "info"
	}

	e.Agent.ShellTimeout = time.Duration(v.GetInt("SHELL_TIMEOUT")) * time.Second
	if e.Agent.ShellTimeout <= 0 {
		e.Agent.ShellTimeout = constants.DefaultShellTimeoutSeconds * time.Second
	}

	e.Agent.ResolvConfPath = v.GetString("RESOLV_CONF")
	if lo.IsEmpty(e.Agent.ResolvConfPath) {
		e.Agent.ResolvConfPath = constants.DefaultResolvConfPath
	}

	e.Agent.DNSMasqConfPath = v.GetString("DNSMASQ_CONF")
	if lo.IsEmpty(e.Agent.DNSMasqConfPath) {
		e.Agent.DNSMasqConfPath = constants.DefaultDNSMasqConfPath
	}

	e.Agent.DNSMasqLeasePath = v.GetString("DNSMASQ_LEASES")
	if lo.IsEmpty(e.Agent.DNSMasqLeasePath) {
		e.Agent.DNSMasqLeasePath = constants.DefaultDNSMasqLeasePath
	}

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}
