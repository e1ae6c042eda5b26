package bo

import (
	"time"
)

// FirewallRule is the declarative record of one host firewall rule,
// uniquely keyed by RuleName. Hit counters are observational and refreshed
// from the host, never authored by callers.
type FirewallRule struct {
	RuleName         string   `json:"ruleName" validate:"required,min=1,max=128"`
	SourceIPs        []string `json:"sourceIps,omitempty" validate:"omitempty,dive,cidr"`
	DestinationIPs   []string `json:"destinationIps,omitempty" validate:"omitempty,dive,cidr"`
	SourcePorts      []string `json:"sourcePorts,omitempty"`
	DestinationPorts []string `json:"destinationPorts,omitempty"`
	Protocol         string   `json:"protocol" validate:"required,oneof=TCP UDP ICMP ANY"`
	Action           string   `json:"action" validate:"required,oneof=ALLOW DENY DROP REJECT"`
	Direction        string   `json:"direction" validate:"required,oneof=IN OUT BOTH"`
	Enabled          bool     `json:"enabled"`
	Priority         int      `json:"priority" validate:"min=1,max=1000"`

	Schedule *RuleSchedule `json:"schedule,omitempty"`

	HitCount  uint64     `json:"hitCount"`
	LastHit   *time.Time `json:"lastHit,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// RuleSchedule restricts a rule to a daily time window. The window is only
// actuated when both StartTime and EndTime are present.
type RuleSchedule struct {
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
	Days      []string `json:"days,omitempty"`
}

func (s *RuleSchedule) IsComplete() bool {
	return s != nil && s.StartTime != "" && s.EndTime != ""
}

type FirewallRules []FirewallRule
