package bo

import (
	"time"
)

// AuditRecord is one timestamped account of a mutation attempt, stored for
// an external log collector.
type AuditRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Component string    `json:"component"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
}
