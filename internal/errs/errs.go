package errs

import (
	"errors"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrInterfaceNotFound = errors.New("interface not found")
	ErrRuleNotFound      = errors.New("firewall rule not found")
	ErrNATNotConfigured  = errors.New("nat not configured")
)

var (
	ErrEnvironment  = errors.New("required binary or service is missing")
	ErrCriticalStep = errors.New("critical step failed")
	ErrShellTimeout = errors.New("command timed out")
)
