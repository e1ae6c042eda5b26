package dto

// Result is the envelope returned for every mutation and validation call.
// Success means "accepted and validated", not "fully applied": final truth
// requires a follow-up status query.
type Result struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data,omitempty"`
	Message  string   `json:"message,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func OK(data any, message string) Result {
	return Result{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func Fail(message string, errs ...string) Result {
	return Result{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

type NATEnableResult struct {
	Success      bool   `json:"success"`
	WANInterface string `json:"wanInterface"`
	LANInterface string `json:"lanInterface"`
	GatewayIP    string `json:"gatewayIp"`
	DHCPRange    string `json:"dhcpRange"`
}
