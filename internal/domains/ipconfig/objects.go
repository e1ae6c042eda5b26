package ipconfig

// StepResult is the outcome of one ordered OS operation in an apply
// sequence.
type StepResult struct {
	Name     string `json:"name"`
	Critical bool   `json:"critical"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}

// ApplyReport lists the per-step outcomes of one apply run. There is no
// automatic rollback: a failed run can leave the interface partially
// configured, and the report is the record of how far it got.
type ApplyReport struct {
	Interface string       `json:"interface"`
	Steps     []StepResult `json:"steps"`
	Aborted   bool         `json:"aborted"`
}

func (r ApplyReport) Failed() []StepResult {
	var failed []StepResult
	for _, step := range r.Steps {
		if !step.OK {
			failed = append(failed, step)
		}
	}

	return failed
}
