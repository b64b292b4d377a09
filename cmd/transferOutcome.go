package cmd

import "strconv"

// outcomePhase tells which step of the protocol produced an outcome.
type outcomePhase string

const (
	phaseProvision outcomePhase = "provision"
	phaseBulk      outcomePhase = "bulk"
	phaseItem      outcomePhase = "item"
)

// transferOutcome records one attempted unit of work. Item is nil for the
// provisioning and bulk steps. Err carries local failures (dial, timeout,
// spawn) that have no remote exit status; such outcomes use ExitCode -1.
type transferOutcome struct {
	Phase    outcomePhase
	Item     *transferItem
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Succeeded reports a zero exit status with no local error.
func (o transferOutcome) Succeeded() bool {
	return o.Err == nil && o.ExitCode == 0
}

// label is the identity shown in the report: the item path, or the phase in
// brackets for the provisioning and bulk steps.
func (o transferOutcome) label() string {
	if o.Item != nil {
		return o.Item.Path
	}
	return "[" + string(o.Phase) + "]"
}

// errorText is the captured failure text: stderr when present, else the
// local error, else the exit status.
func (o transferOutcome) errorText() string {
	switch {
	case o.Stderr != "":
		return o.Stderr
	case o.Err != nil:
		return o.Err.Error()
	case o.ExitCode != 0:
		return "exit status " + strconv.Itoa(o.ExitCode)
	}
	return ""
}
