package cmd

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the structured run summary written with --report.
type yamlReport struct {
	Name        string        `yaml:"name,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Generated   string        `yaml:"generated"`
	Target      yamlTarget    `yaml:"target"`
	Mode        string        `yaml:"mode"`
	ExitCode    int           `yaml:"exit_code"`
	Provision   *yamlOutcome  `yaml:"provision,omitempty"`
	Outcomes    []yamlOutcome `yaml:"outcomes"`
}

// yamlTarget describes where the run wrote to. Only the credential
// reference is recorded, never the secret.
type yamlTarget struct {
	Host       string `yaml:"host"`
	User       string `yaml:"user,omitempty"`
	Path       string `yaml:"path"`
	Credential string `yaml:"credential"`
}

// yamlOutcome records one attempted unit of work.
type yamlOutcome struct {
	Phase    string `yaml:"phase"`
	Item     string `yaml:"item,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
	Command  string `yaml:"command"`
	ExitCode int    `yaml:"exit_code"`
	Error    string `yaml:"error,omitempty"`
	Stdout   string `yaml:"stdout,omitempty"`
	Stderr   string `yaml:"stderr,omitempty"`
}

// newYAMLReport seeds a report with run metadata and a generated timestamp.
func newYAMLReport(cfg *runConfig) *yamlReport {
	return &yamlReport{
		Name:        cfg.Name,
		Description: cfg.Description,
		Generated:   time.Now().Format(time.RFC3339),
		Target: yamlTarget{
			Host:       cfg.Target.Host,
			User:       cfg.Target.User,
			Path:       cfg.Target.Path,
			Credential: cfg.Target.Credential.String(),
		},
		Outcomes: []yamlOutcome{},
	}
}

// addOutcome appends o beneath the report's outcome list.
func (r *yamlReport) addOutcome(o transferOutcome) {
	r.Outcomes = append(r.Outcomes, toYAMLOutcome(o))
}

// setProvision records the remote directory creation step.
func (r *yamlReport) setProvision(o transferOutcome) {
	res := toYAMLOutcome(o)
	r.Provision = &res
}

func toYAMLOutcome(o transferOutcome) yamlOutcome {
	res := yamlOutcome{
		Phase:    string(o.Phase),
		Command:  o.Command,
		ExitCode: o.ExitCode,
		Stdout:   o.Stdout,
		Stderr:   o.Stderr,
	}
	if o.Item != nil {
		res.Item = o.Item.Path
		res.Kind = string(o.Item.Kind)
	}
	if o.Err != nil {
		res.Error = o.Err.Error()
	}
	return res
}

// writeYAMLReport serializes the report to YAML with two-space indentation.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}
