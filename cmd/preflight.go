package cmd

import (
	"fmt"
	"strings"
)

// missingDependencyError lists the local client tools that are not on PATH.
type missingDependencyError struct {
	Tools []string
}

func (e *missingDependencyError) Error() string {
	return fmt.Sprintf("%s: %s not found in PATH", errMissingDependency, strings.Join(e.Tools, ", "))
}

func (e *missingDependencyError) Unwrap() error { return errMissingDependency }

// requiredTools lists the local binaries a run cannot do without. rsync is
// deliberately absent: without it the bulk mirror fails and the itemized
// scp fallback takes over.
func requiredTools(c credential, provision string) []string {
	tools := []string{"scp"}
	if provision == provisionTool {
		tools = append(tools, "ssh")
	}
	if _, _, ok := c.sshpassSecret(); ok {
		tools = append(tools, "sshpass")
	}
	return tools
}

// checkTools verifies every tool is on PATH, reporting all missing ones.
func checkTools(tools []string) error {
	var missing []string
	for _, tool := range tools {
		if _, err := lookPathFunc(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return &missingDependencyError{Tools: missing}
	}
	return nil
}
