package cmd

import (
	"errors"
	"fmt"
	"os"
)

// exitFunc terminates the process; tests swap it to record the code.
var exitFunc = os.Exit

// Execute runs the root command and maps its error to the process exit
// code: 2 when the transfer protocol did not complete, 1 for everything
// else (pre-flight, configuration, I/O).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errIncomplete) {
			exitFunc(exitIncomplete)
			return
		}
		exitFunc(exitFatal)
		return
	}
}
