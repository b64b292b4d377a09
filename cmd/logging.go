package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// configureLogging points logrus at w with the given level name.
func configureLogging(w io.Writer, level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
