package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger (re)creates the shared logger with the level from LOG_LEVEL.
func InitLogger() {
	Logger = newLogger(os.Getenv("LOG_LEVEL"))
}

// newLogger creates a logger at the given level, falling back to info when
// the level is empty or invalid.
func newLogger(levelName string) *logrus.Logger {
	log := logrus.New()

	if levelName == "" {
		levelName = "info"
	}

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'info'\n", levelName)
		level = logrus.InfoLevel
	}

	log.SetLevel(level)

	return log
}
