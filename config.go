package main

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// envInt reads an integer default from the environment, falling back to def
// when the variable is unset or malformed.
func envInt(name string, def int) int {
	given := os.Getenv(name)
	if given == "" {
		return def
	}
	v, err := strconv.Atoi(given)
	if err != nil {
		return def
	}
	return v
}

func envString(name, def string) string {
	if given := os.Getenv(name); given != "" {
		return given
	}
	return def
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level == "" {
		return log
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warn("ignoring log level")
		return log
	}
	log.SetLevel(lvl)
	return log
}
