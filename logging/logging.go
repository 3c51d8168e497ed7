// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init sets the minimum level, e.g. "debug" or "warn".
func Init(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Logger() *logrus.Logger {
	return logger
}

func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func DebugEnabled() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
