package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// GetLogger returns the process-wide JSON logger, creating it on first use.
func GetLogger() *logrus.Logger {
	if logg != nil {
		return logg
	}

	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logg.SetLevel(lvl)
	}
	return logg
}

// LogError records a failure with enough context to find the call site.
func LogError(moduleName, funcName, context string, data any, err error) {
	GetLogger().WithFields(logrus.Fields{
		"module":   moduleName,
		"function": funcName,
		"context":  context,
		"data":     data,
	}).Error(err)
}
