package logging

import "github.com/sirupsen/logrus"

// New builds the process logger from config values.
func New(level, format string) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
