package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures logrus for JSON output. When LOG_FILE is set the
// log goes there, otherwise to stdout.
func InitLogger() {
	logrus.SetOutput(os.Stdout)

	if path := os.Getenv("LOG_FILE"); path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", path, err)
		} else {
			logrus.SetOutput(logFile)
		}
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Logger initialized")
}
