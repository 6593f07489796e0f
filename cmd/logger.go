package cmd

import (
	"fmt"

	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"

	"github.com/jobforge/jobforge/config"
)

type plainFormatter int

func (*plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if len(entry.Data) > 0 {
		var data string
		for key, val := range entry.Data {
			data += fmt.Sprintf("%s: %v ", key, val)
		}
		return []byte(fmt.Sprintf("%s %s\n", entry.Message, data)), nil
	}
	return []byte(fmt.Sprintf("%s\n", entry.Message)), nil
}

// initDefaultLogger initializes a plain logger for commands that run
// before any project configuration is loaded
func initDefaultLogger() log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(config.LogLevelInfo),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}

// initClientLogger initializes the logger based on the log configuration
// of the project
func initClientLogger(logConfig config.LogConfig) log.Logger {
	if logConfig.Level == "" {
		return initDefaultLogger()
	}
	return log.NewLogrus(
		log.LogrusWithLevel(logConfig.Level),
		log.LogrusWithFormatter(new(plainFormatter)),
	)
}
