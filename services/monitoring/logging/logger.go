package logging

import (
	"log/syslog"

	"github.com/sirupsen/logrus"
	logrusSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

type Logger struct {
	*logrus.Logger
}

// NewLogger builds the shared JSON logger. Papertrail forwarding is attached
// only when an endpoint is configured; failing to reach it is not fatal.
func NewLogger(papertrail string, appName string) *Logger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})

	if papertrail != "" {
		hook, err := logrusSyslog.NewSyslogHook("udp", papertrail, syslog.LOG_INFO, appName)
		if err != nil {
			log.Error("Unable to connect to Papertrail")
		} else {
			log.Hooks.Add(hook)
		}
	}

	return &Logger{
		log,
	}
}

// NewTestLogger returns a logger that stays quiet unless something panics.
func NewTestLogger() *Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &Logger{
		log,
	}
}
