// Package logger configures the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// Logger is the shared structured logger. Init must run before any
// package logs; main calls it right after loading configuration.
var Logger *zap.Logger

// Init builds the global logger. Production mode emits JSON for log
// shippers; anything else uses the human-readable development encoder.
func Init(env string) {
	var err error
	if env == "prod" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("logger init: " + err.Error())
	}
}

// Sync flushes buffered log entries. Deferred from main.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
