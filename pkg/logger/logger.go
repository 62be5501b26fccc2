// Package logger wraps op/go-logging with a single module-named console
// logger shared by the whole service.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

const module = "videoshare"

var logger *logging.Logger

// Init configures the console backend at the given level. Unknown level
// names fall back to INFO.
func Init(level string) {
	newLogger := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:2006/01/02 15:04:05} %{level} - %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)

	newLogger.SetBackend(leveled)
	logger = newLogger
}

func Debug(args ...any) {
	ensureInit()
	logger.Debug(args...)
}

func Info(args ...any) {
	ensureInit()
	logger.Info(args...)
}

func Warning(args ...any) {
	ensureInit()
	logger.Warning(args...)
}

func Error(args ...any) {
	ensureInit()
	logger.Error(args...)
}

func ensureInit() {
	if logger == nil {
		Init("info")
	}
}
