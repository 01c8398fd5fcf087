package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *log.Logger

// Config holds logger configuration.
type Config struct {
	Debug bool
	// File, if set, additionally writes rotated logs to this path.
	File string
}

// Init sets up the global logger. Safe to call before Init: the package
// helpers fall back to a stderr logger.
func Init(cfg Config) {
	var writer io.Writer = os.Stderr
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
		Level:           level,
		Prefix:          "deptcal",
	})
}

func get() *log.Logger {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Level:           log.InfoLevel,
			Prefix:          "deptcal",
		})
	}
	return logger
}

func Debug(msg string, keyvals ...interface{}) {
	get().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	get().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	get().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	get().Error(msg, keyvals...)
}

func Fatal(msg string, keyvals ...interface{}) {
	get().Fatal(msg, keyvals...)
}
