package db

import (
	"gorm.io/gorm/logger"
)

// NewLogger maps the app's log level onto gorm's. SQL statement logging is
// only useful at debug and below.
func NewLogger(level string) logger.Interface {
	switch level {
	case "trace", "debug":
		return logger.Default.LogMode(logger.Info)
	case "warn":
		return logger.Default.LogMode(logger.Warn)
	case "error":
		return logger.Default.LogMode(logger.Error)
	default:
		return logger.Default.LogMode(logger.Silent)
	}
}
