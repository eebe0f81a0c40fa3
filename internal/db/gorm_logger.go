package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// zapWriter adapts zap to the printf sink gorm's logger expects.
type zapWriter struct {
	log *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...any) {
	w.log.Warnf(format, args...)
}

func newGormLogger(log *zap.Logger) logger.Interface {
	return logger.New(
		zapWriter{log: log.Named("gorm").Sugar()},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
