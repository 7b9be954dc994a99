package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger forwards gorm's statement log to zap.
type GormLogger struct {
	zl            *zap.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger builds a gorm logger whose level follows the application log level.
func NewGormLogger(zl *zap.Logger, appLevel string, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{zl: zl.WithOptions(zap.AddCallerSkip(3)), level: ToGormLogLevel(appLevel), slowThreshold: slowThreshold}
}

// ToGormLogLevel maps application LogLevel to GORM's logger level.
func ToGormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		// shows every statement
		return logger.Info
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		l.zl.Sugar().Infof(msg, args...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		l.zl.Sugar().Warnf(msg, args...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		l.zl.Sugar().Errorf(msg, args...)
	}
}

// Trace logs failed statements at error, slow ones at warn and the rest at debug.
// Constraint violations are expected client errors and are not logged as failures.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql)}

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound) && !isClientDBError(err):
		l.zl.Error("sql failed", append(fields, zap.Error(err))...)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.zl.Warn(fmt.Sprintf("slow sql >= %v", l.slowThreshold), fields...)
	case l.level >= logger.Info:
		l.zl.Debug("sql", fields...)
	}
}

func isClientDBError(err error) bool {
	ae, ok := AsAppError(err)
	if ok {
		return ae.Kind == KindConstraint
	}
	code, _, ok := PgErrorCode(err)
	switch code {
	case CodeInvalidTextRepresentation, CodeNumericValueOutOfRange, CodeNotNullViolation, CodeForeignKeyViolation:
		return ok
	}
	return false
}
