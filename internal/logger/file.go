package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// logFileMaxSizeMB is the size at which the log file is rotated.
	logFileMaxSizeMB = 10
	// logFileMaxBackups is the number of rotated files kept on disk.
	logFileMaxBackups = 3
	// logFileMaxAgeDays is how long rotated files are kept.
	logFileMaxAgeDays = 14
)

// NewWithFile creates a logger that writes to stderr and, in JSON form,
// to a rotating log file at filename.
// If level is nil, the package-wide atomic level is used.
func NewWithFile(level zapcore.LevelEnabler, filename string) *zap.SugaredLogger {
	if level == nil {
		level = atomicLevel
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(newConsoleEncoder(), zapcore.Lock(os.Stderr), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileWriter, level),
	)

	return zap.New(core).Sugar()
}
