package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. Init must run before anything logs;
// main wires it up before the repositories and the status feed.
var Logger *zap.Logger

// Init builds the global logger. Production gets JSON at info level for
// log shippers; every other environment gets a colored console logger at
// debug level.
func Init(environment string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"

	log, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		// Every line names the emitting service; the equipment feed and
		// the API log into the same stream.
		zap.Fields(zap.String("service", "fleet-equipment-tracker")),
	)
	if err != nil {
		return err
	}

	Logger = log
	zap.ReplaceGlobals(Logger)

	return nil
}

// Sync flushes buffered entries; main defers it.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// WithRequestID returns a child logger carrying the request id, so every
// entry for one request correlates.
func WithRequestID(requestID string) *zap.Logger {
	return Logger.With(zap.String("request_id", requestID))
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}
