package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInitGlobalLogger возвращается, если глобальный логгер не удалось собрать.
var ErrInitGlobalLogger = fmt.Errorf("failed to initialize global logger")

var (
	globalMu     sync.RWMutex
	globalLogger *Logger

	// fallbackLogger используется, когда ни контекст, ни процесс
	// не содержат логгера. Пишет только предупреждения и выше.
	fallbackLogger *Logger
)

// Непубличный тип ключа исключает коллизии с другими пакетами.
type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zl, _ := cfg.Build()
	fallbackLogger = &Logger{l: zl.With(zap.String("logger", "fallback"))}
}

// NewContext привязывает логгер к контексту запроса.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// InitGlobalLoggerWithLevel собирает глобальный логгер процесса с
// заданным уровнем. Повторный вызов ничего не меняет.
func InitGlobalLoggerWithLevel(env Environment, level string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger != nil {
		return nil
	}

	built, err := NewLogger(env, level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInitGlobalLogger, err)
	}
	globalLogger = built
	return nil
}

// SetGlobalLogger заменяет глобальный логгер процесса.
func SetGlobalLogger(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// Log возвращает логгер из контекста, иначе глобальный,
// иначе резервный.
func Log(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerKey).(*Logger); ok {
		return logger
	}

	globalMu.RLock()
	current := globalLogger
	globalMu.RUnlock()

	if current != nil {
		return current
	}
	return fallbackLogger
}
