package cfgdir

import (
	"log/slog"

	"go.uber.org/zap"
)

// Logger 解析过程使用的最小日志接口。
//
// *slog.Logger 与 hclog.Logger 可直接使用；zap 通过 [NewZapLogger] 适配。
// 参数为交替的 key/value。
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger 丢弃所有日志，未指定 [WithLogger] 时使用。
func NopLogger() Logger {
	return slog.New(slog.DiscardHandler)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger 将 *zap.Logger 适配为 [Logger]。
func NewZapLogger(l *zap.Logger) Logger {
	return zapLogger{sugar: l.Sugar()}
}

func (l zapLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l zapLogger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l zapLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l zapLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }
