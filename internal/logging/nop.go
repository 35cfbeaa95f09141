package logging

import "github.com/indranet/coresched/types"

// NopLogger implements types.Logger by discarding everything.
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a logger that discards all output. It is the default when
// no logger option is provided.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (*NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (*NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (*NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (*NopLogger) Error(string, ...any) {}

// Fatal discards the message. Unlike production loggers it does not exit;
// a nop logger must never kill the host process.
func (*NopLogger) Fatal(string, ...any) {}
