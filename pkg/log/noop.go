package log

// Noop implements Logger by discarding all log messages.
// It is the default logger for library embedding.
type Noop struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *Noop {
	return &Noop{}
}

// Debug discards the message.
func (Noop) Debug(msg string, fields ...Field) {}

// Info discards the message.
func (Noop) Info(msg string, fields ...Field) {}

// Warn discards the message.
func (Noop) Warn(msg string, fields ...Field) {}

// Error discards the message.
func (Noop) Error(msg string, fields ...Field) {}
