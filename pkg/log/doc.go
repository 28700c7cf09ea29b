// Package log provides the structured logging abstraction used across
// timsdf.
//
// The [Logger] interface decouples the reader from any particular logging
// library. The default adapter wraps zerolog; [Noop] discards everything and
// is the default for library embedding so that importing timsdf never
// produces output unless the caller asks for it.
package log
