package ports

import "github.com/ims-labs/timsdf/pkg/log"

// Logger is the structured logging port. It aliases pkg/log so adapters and
// the core share one logging vocabulary without importing each other.
type Logger = log.Logger

// Field is a structured logging key/value pair.
type Field = log.Field

// Field constructors, re-exported for call sites inside the core.
var (
	String   = log.String
	Int      = log.Int
	Int64    = log.Int64
	Float64  = log.Float64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
