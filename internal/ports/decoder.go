package ports

import (
	"context"

	"github.com/ims-labs/timsdf/internal/domain"
)

// FrameDecoder is an open decoding session against a store's raw container.
// A session is created once per handle, is not safe for concurrent Decode
// calls, and must be closed exactly once.
//
// Decode resolves the frame's byte range from its catalogue row, decodes
// the raw bytes, and returns five parallel columns together with their
// shared length. Every column crossing this boundary carries an explicit
// length; the caller owns the returned slices and the session keeps no
// reference to them.
type FrameDecoder interface {
	// Decode decodes the frame described by meta.
	// Failures are reported as *domain.DecodeError carrying the decoder's
	// status code. After Close, Decode returns domain.ErrSessionClosed.
	Decode(ctx context.Context, meta domain.FrameMeta) (domain.RawColumns, error)

	// Close releases the session's resources. Close is idempotent.
	Close() error
}
