package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the timsdf domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrCatalogue is returned when the metadata catalogue is missing,
	// unreadable, or its rows do not have the expected shape.
	ErrCatalogue = errors.New("timsdf: metadata catalogue error")

	// ErrDecoderLoad is returned when the frame decoder cannot be opened
	// against the raw container.
	ErrDecoderLoad = errors.New("timsdf: decoder load error")

	// ErrStoreOpen is returned when opening a data store fails. It always
	// wraps the underlying cause (ErrCatalogue or ErrDecoderLoad).
	ErrStoreOpen = errors.New("timsdf: store open error")

	// ErrFrameNotFound is returned when a frame id is absent from the index.
	// The handle remains valid; only the single retrieval fails.
	ErrFrameNotFound = errors.New("timsdf: frame not found")

	// ErrHandleClosed is returned by any retrieval after Close.
	ErrHandleClosed = errors.New("timsdf: handle closed")

	// ErrSessionClosed is returned when a decoder session is used after
	// its Close. Using a closed session is a programming error and fails
	// loudly rather than returning empty columns.
	ErrSessionClosed = errors.New("timsdf: decoder session closed")

	// ErrDecode is the sentinel matched by every *DecodeError.
	ErrDecode = errors.New("timsdf: frame decode error")

	// ErrColumnMismatch is returned when decoded column lengths disagree
	// with the reported peak count.
	ErrColumnMismatch = errors.New("timsdf: column length mismatch")
)

// Decode error codes, mirroring the decoder's native status values.
const (
	DecodeCodeOutOfRange  = 1 // byte range lies outside the container
	DecodeCodeCorrupt     = 2 // blob header or payload is malformed
	DecodeCodeIO          = 3 // reading the container failed
	DecodeCodeBadChecksum = 4 // decompressed payload shorter than declared
)

// DecodeError reports a decode failure for a specific frame. It carries the
// decoder's numeric status code so callers can distinguish corrupt frames
// from I/O failures. A DecodeError never invalidates the handle.
type DecodeError struct {
	FrameID int64
	Code    int
	Err     error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("timsdf: decode frame %d failed (code %d): %v", e.FrameID, e.Code, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports true for ErrDecode so errors.Is(err, ErrDecode) matches.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
