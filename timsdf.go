// Package timsdf reads Bruker timsTOF acquisition stores (.d directories).
//
// Example usage:
//
//	h, err := timsdf.Open("/data/run_2024.d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//	frame, err := h.Frame(ctx, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(frame.NumPeaks())
//
// This package re-exports the public API from pkg/timsdf for callers that
// prefer importing the module root.
package timsdf

import (
	"github.com/ims-labs/timsdf/pkg/timsdf"
)

// Handle is an open store: the frame index plus a decoder session.
type Handle = timsdf.Handle

// Frame is one decoded acquisition frame with calibrated columns.
type Frame = timsdf.Frame

// FrameMeta is one catalogue row describing a frame without decoding it.
type FrameMeta = timsdf.FrameMeta

// Iter walks the store's frames in catalogue order.
type Iter = timsdf.Iter

// MsType classifies a frame's acquisition type.
type MsType = timsdf.MsType

// Calibration converts between raw instrument axes and physical units.
type Calibration = timsdf.Calibration

// DecodeError reports a per-frame decode failure with its vendor code.
type DecodeError = timsdf.DecodeError

// Option configures Open.
type Option = timsdf.Option

const (
	MsTypeUnknown     = timsdf.MsTypeUnknown
	MsTypePrecursor   = timsdf.MsTypePrecursor
	MsTypeFragmentDDA = timsdf.MsTypeFragmentDDA
	MsTypeFragmentDIA = timsdf.MsTypeFragmentDIA
)

var (
	ErrCatalogue     = timsdf.ErrCatalogue
	ErrDecoderLoad   = timsdf.ErrDecoderLoad
	ErrStoreOpen     = timsdf.ErrStoreOpen
	ErrFrameNotFound = timsdf.ErrFrameNotFound
	ErrHandleClosed  = timsdf.ErrHandleClosed
	ErrDecode        = timsdf.ErrDecode
)

// Open opens the store rooted at dataPath. See pkg/timsdf.Open.
func Open(dataPath string, opts ...Option) (*Handle, error) {
	return timsdf.Open(dataPath, opts...)
}

// WithLogger routes library logs to the given logger.
var WithLogger = timsdf.WithLogger

// ParseMsType maps a raw catalogue acquisition code to an MsType.
func ParseMsType(code int) MsType {
	return timsdf.ParseMsType(code)
}
