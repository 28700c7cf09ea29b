package timsdf

import "github.com/ims-labs/timsdf/internal/domain"

// Re-exported domain types. Users of this package never need to import
// internal packages.
type (
	// Frame is one decoded acquisition frame.
	Frame = domain.Frame

	// FrameMeta is one catalogue row.
	FrameMeta = domain.FrameMeta

	// MsType classifies a frame by acquisition mode.
	MsType = domain.MsType

	// Calibration converts raw scan and tof indices to physical axes.
	Calibration = domain.Calibration

	// DecodeError reports a decode failure for a specific frame.
	DecodeError = domain.DecodeError
)

// Acquisition types.
const (
	MsTypePrecursor   = domain.MsTypePrecursor
	MsTypeFragmentDDA = domain.MsTypeFragmentDDA
	MsTypeFragmentDIA = domain.MsTypeFragmentDIA
	MsTypeUnknown     = domain.MsTypeUnknown
)

// ParseMsType maps a raw catalogue code to an MsType.
func ParseMsType(code int) MsType { return domain.ParseMsType(code) }

// Error sentinels, checkable with errors.Is.
var (
	ErrCatalogue     = domain.ErrCatalogue
	ErrDecoderLoad   = domain.ErrDecoderLoad
	ErrStoreOpen     = domain.ErrStoreOpen
	ErrFrameNotFound = domain.ErrFrameNotFound
	ErrHandleClosed  = domain.ErrHandleClosed
	ErrDecode        = domain.ErrDecode
)
