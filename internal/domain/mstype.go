package domain

// MsType classifies a frame by its acquisition mode.
type MsType int

// Raw MsMsType codes as stored in the Frames table. Any other code,
// including negative values, parses as MsTypeUnknown.
const (
	MsTypePrecursor   MsType = 0
	MsTypeFragmentDDA MsType = 8
	MsTypeFragmentDIA MsType = 9
	MsTypeUnknown     MsType = -1
)

// ParseMsType maps a raw catalogue code to an MsType.
func ParseMsType(code int) MsType {
	switch code {
	case 0:
		return MsTypePrecursor
	case 8:
		return MsTypeFragmentDDA
	case 9:
		return MsTypeFragmentDIA
	default:
		return MsTypeUnknown
	}
}

// Code returns the raw numeric code for the type, or -1 for unknown.
func (t MsType) Code() int {
	switch t {
	case MsTypePrecursor, MsTypeFragmentDDA, MsTypeFragmentDIA:
		return int(t)
	default:
		return -1
	}
}

// String returns the canonical lower-case name of the type.
func (t MsType) String() string {
	switch t {
	case MsTypePrecursor:
		return "precursor"
	case MsTypeFragmentDDA:
		return "fragment-dda"
	case MsTypeFragmentDIA:
		return "fragment-dia"
	default:
		return "unknown"
	}
}
