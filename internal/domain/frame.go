package domain

import "fmt"

// FrameMeta is one row of the Frames table in the metadata catalogue.
// It locates the frame's raw bytes inside the container and carries the
// per-frame summary columns the catalogue records at acquisition time.
type FrameMeta struct {
	// ID is the unique frame identifier. IDs are commonly contiguous
	// ascending integers starting at 1, but only uniqueness is guaranteed.
	ID int64

	// Time is the retention time in seconds since acquisition start.
	Time float64

	// ScanMode is the instrument scan mode code (opaque passthrough).
	ScanMode int

	// MsMsType is the raw acquisition-type code; see ParseMsType.
	MsMsType int

	// TimsID is the byte offset of the frame blob in the raw container.
	TimsID int64

	// NumScans is the number of ion-mobility scans in the frame.
	NumScans int

	// NumPeaks is the number of detected ion events in the frame.
	NumPeaks int

	// MaxIntensity is the largest single peak intensity in the frame.
	MaxIntensity int64

	// SummedIntensities is the total ion current of the frame.
	SummedIntensities int64

	// AccumulationTime is the accumulation time in milliseconds.
	AccumulationTime float64
}

// MsType returns the parsed acquisition type of the frame.
func (m FrameMeta) MsType() MsType {
	return ParseMsType(m.MsMsType)
}

// Frame is one decoded acquisition frame. The five column slices are
// parallel: entry i of each describes the same ion event. A Frame is
// constructed fresh on every retrieval and is owned solely by the caller;
// the decoder keeps no reference to its columns.
type Frame struct {
	FrameID       int64
	MsType        MsType
	RetentionTime float64

	Scan        []int32
	InvMobility []float64
	TOF         []int32
	Mz          []float64
	Intensity   []float64
}

// NumPeaks returns the number of ion events in the frame.
func (f *Frame) NumPeaks() int {
	return len(f.Scan)
}

// RawColumns is the output of one decode call: five parallel columns plus
// their shared length. NumPeaks is reported by the decoder itself, never
// inferred by the caller; a bare buffer crossing the decode boundary
// without its length is a contract violation.
type RawColumns struct {
	NumPeaks int

	Scan        []int32
	InvMobility []float64
	TOF         []int32
	Mz          []float64
	Intensity   []float64
}

// Validate checks that every column length matches NumPeaks.
func (rc *RawColumns) Validate() error {
	n := rc.NumPeaks
	if len(rc.Scan) != n || len(rc.InvMobility) != n || len(rc.TOF) != n ||
		len(rc.Mz) != n || len(rc.Intensity) != n {
		return fmt.Errorf("%w: column lengths scan=%d im=%d tof=%d mz=%d intensity=%d, want %d",
			ErrColumnMismatch, len(rc.Scan), len(rc.InvMobility), len(rc.TOF),
			len(rc.Mz), len(rc.Intensity), n)
	}
	return nil
}
