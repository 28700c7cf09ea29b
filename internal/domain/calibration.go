package domain

import "math"

// Calibration holds the axis-conversion parameters read from the
// GlobalMetadata table. It converts raw scan indices to inverse ion
// mobility (1/K0) and raw time-of-flight indices to m/z.
//
// The tof axis is linear in sqrt(m/z): flight time grows with the square
// root of mass, so interpolation happens in sqrt space and is squared back.
// The mobility axis is linear and descending: scan 0 sits at the upper end
// of the 1/K0 acquisition range.
type Calibration struct {
	// OneOverK0Lower and OneOverK0Upper bound the ion-mobility axis.
	OneOverK0Lower float64
	OneOverK0Upper float64

	// MzLower and MzUpper bound the mass axis.
	MzLower float64
	MzUpper float64

	// DigitizerSamples is the number of tof digitizer bins per scan.
	DigitizerSamples int
}

// ScanToInvMobility converts a scan index to inverse mobility.
func (c Calibration) ScanToInvMobility(scan int32, numScans int) float64 {
	if numScans <= 1 {
		return c.OneOverK0Upper
	}
	step := (c.OneOverK0Upper - c.OneOverK0Lower) / float64(numScans-1)
	return c.OneOverK0Upper - float64(scan)*step
}

// TOFToMz converts a tof index to m/z.
func (c Calibration) TOFToMz(tof int32) float64 {
	if c.DigitizerSamples <= 1 {
		return c.MzLower
	}
	lo := math.Sqrt(c.MzLower)
	hi := math.Sqrt(c.MzUpper)
	s := lo + float64(tof)*(hi-lo)/float64(c.DigitizerSamples-1)
	return s * s
}

// MzToTOF is the inverse of TOFToMz, rounding to the nearest bin.
// It is used by the fixture writer and by callers that project m/z
// windows back onto the raw tof axis.
func (c Calibration) MzToTOF(mz float64) int32 {
	lo := math.Sqrt(c.MzLower)
	hi := math.Sqrt(c.MzUpper)
	if hi <= lo {
		return 0
	}
	f := (math.Sqrt(mz) - lo) / (hi - lo) * float64(c.DigitizerSamples-1)
	return int32(math.Round(f))
}

// InvMobilityToScan is the inverse of ScanToInvMobility, rounding to the
// nearest scan index.
func (c Calibration) InvMobilityToScan(im float64, numScans int) int32 {
	if numScans <= 1 {
		return 0
	}
	step := (c.OneOverK0Upper - c.OneOverK0Lower) / float64(numScans-1)
	if step == 0 {
		return 0
	}
	return int32(math.Round((c.OneOverK0Upper - im) / step))
}
