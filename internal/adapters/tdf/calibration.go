package tdf

import (
	"fmt"
	"strconv"

	"github.com/ims-labs/timsdf/internal/domain"
)

// GlobalMetadata keys carrying the axis calibration.
const (
	keyOneOverK0Lower = "OneOverK0AcqRangeLower"
	keyOneOverK0Upper = "OneOverK0AcqRangeUpper"
	keyMzLower        = "MzAcqRangeLower"
	keyMzUpper        = "MzAcqRangeUpper"
	keyDigitizer      = "DigitizerNumSamples"
)

// CalibrationFromMetadata builds the axis calibration from the store's
// GlobalMetadata table. All five keys are required; a catalogue without
// them does not have the expected shape.
func CalibrationFromMetadata(meta map[string]string) (domain.Calibration, error) {
	var cal domain.Calibration
	var err error

	if cal.OneOverK0Lower, err = metaFloat(meta, keyOneOverK0Lower); err != nil {
		return domain.Calibration{}, err
	}
	if cal.OneOverK0Upper, err = metaFloat(meta, keyOneOverK0Upper); err != nil {
		return domain.Calibration{}, err
	}
	if cal.MzLower, err = metaFloat(meta, keyMzLower); err != nil {
		return domain.Calibration{}, err
	}
	if cal.MzUpper, err = metaFloat(meta, keyMzUpper); err != nil {
		return domain.Calibration{}, err
	}

	raw, ok := meta[keyDigitizer]
	if !ok {
		return domain.Calibration{}, fmt.Errorf("%w: missing global metadata key %s", domain.ErrCatalogue, keyDigitizer)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return domain.Calibration{}, fmt.Errorf("%w: bad %s value %q", domain.ErrCatalogue, keyDigitizer, raw)
	}
	cal.DigitizerSamples = n

	return cal, nil
}

func metaFloat(meta map[string]string, key string) (float64, error) {
	raw, ok := meta[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing global metadata key %s", domain.ErrCatalogue, key)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s value %q", domain.ErrCatalogue, key, raw)
	}
	return f, nil
}
