package domain

import (
	"errors"
	"testing"
)

func TestRawColumnsValidate(t *testing.T) {
	rc := RawColumns{
		NumPeaks:    2,
		Scan:        []int32{1, 2},
		InvMobility: []float64{1.1, 1.0},
		TOF:         []int32{100, 200},
		Mz:          []float64{300.5, 410.2},
		Intensity:   []float64{10, 20},
	}
	if err := rc.Validate(); err != nil {
		t.Fatalf("valid columns rejected: %v", err)
	}

	short := rc
	short.Intensity = short.Intensity[:1]
	err := short.Validate()
	if err == nil {
		t.Fatal("expected error for short intensity column")
	}
	if !errors.Is(err, ErrColumnMismatch) {
		t.Fatalf("expected ErrColumnMismatch, got %v", err)
	}
}

func TestFrameMetaMsType(t *testing.T) {
	m := FrameMeta{ID: 7, MsMsType: 8}
	if got := m.MsType(); got != MsTypeFragmentDDA {
		t.Fatalf("MsType() = %v, want fragment-dda", got)
	}
}

func TestDecodeErrorMatchesSentinel(t *testing.T) {
	inner := errors.New("short read")
	err := error(&DecodeError{FrameID: 3, Code: DecodeCodeIO, Err: inner})

	if !errors.Is(err, ErrDecode) {
		t.Fatal("DecodeError should match ErrDecode")
	}
	if !errors.Is(err, inner) {
		t.Fatal("DecodeError should unwrap to its cause")
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("errors.As failed for *DecodeError")
	}
	if de.FrameID != 3 || de.Code != DecodeCodeIO {
		t.Fatalf("unexpected fields: %+v", de)
	}
}
