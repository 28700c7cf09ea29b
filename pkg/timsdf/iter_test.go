package timsdf_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ims-labs/timsdf/internal/adapters/tdf"
	"github.com/ims-labs/timsdf/internal/domain"
	"github.com/ims-labs/timsdf/internal/ports"
	"github.com/ims-labs/timsdf/internal/storetest"
	"github.com/ims-labs/timsdf/pkg/timsdf"
)

func collectFrames(t *testing.T, it *timsdf.Iter) []*timsdf.Frame {
	t.Helper()
	var frames []*timsdf.Frame
	for {
		frame, err := it.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return frames
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		frames = append(frames, frame)
	}
}

func TestIterFullPass(t *testing.T) {
	dir := storetest.ThreeFrameStore(t)

	h, err := timsdf.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	frames := collectFrames(t, h.Frames())
	if len(frames) != h.FrameCount() {
		t.Fatalf("iterated %d frames, want %d", len(frames), h.FrameCount())
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].FrameID <= frames[i-1].FrameID {
			t.Fatalf("ids not ascending: %d after %d", frames[i].FrameID, frames[i-1].FrameID)
		}
	}
}

func TestIterRestartsFromBeginning(t *testing.T) {
	dir := storetest.ThreeFrameStore(t)

	h, err := timsdf.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	first := collectFrames(t, h.Frames())
	second := collectFrames(t, h.Frames())
	if len(first) != len(second) {
		t.Fatalf("passes differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].FrameID != second[i].FrameID || first[i].NumPeaks() != second[i].NumPeaks() {
			t.Fatalf("pass mismatch at %d: %d/%d vs %d/%d", i,
				first[i].FrameID, first[i].NumPeaks(), second[i].FrameID, second[i].NumPeaks())
		}
	}
}

func TestIterExhaustedStaysEOF(t *testing.T) {
	dir := storetest.ThreeFrameStore(t)

	h, err := timsdf.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	it := h.Frames()
	collectFrames(t, it)
	if _, err := it.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("exhausted iterator returned %v, want io.EOF", err)
	}
	if it.Remaining() != 0 {
		t.Fatalf("Remaining() = %d after exhaustion", it.Remaining())
	}
}

// faultySession fails decodes for one frame id so iteration error handling
// can be exercised against otherwise valid stores.
type faultySession struct {
	inner  ports.FrameDecoder
	failID int64
}

func (s *faultySession) Decode(ctx context.Context, meta domain.FrameMeta) (domain.RawColumns, error) {
	if meta.ID == s.failID {
		return domain.RawColumns{}, &domain.DecodeError{
			FrameID: meta.ID,
			Code:    domain.DecodeCodeCorrupt,
			Err:     errors.New("injected fault"),
		}
	}
	return s.inner.Decode(ctx, meta)
}

func (s *faultySession) Close() error { return s.inner.Close() }

func TestIterSurfacesDecodeErrorAndContinues(t *testing.T) {
	dir := storetest.ThreeFrameStore(t)

	h, err := timsdf.Open(dir, timsdf.WithDecoderFactory(
		func(dataPath string, cal domain.Calibration, logger ports.Logger) (ports.FrameDecoder, error) {
			inner, err := tdf.OpenSession(dataPath, cal, logger)
			if err != nil {
				return nil, err
			}
			return &faultySession{inner: inner, failID: 2}, nil
		}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	it := h.Frames()

	frame, err := it.Next(context.Background())
	if err != nil || frame.FrameID != 1 {
		t.Fatalf("first frame: %v, %v", frame, err)
	}

	_, err = it.Next(context.Background())
	if !errors.Is(err, timsdf.ErrDecode) {
		t.Fatalf("expected decode error for frame 2, got %v", err)
	}
	var de *timsdf.DecodeError
	if !errors.As(err, &de) || de.FrameID != 2 {
		t.Fatalf("decode error lacks frame id: %v", err)
	}

	// A failing frame does not stall the iterator.
	frame, err = it.Next(context.Background())
	if err != nil || frame.FrameID != 3 {
		t.Fatalf("frame after failure: %v, %v", frame, err)
	}
	if _, err := it.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestIterMatchesRandomAccess(t *testing.T) {
	dir := storetest.ThreeFrameStore(t)

	h, err := timsdf.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	for _, frame := range collectFrames(t, h.Frames()) {
		direct, err := h.Frame(context.Background(), frame.FrameID)
		if err != nil {
			t.Fatalf("direct frame %d: %v", frame.FrameID, err)
		}
		if direct.NumPeaks() != frame.NumPeaks() || direct.MsType != frame.MsType {
			t.Fatalf("frame %d differs between iteration and random access", frame.FrameID)
		}
		for i := range direct.Mz {
			if direct.Mz[i] != frame.Mz[i] || direct.Intensity[i] != frame.Intensity[i] {
				t.Fatalf("frame %d column values differ at %d", frame.FrameID, i)
			}
		}
	}
}
