package timsdf

import (
	"context"
	"fmt"
	"sync"

	"github.com/ims-labs/timsdf/internal/adapters/sqlite"
	"github.com/ims-labs/timsdf/internal/adapters/tdf"
	"github.com/ims-labs/timsdf/internal/domain"
	"github.com/ims-labs/timsdf/internal/ports"
	"github.com/ims-labs/timsdf/pkg/log"
)

// Handle is an open timsTOF data store. It aggregates the fully loaded
// frame index and owns exactly one decoder session, which is released by
// Close. Create with Open.
type Handle struct {
	dataPath string
	cal      domain.Calibration
	index    *frameIndex
	metadata map[string]string
	decoder  ports.FrameDecoder
	logger   ports.Logger

	mu     sync.Mutex
	closed bool
}

// Open opens the data store at dataPath: it loads the metadata catalogue in
// full, derives the axis calibration from the store's global metadata, and
// opens a decoder session against the raw container.
//
// Every failure is returned wrapping ErrStoreOpen, with the underlying
// cause (ErrCatalogue or ErrDecoderLoad) preserved for errors.Is. Partial
// resources are released before the error propagates; a failed Open never
// leaks a decoder session.
func Open(dataPath string, opts ...Option) (*Handle, error) {
	o := options{
		logger: log.NewNoop(),
		catalogue: func(path string, logger ports.Logger) (ports.Catalogue, error) {
			return sqlite.OpenCatalogue(path, logger)
		},
		decoder: func(path string, cal domain.Calibration, logger ports.Logger) (ports.FrameDecoder, error) {
			return tdf.OpenSession(path, cal, logger)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx := context.Background()

	cat, err := o.catalogue(dataPath, o.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreOpen, err)
	}
	defer cat.Close()

	metadata, err := cat.GlobalMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreOpen, err)
	}
	cal, err := tdf.CalibrationFromMetadata(metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreOpen, err)
	}

	decoder, err := o.decoder(dataPath, cal, o.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreOpen, err)
	}

	rows, err := cat.Frames(ctx)
	if err != nil {
		// The session is already open; release it before propagating.
		decoder.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreOpen, err)
	}

	h := &Handle{
		dataPath: dataPath,
		cal:      cal,
		index:    newFrameIndex(rows),
		metadata: metadata,
		decoder:  decoder,
		logger:   o.logger,
	}

	o.logger.Info("store opened",
		ports.String("store", dataPath),
		ports.Int("frames", h.index.len()))
	return h, nil
}

// FrameCount returns the number of frames in the store. O(1).
func (h *Handle) FrameCount() int {
	return h.index.len()
}

// Frame decodes and returns the frame with the given id.
//
// A missing id returns ErrFrameNotFound; a decode failure returns a
// *DecodeError. Neither invalidates the handle: each retrieval fails or
// succeeds on its own. After Close, Frame returns ErrHandleClosed.
func (h *Handle) Frame(ctx context.Context, id int64) (*Frame, error) {
	meta, ok := h.index.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrFrameNotFound, id)
	}
	return h.decodeFrame(ctx, meta)
}

// decodeFrame runs the decoding pipeline for one catalogue row: decode the
// raw byte range, validate column lengths, materialize the Frame. The
// returned frame is owned solely by the caller.
func (h *Handle) decodeFrame(ctx context.Context, meta domain.FrameMeta) (*Frame, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, domain.ErrHandleClosed
	}
	// The decoder session is not reentrant; hold the lock across the call.
	rc, err := h.decoder.Decode(ctx, meta)
	h.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// Every column must carry the decoder's reported length before any
	// materialization happens.
	if err := rc.Validate(); err != nil {
		return nil, &domain.DecodeError{FrameID: meta.ID, Code: domain.DecodeCodeCorrupt, Err: err}
	}

	return &Frame{
		FrameID:       meta.ID,
		MsType:        meta.MsType(),
		RetentionTime: meta.Time,
		Scan:          rc.Scan,
		InvMobility:   rc.InvMobility,
		TOF:           rc.TOF,
		Mz:            rc.Mz,
		Intensity:     rc.Intensity,
	}, nil
}

// Meta returns the catalogue row for the given frame id without decoding.
func (h *Handle) Meta(id int64) (FrameMeta, error) {
	meta, ok := h.index.lookup(id)
	if !ok {
		return FrameMeta{}, fmt.Errorf("%w: id %d", domain.ErrFrameNotFound, id)
	}
	return meta, nil
}

// PrecursorFrameIDs returns the ids of all precursor frames in order.
func (h *Handle) PrecursorFrameIDs() []int64 {
	return h.frameIDsByType(func(t MsType) bool { return t == MsTypePrecursor })
}

// FragmentFrameIDs returns the ids of all fragment frames (DDA or DIA) in order.
func (h *Handle) FragmentFrameIDs() []int64 {
	return h.frameIDsByType(func(t MsType) bool {
		return t == MsTypeFragmentDDA || t == MsTypeFragmentDIA
	})
}

func (h *Handle) frameIDsByType(match func(MsType) bool) []int64 {
	var ids []int64
	for i := 0; i < h.index.len(); i++ {
		if m := h.index.at(i); match(m.MsType()) {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// Calibration returns the store's axis calibration.
func (h *Handle) Calibration() Calibration {
	return h.cal
}

// GlobalMetadata returns a copy of the store-level key/value metadata.
func (h *Handle) GlobalMetadata() map[string]string {
	out := make(map[string]string, len(h.metadata))
	for k, v := range h.metadata {
		out[k] = v
	}
	return out
}

// Description returns the acquisition description recorded in the store,
// or the empty string when absent.
func (h *Handle) Description() string {
	return h.metadata["Description"]
}

// Close releases the decoder session. Close is idempotent: the first call
// releases, later calls are no-ops. After Close every retrieval returns
// ErrHandleClosed.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.logger.Info("store closed", ports.String("store", h.dataPath))
	return h.decoder.Close()
}
