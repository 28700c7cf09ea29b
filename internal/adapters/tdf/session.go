package tdf

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ims-labs/timsdf/internal/domain"
	"github.com/ims-labs/timsdf/internal/ports"
)

// ContainerFile is the fixed name of the raw container inside a store.
const ContainerFile = "analysis.tdf_bin"

// Session is an open decoding session against one store's raw container.
// It implements ports.FrameDecoder. A Session is not safe for concurrent
// Decode calls; the handle serializes access.
type Session struct {
	mu     sync.Mutex
	f      *os.File
	size   int64
	cal    domain.Calibration
	logger ports.Logger
	closed bool
}

// OpenSession opens the raw container of the store at dataPath with the
// given axis calibration. Returns an error wrapping domain.ErrDecoderLoad
// if the container is missing or unreadable.
func OpenSession(dataPath string, cal domain.Calibration, logger ports.Logger) (*Session, error) {
	path := filepath.Join(dataPath, ContainerFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDecoderLoad, path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrDecoderLoad, path, err)
	}

	logger.Debug("decoder session opened",
		ports.String("container", path),
		ports.Int64("bytes", fi.Size()))

	return &Session{f: f, size: fi.Size(), cal: cal, logger: logger}, nil
}

// Decode decodes the frame described by meta into five parallel columns.
// The returned columns are freshly allocated on every call; the session
// keeps no reference to them.
func (s *Session) Decode(ctx context.Context, meta domain.FrameMeta) (domain.RawColumns, error) {
	select {
	case <-ctx.Done():
		return domain.RawColumns{}, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.RawColumns{}, domain.ErrSessionClosed
	}

	blobLen, numScans, err := s.readHeader(meta)
	if err != nil {
		return domain.RawColumns{}, err
	}

	compressed, err := preadSection(s.f, meta.TimsID+blobHeaderSize, blobLen-blobHeaderSize)
	if err != nil {
		return domain.RawColumns{}, &domain.DecodeError{
			FrameID: meta.ID, Code: domain.DecodeCodeIO,
			Err: fmt.Errorf("read blob at %d: %w", meta.TimsID, err),
		}
	}

	fr, err := decodeBlob(numScans, compressed)
	if err != nil {
		return domain.RawColumns{}, &domain.DecodeError{
			FrameID: meta.ID, Code: domain.DecodeCodeCorrupt, Err: err,
		}
	}

	return s.calibrate(fr), nil
}

// readHeader reads and validates the 8-byte blob header at the frame's
// container offset.
func (s *Session) readHeader(meta domain.FrameMeta) (blobLen int64, numScans int, err error) {
	if meta.TimsID < Preamble || meta.TimsID+blobHeaderSize > s.size {
		return 0, 0, &domain.DecodeError{
			FrameID: meta.ID, Code: domain.DecodeCodeOutOfRange,
			Err: fmt.Errorf("offset %d outside container of %d bytes", meta.TimsID, s.size),
		}
	}

	hdr, err := preadSection(s.f, meta.TimsID, blobHeaderSize)
	if err != nil {
		return 0, 0, &domain.DecodeError{
			FrameID: meta.ID, Code: domain.DecodeCodeIO,
			Err: fmt.Errorf("read header at %d: %w", meta.TimsID, err),
		}
	}

	blobLen = int64(binary.LittleEndian.Uint32(hdr[0:]))
	numScans = int(binary.LittleEndian.Uint32(hdr[4:]))

	if blobLen < blobHeaderSize || meta.TimsID+blobLen > s.size {
		return 0, 0, &domain.DecodeError{
			FrameID: meta.ID, Code: domain.DecodeCodeOutOfRange,
			Err: fmt.Errorf("blob of %d bytes at offset %d exceeds container of %d bytes",
				blobLen, meta.TimsID, s.size),
		}
	}
	if numScans < 0 || meta.NumScans > 0 && numScans != meta.NumScans {
		return 0, 0, &domain.DecodeError{
			FrameID: meta.ID, Code: domain.DecodeCodeCorrupt,
			Err: fmt.Errorf("blob declares %d scans, catalogue says %d", numScans, meta.NumScans),
		}
	}
	return blobLen, numScans, nil
}

// calibrate turns raw scan/tof/intensity columns into the five output
// columns, deriving inverse mobility and m/z from the axis calibration.
// The peak count is taken from the decoded blob itself, never from the
// catalogue row.
func (s *Session) calibrate(fr rawFrame) domain.RawColumns {
	n := len(fr.scan)
	rc := domain.RawColumns{
		NumPeaks:    n,
		Scan:        fr.scan,
		TOF:         fr.tof,
		InvMobility: make([]float64, n),
		Mz:          make([]float64, n),
		Intensity:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		rc.InvMobility[i] = s.cal.ScanToInvMobility(fr.scan[i], fr.numScans)
		rc.Mz[i] = s.cal.TOFToMz(fr.tof[i])
		rc.Intensity[i] = float64(fr.intensity[i])
	}
	return rc
}

// Close releases the container file handle. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Debug("decoder session closed")
	return s.f.Close()
}

// preadSection reads [off, off+len) bytes from file.
func preadSection(f *os.File, off int64, length int64) ([]byte, error) {
	sr := io.NewSectionReader(f, off, length)
	buf := make([]byte, length)
	_, err := io.ReadFull(sr, buf)
	return buf, err
}

var _ ports.FrameDecoder = (*Session)(nil)
