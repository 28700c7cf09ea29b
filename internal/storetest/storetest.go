// Package storetest builds complete on-disk timsTOF stores for tests:
// a real SQLite catalogue plus a raw container with encoded frame blobs.
package storetest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "modernc.org/sqlite"

	catalogue "github.com/ims-labs/timsdf/internal/adapters/sqlite"
	"github.com/ims-labs/timsdf/internal/adapters/tdf"
	"github.com/ims-labs/timsdf/internal/domain"
)

// Peak is one synthetic ion event.
type Peak struct {
	Scan      int32
	TOF       int32
	Intensity uint32
}

// Frame describes one synthetic frame to write.
type Frame struct {
	ID       int64
	Time     float64
	ScanMode int
	MsMsType int
	NumScans int
	Peaks    []Peak
}

// Calibration is the axis calibration every test store uses.
func Calibration() domain.Calibration {
	return domain.Calibration{
		OneOverK0Lower:   0.6,
		OneOverK0Upper:   1.6,
		MzLower:          100,
		MzUpper:          1700,
		DigitizerSamples: 400000,
	}
}

// UniformPeaks generates n peaks spread over the frame's scans.
func UniformPeaks(n, numScans int) []Peak {
	peaks := make([]Peak, n)
	for i := range peaks {
		peaks[i] = Peak{
			Scan:      int32(i % numScans),
			TOF:       int32(1000 + 13*i),
			Intensity: uint32(1 + i),
		}
	}
	return peaks
}

// WriteStore creates a store directory named sample.d under a fresh temp
// dir, writes the catalogue and container for the given frames, and returns
// the store path.
func WriteStore(t *testing.T, frames ...Frame) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "sample.d")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir store: %v", err)
	}
	writeContainerAndCatalogue(t, dir, frames)
	return dir
}

func writeContainerAndCatalogue(t *testing.T, dir string, frames []Frame) {
	t.Helper()

	// Container first, so each catalogue row records its blob offset.
	buf := make([]byte, tdf.Preamble)
	offsets := make(map[int64]int64, len(frames))
	for _, fr := range frames {
		peaks := append([]Peak(nil), fr.Peaks...)
		sort.Slice(peaks, func(i, j int) bool {
			if peaks[i].Scan != peaks[j].Scan {
				return peaks[i].Scan < peaks[j].Scan
			}
			return peaks[i].TOF < peaks[j].TOF
		})

		scan := make([]int32, len(peaks))
		tofs := make([]int32, len(peaks))
		intensity := make([]uint32, len(peaks))
		for i, p := range peaks {
			scan[i], tofs[i], intensity[i] = p.Scan, p.TOF, p.Intensity
		}

		blob, err := tdf.EncodeBlob(fr.NumScans, scan, tofs, intensity)
		if err != nil {
			t.Fatalf("encode frame %d: %v", fr.ID, err)
		}
		offsets[fr.ID] = int64(len(buf))
		buf = append(buf, blob...)
	}
	if err := os.WriteFile(filepath.Join(dir, tdf.ContainerFile), buf, 0o644); err != nil {
		t.Fatalf("write container: %v", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, catalogue.CatalogueFile))
	if err != nil {
		t.Fatalf("open catalogue: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE Frames (
			Id INTEGER PRIMARY KEY,
			Time REAL,
			ScanMode INTEGER,
			MsMsType INTEGER,
			TimsId INTEGER,
			NumScans INTEGER,
			NumPeaks INTEGER,
			MaxIntensity INTEGER,
			SummedIntensities INTEGER,
			AccumulationTime REAL
		)`,
		`CREATE TABLE GlobalMetadata (Key TEXT, Value TEXT)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	cal := Calibration()
	meta := map[string]string{
		"OneOverK0AcqRangeLower": fmt.Sprintf("%g", cal.OneOverK0Lower),
		"OneOverK0AcqRangeUpper": fmt.Sprintf("%g", cal.OneOverK0Upper),
		"MzAcqRangeLower":        fmt.Sprintf("%g", cal.MzLower),
		"MzAcqRangeUpper":        fmt.Sprintf("%g", cal.MzUpper),
		"DigitizerNumSamples":    fmt.Sprintf("%d", cal.DigitizerSamples),
		"Description":            "storetest fixture",
	}
	for k, v := range meta {
		if _, err := db.Exec(`INSERT INTO GlobalMetadata (Key, Value) VALUES (?, ?)`, k, v); err != nil {
			t.Fatalf("insert metadata: %v", err)
		}
	}

	for _, fr := range frames {
		var maxI, sumI int64
		for _, p := range fr.Peaks {
			if int64(p.Intensity) > maxI {
				maxI = int64(p.Intensity)
			}
			sumI += int64(p.Intensity)
		}
		_, err := db.Exec(`INSERT INTO Frames
			(Id, Time, ScanMode, MsMsType, TimsId, NumScans, NumPeaks,
			 MaxIntensity, SummedIntensities, AccumulationTime)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			fr.ID, fr.Time, fr.ScanMode, fr.MsMsType, offsets[fr.ID],
			fr.NumScans, len(fr.Peaks), maxI, sumI, 100.0)
		if err != nil {
			t.Fatalf("insert frame %d: %v", fr.ID, err)
		}
	}
}

// ThreeFrameStore writes the canonical fixture used across packages: a
// precursor frame, a 500-peak DDA fragment frame, and a DIA fragment frame.
func ThreeFrameStore(t *testing.T) string {
	t.Helper()
	return WriteStore(t,
		Frame{ID: 1, Time: 0.5, MsMsType: 0, NumScans: 16, Peaks: UniformPeaks(40, 16)},
		Frame{ID: 2, Time: 1.1, MsMsType: 8, NumScans: 16, Peaks: UniformPeaks(500, 16)},
		Frame{ID: 3, Time: 1.7, MsMsType: 9, NumScans: 16, Peaks: UniformPeaks(25, 16)},
	)
}
