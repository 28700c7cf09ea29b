package tdf

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// blobHeaderSize is the fixed prefix of every frame blob: total length plus
// scan count, both u32le.
const blobHeaderSize = 8

// Preamble is the number of zero bytes at the start of a container file.
// Writers skip it before appending the first frame, which keeps offset 0
// distinguishable from any real frame location.
const Preamble = 64

// rawFrame is a decoded blob before axis calibration: per-peak scan indices,
// tof indices and intensities, all the same length.
type rawFrame struct {
	numScans  int
	scan      []int32
	tof       []int32
	intensity []uint32
}

var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
)

// EncodeBlob packs per-peak columns into a frame blob. Peaks must be given
// in ascending scan order and ascending tof within each scan; scan indices
// must be in [0, numScans). The three slices share one length.
//
// EncodeBlob exists for writers of synthetic stores and for tests; the
// reader itself never calls it.
func EncodeBlob(numScans int, scan []int32, tof []int32, intensity []uint32) ([]byte, error) {
	if len(scan) != len(tof) || len(scan) != len(intensity) {
		return nil, fmt.Errorf("tdf: column lengths differ: scan=%d tof=%d intensity=%d",
			len(scan), len(tof), len(intensity))
	}

	counts := make([]uint32, numScans)
	for i, s := range scan {
		if s < 0 || int(s) >= numScans {
			return nil, fmt.Errorf("tdf: peak %d has scan %d outside [0,%d)", i, s, numScans)
		}
		if i > 0 && scan[i] < scan[i-1] {
			return nil, fmt.Errorf("tdf: peaks not sorted by scan at index %d", i)
		}
		counts[s]++
	}

	words := make([]uint32, 0, numScans+2*len(scan))
	for _, c := range counts {
		words = append(words, c)
	}
	// tof block: absolute first value per scan, deltas after.
	i := 0
	for s := 0; s < numScans; s++ {
		prev := int32(0)
		for k := uint32(0); k < counts[s]; k++ {
			d := tof[i] - prev
			if k > 0 && d < 0 {
				return nil, fmt.Errorf("tdf: tof not ascending within scan %d", s)
			}
			words = append(words, uint32(d))
			prev = tof[i]
			i++
		}
	}
	for _, v := range intensity {
		words = append(words, v)
	}

	payload := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(payload[4*i:], w)
	}
	compressed := zstdEncoder.EncodeAll(payload, nil)

	blob := make([]byte, blobHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(blob[0:], uint32(len(blob)))
	binary.LittleEndian.PutUint32(blob[4:], uint32(numScans))
	copy(blob[blobHeaderSize:], compressed)
	return blob, nil
}

// decodeBlob is the inverse of EncodeBlob. The input starts after the
// 8-byte header; numScans comes from that header.
func decodeBlob(numScans int, compressed []byte) (rawFrame, error) {
	payload, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return rawFrame{}, fmt.Errorf("decompress payload: %w", err)
	}
	if len(payload)%4 != 0 {
		return rawFrame{}, fmt.Errorf("payload length %d not word aligned", len(payload))
	}
	words := len(payload) / 4
	if words < numScans {
		return rawFrame{}, fmt.Errorf("payload has %d words, need at least %d scan counts", words, numScans)
	}

	word := func(i int) uint32 { return binary.LittleEndian.Uint32(payload[4*i:]) }

	numPeaks := 0
	counts := make([]uint32, numScans)
	for s := 0; s < numScans; s++ {
		counts[s] = word(s)
		numPeaks += int(counts[s])
	}
	if want := numScans + 2*numPeaks; words != want {
		return rawFrame{}, fmt.Errorf("payload has %d words, want %d for %d peaks over %d scans",
			words, want, numPeaks, numScans)
	}

	fr := rawFrame{
		numScans:  numScans,
		scan:      make([]int32, 0, numPeaks),
		tof:       make([]int32, 0, numPeaks),
		intensity: make([]uint32, 0, numPeaks),
	}

	i := numScans
	for s := 0; s < numScans; s++ {
		prev := int32(0)
		for k := uint32(0); k < counts[s]; k++ {
			prev += int32(word(i))
			i++
			fr.scan = append(fr.scan, int32(s))
			fr.tof = append(fr.tof, prev)
		}
	}
	for p := 0; p < numPeaks; p++ {
		fr.intensity = append(fr.intensity, word(i))
		i++
	}

	return fr, nil
}
