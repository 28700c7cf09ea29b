// Package tdf implements the FrameDecoder port against the analysis.tdf_bin
// raw container of a timsTOF data store.
//
// # Container layout
//
// The container starts with a 64-byte zero preamble, so a real frame never
// sits at offset 0. Each frame blob lives at the byte offset recorded in
// its catalogue row (TimsId) and is laid out as
//
//	u32le blobLen   total blob length in bytes, header included
//	u32le numScans  ion-mobility scans in the frame
//	zstd(payload)
//
// The payload is a sequence of little-endian u32 words: one peak count per
// scan, then every scan's tof values delta-encoded within the scan, then
// every peak's intensity in scan order. The decoder reconstructs the scan
// column by repetition, the tof column by per-scan prefix sums, and derives
// the inverse-mobility and m/z columns from the store's axis calibration.
//
// A [Session] owns the open container file and must be closed exactly once;
// decoding through a closed session fails with domain.ErrSessionClosed.
package tdf
