// Package timsdf reads timsTOF data stores: directories holding a SQLite
// metadata catalogue (analysis.tdf) and a raw binary frame container
// (analysis.tdf_bin).
//
// A [Handle] binds one store path to its loaded frame index and an open
// decoder session. Frames are decoded on demand, one per retrieval, and
// never cached: the dominant access pattern is a single sequential pass and
// frames are large.
//
// Example usage:
//
//	h, err := timsdf.Open("/data/run42.d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
//	it := h.Frames()
//	for {
//	    frame, err := it.Next(ctx)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err // or continue: one bad frame spoils only itself
//	    }
//	    process(frame)
//	}
//
// Close must run on every exit path; the decoder session is the only
// resource a Handle owns and it is released exactly once.
//
// A Handle may be shared between goroutines: decode calls are serialized
// internally because the underlying session is not reentrant. Callers who
// need parallel decoding should open one Handle per worker.
package timsdf
