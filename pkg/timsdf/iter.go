package timsdf

import (
	"context"
	"io"
)

// Iter iterates over a store's frames in index order. Create with
// [Handle.Frames]; every call returns a fresh iterator starting at the
// first frame, so two passes never share cursor state.
//
// Iteration goes through the same decode path as [Handle.Frame], so
// failures surface identically. A decode error still advances the cursor:
// the caller decides whether one bad frame aborts the pass or is skipped.
type Iter struct {
	h   *Handle
	pos int
}

// Frames returns a new iterator over all frames in index order.
func (h *Handle) Frames() *Iter {
	return &Iter{h: h}
}

// Next decodes and returns the next frame. It returns io.EOF once the
// index is exhausted. On a decode failure it returns the error and moves
// past the failing frame.
func (it *Iter) Next(ctx context.Context) (*Frame, error) {
	if it.pos >= it.h.index.len() {
		return nil, io.EOF
	}
	meta := it.h.index.at(it.pos)
	it.pos++
	return it.h.decodeFrame(ctx, meta)
}

// Remaining returns how many frames the iterator has not yet produced.
func (it *Iter) Remaining() int {
	return it.h.index.len() - it.pos
}
