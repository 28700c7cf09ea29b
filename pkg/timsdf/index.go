package timsdf

import "github.com/ims-labs/timsdf/internal/domain"

// frameIndex holds the fully loaded catalogue: rows in insertion order plus
// a lookup by frame id. It is immutable after construction and safe for
// concurrent readers.
//
// IDs are commonly contiguous from 1 but the index never assumes it; only
// uniqueness and known count.
type frameIndex struct {
	rows []domain.FrameMeta
	byID map[int64]int
}

func newFrameIndex(rows []domain.FrameMeta) *frameIndex {
	byID := make(map[int64]int, len(rows))
	for i, r := range rows {
		byID[r.ID] = i
	}
	return &frameIndex{rows: rows, byID: byID}
}

// lookup returns the row for the given frame id.
func (ix *frameIndex) lookup(id int64) (domain.FrameMeta, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return domain.FrameMeta{}, false
	}
	return ix.rows[i], true
}

// at returns the i-th row in insertion order.
func (ix *frameIndex) at(i int) domain.FrameMeta {
	return ix.rows[i]
}

// len returns the number of frames.
func (ix *frameIndex) len() int {
	return len(ix.rows)
}
