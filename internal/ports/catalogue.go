package ports

import (
	"context"

	"github.com/ims-labs/timsdf/internal/domain"
)

// Catalogue provides read access to the store's relational metadata.
// Implementations read the Frames and GlobalMetadata tables of the
// catalogue file under the data-store directory.
//
// The catalogue is consumed eagerly and in full at open time: frame count
// and per-frame retention times are needed immediately by callers, and the
// cost is one table scan.
type Catalogue interface {
	// Frames returns every frame row in insertion order.
	// A missing or malformed catalogue is reported as an error wrapping
	// domain.ErrCatalogue.
	Frames(ctx context.Context) ([]domain.FrameMeta, error)

	// GlobalMetadata returns the store-level key/value metadata table.
	GlobalMetadata(ctx context.Context) (map[string]string, error)

	// Close releases the catalogue connection.
	Close() error
}
