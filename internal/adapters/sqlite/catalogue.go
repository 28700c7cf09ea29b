// Package sqlite implements the Catalogue port against the analysis.tdf
// SQLite file found in a timsTOF data-store directory.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ims-labs/timsdf/internal/domain"
	"github.com/ims-labs/timsdf/internal/ports"
)

// CatalogueFile is the fixed name of the metadata catalogue inside a store.
const CatalogueFile = "analysis.tdf"

// Catalogue reads frame metadata from the analysis.tdf SQLite database.
// The store is opened read-only; timsdf never writes to a data store.
type Catalogue struct {
	db     *sql.DB
	path   string
	logger ports.Logger
}

// OpenCatalogue opens the catalogue of the store at dataPath.
// Returns an error wrapping domain.ErrCatalogue if the catalogue file is
// missing or cannot be opened as a database.
func OpenCatalogue(dataPath string, logger ports.Logger) (*Catalogue, error) {
	path := filepath.Join(dataPath, CatalogueFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCatalogue, path, err)
	}

	// mode=ro keeps the driver from creating or mutating anything.
	dsn := "file:" + path + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrCatalogue, path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrCatalogue, path, err)
	}

	return &Catalogue{db: db, path: path, logger: logger}, nil
}

// Frames returns every row of the Frames table in insertion order.
func (c *Catalogue) Frames(ctx context.Context) ([]domain.FrameMeta, error) {
	const q = `SELECT Id, Time, ScanMode, MsMsType, TimsId, NumScans, NumPeaks,
		MaxIntensity, SummedIntensities, AccumulationTime FROM Frames`

	rows, err := c.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: query Frames: %v", domain.ErrCatalogue, err)
	}
	defer rows.Close()

	var metas []domain.FrameMeta
	for rows.Next() {
		var m domain.FrameMeta
		if err := rows.Scan(&m.ID, &m.Time, &m.ScanMode, &m.MsMsType, &m.TimsID,
			&m.NumScans, &m.NumPeaks, &m.MaxIntensity, &m.SummedIntensities,
			&m.AccumulationTime); err != nil {
			return nil, fmt.Errorf("%w: bad Frames row: %v", domain.ErrCatalogue, err)
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan Frames: %v", domain.ErrCatalogue, err)
	}

	c.logger.Debug("catalogue loaded",
		ports.String("path", c.path),
		ports.Int("frames", len(metas)))
	return metas, nil
}

// GlobalMetadata returns the GlobalMetadata table as a key/value map.
func (c *Catalogue) GlobalMetadata(ctx context.Context) (map[string]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT Key, Value FROM GlobalMetadata`)
	if err != nil {
		return nil, fmt.Errorf("%w: query GlobalMetadata: %v", domain.ErrCatalogue, err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%w: bad GlobalMetadata row: %v", domain.ErrCatalogue, err)
		}
		meta[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan GlobalMetadata: %v", domain.ErrCatalogue, err)
	}
	return meta, nil
}

// Close releases the database connection.
func (c *Catalogue) Close() error {
	return c.db.Close()
}

var _ ports.Catalogue = (*Catalogue)(nil)
