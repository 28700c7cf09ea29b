package timsdf

import (
	"github.com/ims-labs/timsdf/internal/domain"
	"github.com/ims-labs/timsdf/internal/ports"
	"github.com/ims-labs/timsdf/pkg/log"
)

// Logger is the structured logging interface accepted by WithLogger.
type Logger = log.Logger

// CatalogueFactory opens the metadata catalogue of a store.
// The default factory reads analysis.tdf with the bundled SQLite driver.
type CatalogueFactory func(dataPath string, logger ports.Logger) (ports.Catalogue, error)

// DecoderFactory opens a decoder session against a store's raw container.
// The default factory decodes analysis.tdf_bin natively.
type DecoderFactory func(dataPath string, cal domain.Calibration, logger ports.Logger) (ports.FrameDecoder, error)

// Option configures optional behavior of a Handle.
type Option func(*options)

// options holds the optional configuration applied by Open.
type options struct {
	logger    ports.Logger
	catalogue CatalogueFactory
	decoder   DecoderFactory
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCatalogueFactory replaces how the metadata catalogue is opened.
// Intended for embedding and for tests that substitute a counting double.
func WithCatalogueFactory(f CatalogueFactory) Option {
	return func(o *options) {
		o.catalogue = f
	}
}

// WithDecoderFactory replaces how the decoder session is opened, e.g. to
// route decoding through a vendor library instead of the native codec.
func WithDecoderFactory(f DecoderFactory) Option {
	return func(o *options) {
		o.decoder = f
	}
}
