// Package compression adapts arbitrary byte streams into incremental
// DEFLATE compressing and decompressing pipelines. Streams are
// zlib-framed by default; gzip framing (fixed header, raw DEFLATE body,
// CRC32/size trailer) is available as an option.
//
// Sessions are single-use and not safe for concurrent use: each one
// owns exclusive codec state tied to a single sink or source.
package compression

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	serrors "github.com/iamNilotpal/zstream/pkg/errors"
	"github.com/iamNilotpal/zstream/pkg/pool"
)

// DefaultBufferSize bounds sink/source transfers when no explicit
// buffer size is configured.
const DefaultBufferSize = 2048

// ErrSessionClosed indicates an operation on a closed session.
var ErrSessionClosed = errors.New("session is closed")

// Options configures a Compressor or Decompressor.
type Options struct {
	// Gzip selects gzip framing instead of the default zlib framing.
	// See domain.CompressionOptions.
	Gzip bool

	// Level is the DEFLATE compression level, -2 through 9. The zero
	// value means "no compression" (stored blocks); start from
	// DefaultOptions to get the codec's default trade-off instead.
	// Ignored by the decompressor.
	Level int

	// BufferSize bounds every single sink write and source read made by
	// a session. Zero means DefaultBufferSize.
	BufferSize int

	// Logger receives debug-level session lifecycle events.
	// Nil means no logging.
	Logger *zap.SugaredLogger
}

// DefaultOptions returns options with the recommended defaults:
// zlib framing, codec-default compression level and a 2 KiB transfer
// buffer.
func DefaultOptions() *Options {
	return &Options{
		Gzip:       false,
		Level:      flate.DefaultCompression,
		BufferSize: DefaultBufferSize,
	}
}

// Validate checks that the compression options are within acceptable
// bounds.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < flate.HuffmanOnly || input.Level > flate.BestCompression {
		return serrors.NewValidationError(
			"level", input.Level,
			fmt.Errorf("compression level must be between %d and %d, got %d",
				flate.HuffmanOnly, flate.BestCompression, input.Level),
		)
	}

	if input.BufferSize <= 0 {
		return serrors.NewValidationError(
			"buffer_size", input.BufferSize,
			fmt.Errorf("buffer size must be greater than 0, got %d", input.BufferSize),
		)
	}

	return nil
}

// Fills in zero values so callers can pass a partial or nil Options.
func withDefaults(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}

	out := *opts
	if out.BufferSize == 0 {
		out.BufferSize = DefaultBufferSize
	}
	return &out
}

// Scratch buffers of the default size are pooled across sessions.
var scratchPool = pool.NewBytePool(DefaultBufferSize)

func newScratch(size int) []byte {
	if size == DefaultBufferSize {
		return scratchPool.Get()
	}
	return make([]byte, size)
}

func releaseScratch(b []byte) {
	scratchPool.Put(b)
}

// Codec and stream failures already categorized by the session's own
// plumbing pass through untouched; anything else is attributed to the
// codec under the given category.
func wrapCodec(category serrors.ErrorCategory, operation string, err error) error {
	if se := serrors.AsStreamError(err); se != nil {
		return se
	}
	return serrors.NewStreamError(category, operation, err)
}
