package compression

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"

	"github.com/iamNilotpal/zstream/internal/adapters/checksum"
	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/ports"
	serrors "github.com/iamNilotpal/zstream/pkg/errors"
)

// The subset of the codec writers the compressor drives. Both the raw
// flate writer and the zlib writer satisfy it.
type encoder interface {
	io.WriteCloser
	Flush() error
}

// Compressor streams DEFLATE-compressed data to a sink. Input fed
// through Write is compressed incrementally and forwarded to the sink
// in bursts of at most BufferSize bytes; nothing larger is ever
// buffered on the session's side of the codec.
//
// A Compressor is a one-shot stream: construct, Write any number of
// times, then Close exactly once to finalize the stream. In gzip mode
// Close also appends the CRC32/size trailer, so dropping a Compressor
// without closing it produces output no decoder can finish.
//
// The sink is borrowed, not owned, and must outlive the session.
// Not safe for concurrent use.
type Compressor struct {
	cw  *chunkedWriter
	enc encoder

	// Gzip trailer accounting: running CRC32 over the raw input and the
	// total input size mod 2^32.
	crc  ports.ChecksumPort
	sum  uint32
	size uint32

	gzip   bool
	closed bool
	log    *zap.SugaredLogger
}

// NewCompressor creates a compression session writing to sink.
// A nil opts selects DefaultOptions.
//
// In gzip mode the fixed 10-byte gzip header is written to the sink
// before NewCompressor returns, so sink failures can surface here.
func NewCompressor(sink ports.Sink, opts *Options) (*Compressor, error) {
	opts = withDefaults(opts)
	if err := Validate(&domain.CompressionOptions{
		Gzip:       opts.Gzip,
		Level:      opts.Level,
		BufferSize: opts.BufferSize,
	}); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	c := Compressor{
		cw:   &chunkedWriter{sink: sink, max: opts.BufferSize},
		gzip: opts.Gzip,
		log:  log,
	}

	if opts.Gzip {
		crc, err := checksum.New(checksum.CRC32IEEE)
		if err != nil {
			return nil, serrors.NewStreamError(serrors.ErrorInit, "new compressor", err)
		}
		c.crc = crc

		if _, err := c.cw.Write(gzipHeader[:]); err != nil {
			return nil, err
		}

		// Raw DEFLATE window; the gzip framing around it is ours.
		enc, err := flate.NewWriter(c.cw, opts.Level)
		if err != nil {
			return nil, serrors.NewStreamError(serrors.ErrorInit, "deflate init", err)
		}
		c.enc = enc
	} else {
		enc, err := zlib.NewWriterLevel(c.cw, opts.Level)
		if err != nil {
			return nil, serrors.NewStreamError(serrors.ErrorInit, "zlib init", err)
		}
		c.enc = enc
	}

	log.Debugw("compression session opened", "gzip", opts.Gzip, "level", opts.Level, "bufferSize", opts.BufferSize)
	return &c, nil
}

// Write compresses p and forwards the compressed output to the sink as
// it is produced. A single call may trigger any number of sink writes,
// including none while the codec accumulates input.
//
// Returns a usage-category error after Close, a write-category error if
// the sink fails or accepts a short write, and a compress-category
// error if the codec rejects the data.
func (c *Compressor) Write(p []byte) (int, error) {
	if c.closed {
		return 0, serrors.NewStreamError(serrors.ErrorUsage, "write", ErrSessionClosed)
	}

	if c.gzip {
		c.sum = c.crc.Update(c.sum, p)
		c.size += uint32(len(p))
	}

	n, err := c.enc.Write(p)
	if err != nil {
		return n, wrapCodec(serrors.ErrorCompress, "write", err)
	}
	return n, nil
}

// Flush emits a sync flush so everything written so far can be decoded
// by the receiver. Flushing degrades the compression ratio and is never
// required for correctness; Close finalizes the stream on its own.
func (c *Compressor) Flush() error {
	if c.closed {
		return serrors.NewStreamError(serrors.ErrorUsage, "flush", ErrSessionClosed)
	}

	if err := c.enc.Flush(); err != nil {
		return wrapCodec(serrors.ErrorCompress, "flush", err)
	}
	return nil
}

// Close drains the codec, finalizes the compressed stream and, in gzip
// mode, appends the 8-byte trailer: CRC32 of all input as little-endian
// 32-bit, then the input size mod 2^32 as little-endian 32-bit.
//
// Close is idempotent; after the first call Write and Flush fail with a
// usage-category error.
func (c *Compressor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if err := c.enc.Close(); err != nil {
		return wrapCodec(serrors.ErrorCompress, "close", err)
	}

	if c.gzip {
		var trailer [gzipTrailerLen]byte
		binary.LittleEndian.PutUint32(trailer[0:4], c.sum)
		binary.LittleEndian.PutUint32(trailer[4:8], c.size)
		if _, err := c.cw.Write(trailer[:]); err != nil {
			return err
		}
		c.log.Debugw("gzip stream finalized", "crc32", c.sum, "size", c.size)
	}

	return nil
}

// chunkedWriter forwards codec output to the sink in bursts of at most
// max bytes and promotes short writes to write-category errors, per the
// sink contract.
type chunkedWriter struct {
	sink ports.Sink
	max  int
}

func (w *chunkedWriter) Write(p []byte) (int, error) {
	var written int
	for written < len(p) {
		chunk := p[written:]
		if len(chunk) > w.max {
			chunk = chunk[:w.max]
		}

		n, err := w.sink.Write(chunk)
		written += n
		if err != nil {
			return written, serrors.NewStreamError(serrors.ErrorWrite, "sink write", err)
		}
		if n != len(chunk) {
			return written, serrors.NewStreamError(serrors.ErrorWrite, "sink write", io.ErrShortWrite)
		}
	}
	return written, nil
}
