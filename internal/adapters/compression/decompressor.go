package compression

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/ports"
	serrors "github.com/iamNilotpal/zstream/pkg/errors"
)

// Decompressor streams decompressed data out of a compressed source.
// Compressed bytes are pulled from the source in bursts of at most
// BufferSize bytes and decoded incrementally into the caller's buffer.
//
// The source is borrowed, not owned, and must outlive the session.
// Close is safe at any point, including mid-stream.
// Not safe for concurrent use.
type Decompressor struct {
	sr  *sourceReader
	dec io.ReadCloser // Built lazily on the first Read.

	gzip   bool
	eof    bool // Codec reported a clean end of stream.
	closed bool
	log    *zap.SugaredLogger
}

// NewDecompressor creates a decompression session reading from source.
// A nil opts selects DefaultOptions; Level is ignored.
//
// Nothing is read from the source here: codec setup and, in gzip mode,
// header parsing are deferred until the first Read.
func NewDecompressor(source ports.Source, opts *Options) (*Decompressor, error) {
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

	d := Decompressor{
		sr:   &sourceReader{src: source, buf: newScratch(opts.BufferSize)},
		gzip: opts.Gzip,
		log:  log,
	}

	log.Debugw("decompression session opened", "gzip", opts.Gzip, "bufferSize", opts.BufferSize)
	return &d, nil
}

// Read decompresses into p and returns the number of bytes produced.
// It keeps pulling compressed input and decoding until p is full or the
// compressed stream ends, so a single call may perform several source
// reads. A short count therefore only ever means the stream ended.
//
// Read(nil) and reads with an empty buffer return 0 without touching
// the source. Once the stream has ended cleanly every subsequent call
// returns io.EOF without invoking the codec or the source again.
//
// Corrupt or truncated data yields a decompress-category error, source
// failures a read-category error, and an invalid gzip header a
// format-category error.
func (d *Decompressor) Read(p []byte) (int, error) {
	if d.closed {
		return 0, serrors.NewStreamError(serrors.ErrorUsage, "read", ErrSessionClosed)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if d.eof {
		return 0, io.EOF
	}

	if d.dec == nil {
		if err := d.init(); err != nil {
			return 0, err
		}
	}

	var total int
	for total < len(p) {
		n, err := d.dec.Read(p[total:])
		total += n
		if err == io.EOF {
			d.eof = true
			d.log.Debugw("decompression stream ended", "lastRead", total)
			break
		}
		if err != nil {
			return total, wrapCodec(serrors.ErrorDecompress, "read", err)
		}
	}

	if total == 0 {
		return 0, io.EOF
	}
	return total, nil
}

// Close releases the codec and the session's scratch buffer. It is
// idempotent and safe mid-stream; afterwards Read fails with a
// usage-category error.
func (d *Decompressor) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	releaseScratch(d.sr.buf)
	d.sr.buf = nil

	if d.dec != nil {
		if err := d.dec.Close(); err != nil {
			return wrapCodec(serrors.ErrorDecompress, "close", err)
		}
	}
	return nil
}

// Builds the decoder on first use. The zlib reader consumes its two
// header bytes during construction, which is exactly why this cannot
// happen in NewDecompressor.
func (d *Decompressor) init() error {
	if d.gzip {
		if err := d.readGzipHeader(); err != nil {
			return err
		}
		d.dec = flate.NewReader(d.sr)
		return nil
	}

	zr, err := zlib.NewReader(d.sr)
	if err != nil {
		return wrapCodec(serrors.ErrorDecompress, "zlib init", err)
	}
	d.dec = zr
	return nil
}

// sourceReader stages compressed input pulled from the source in
// bounded bursts. An exhausted source surfaces as io.EOF; the codec
// decides whether that is a clean end of stream or a truncation.
//
// It implements io.ByteReader so the flate and zlib decoders consume it
// directly instead of wrapping it in their own larger buffer.
type sourceReader struct {
	src  ports.Source
	buf  []byte
	r, w int
}

func (s *sourceReader) Read(p []byte) (int, error) {
	if s.r == s.w {
		if err := s.fill(); err != nil {
			return 0, err
		}
		if s.r == s.w {
			return 0, io.EOF
		}
	}

	n := copy(p, s.buf[s.r:s.w])
	s.r += n
	return n, nil
}

func (s *sourceReader) ReadByte() (byte, error) {
	if s.r == s.w {
		if err := s.fill(); err != nil {
			return 0, err
		}
		if s.r == s.w {
			return 0, io.EOF
		}
	}

	b := s.buf[s.r]
	s.r++
	return b, nil
}

func (s *sourceReader) fill() error {
	n, err := s.src.Read(s.buf)
	s.r, s.w = 0, n
	if err != nil && err != io.EOF {
		return serrors.NewStreamError(serrors.ErrorRead, "source read", err)
	}
	return nil
}
