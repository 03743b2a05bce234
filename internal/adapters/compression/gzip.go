package compression

import (
	"encoding/binary"
	"errors"
	"io"

	serrors "github.com/iamNilotpal/zstream/pkg/errors"
)

// ErrBadGzipHeader indicates the stream does not start with a valid
// gzip header: wrong magic bytes, a compression method other than
// DEFLATE, or reserved flag bits set.
var ErrBadGzipHeader = errors.New("bad gzip header")

const (
	gzipID1     = 0x1f
	gzipID2     = 0x8b
	gzipDeflate = 0x08
	gzipOSUnix  = 0x03

	gzipHeaderLen  = 10
	gzipTrailerLen = 8
)

// Header FLG bits, RFC 1952 section 2.3.1.
const (
	flagHeaderCRC byte = 1 << 1
	flagExtra     byte = 1 << 2
	flagName      byte = 1 << 3
	flagComment   byte = 1 << 4
	flagReserved  byte = 0xe0
)

// The header every gzip-mode compressor emits: DEFLATE method, no
// flags, zero mtime, no extra flags, OS code 3 (Unix).
var gzipHeader = [gzipHeaderLen]byte{gzipID1, gzipID2, gzipDeflate, 0, 0, 0, 0, 0, 0, gzipOSUnix}

// Parses and discards the gzip header before the first byte is
// decompressed. The fixed part is validated; the optional fields
// selected by the flag byte are skipped unverified.
func (d *Decompressor) readGzipHeader() error {
	var hdr [gzipHeaderLen]byte
	if err := d.readFull(hdr[:]); err != nil {
		return err
	}

	if hdr[0] != gzipID1 || hdr[1] != gzipID2 || hdr[2] != gzipDeflate || hdr[3]&flagReserved != 0 {
		return serrors.NewStreamError(serrors.ErrorFormat, "gzip header", ErrBadGzipHeader)
	}

	flags := hdr[3]

	if flags&flagExtra != 0 {
		var xlen [2]byte
		if err := d.readFull(xlen[:]); err != nil {
			return err
		}
		if err := d.skip(int(binary.LittleEndian.Uint16(xlen[:]))); err != nil {
			return err
		}
	}

	if flags&flagName != 0 {
		if err := d.skipString(); err != nil {
			return err
		}
	}

	if flags&flagComment != 0 {
		if err := d.skipString(); err != nil {
			return err
		}
	}

	if flags&flagHeaderCRC != 0 {
		if err := d.skip(2); err != nil {
			return err
		}
	}

	return nil
}

// Reads exactly len(p) bytes; a source that stops producing bytes
// mid-header is a read-category error, never a clean end of stream.
func (d *Decompressor) readFull(p []byte) error {
	if _, err := io.ReadFull(d.sr, p); err != nil {
		if se := serrors.AsStreamError(err); se != nil {
			return se
		}
		return serrors.NewStreamError(serrors.ErrorRead, "gzip header", err)
	}
	return nil
}

// Discards n header bytes.
func (d *Decompressor) skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := d.headerByte(); err != nil {
			return err
		}
	}
	return nil
}

// Discards a NUL-terminated header field.
func (d *Decompressor) skipString() error {
	for {
		b, err := d.headerByte()
		if err != nil {
			return err
		}
		if b == 0 {
			return nil
		}
	}
}

func (d *Decompressor) headerByte() (byte, error) {
	b, err := d.sr.ReadByte()
	if err != nil {
		if se := serrors.AsStreamError(err); se != nil {
			return 0, se
		}
		return 0, serrors.NewStreamError(serrors.ErrorRead, "gzip header", err)
	}
	return b, nil
}
