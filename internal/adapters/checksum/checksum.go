package checksum

import (
	"fmt"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/ports"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums.
	// This is the polynomial mandated by the gzip trailer (RFC 1952).
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC32Castagnoli uses the Castagnoli polynomial, which has hardware
	// support on modern CPUs. Not valid for gzip framing.
	CRC32Castagnoli domain.ChecksumAlgorithm = "crc32-castagnoli"
)

// New returns the checksum adapter for the requested algorithm.
func New(algorithm domain.ChecksumAlgorithm) (ports.ChecksumPort, error) {
	switch algorithm {
	case CRC32IEEE:
		return NewCRC32IEEE(), nil
	case CRC32Castagnoli:
		return NewCRC32Castagnoli(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}
