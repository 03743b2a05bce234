package ports

// ChecksumPort defines the interface for rolling checksum calculation.
// This allows us to swap checksum algorithms without changing session logic.
type ChecksumPort interface {
	// Checksum calculates the checksum of data in one shot.
	Checksum(data []byte) uint32

	// Update extends a running checksum with more data.
	// Feeding data incrementally through Update yields the same value
	// as a single Checksum call over the concatenated input.
	Update(sum uint32, data []byte) uint32

	// Verify reports whether data matches the expected checksum.
	Verify(data []byte, expected uint32) bool

	// Size returns the checksum size in bytes.
	Size() uint8

	// Name returns the algorithm name.
	Name() string
}
