package domain

// CompressionOptions configures a compression or decompression session.
// The same option surface drives both directions; decompression ignores Level.
type CompressionOptions struct {
	// Gzip selects gzip framing: a fixed 10-byte header, a raw DEFLATE
	// body, and an 8-byte CRC32/size trailer. When false the stream uses
	// zlib framing, which is the default.
	//
	// Default: false
	Gzip bool

	// Level is the DEFLATE compression level passed to the codec.
	// Valid values range from -2 (Huffman-only) through 9 (best
	// compression); -1 selects the codec's default trade-off and 0
	// disables compression entirely (stored blocks).
	Level int

	// BufferSize bounds every single transfer between a session and its
	// sink or source. Compressed output reaches the sink in bursts of at
	// most BufferSize bytes, and the decompressor pulls at most
	// BufferSize bytes from its source per read.
	//
	// Default: 2048
	BufferSize int
}

// ChecksumAlgorithm represents supported checksum algorithms.
type ChecksumAlgorithm string
