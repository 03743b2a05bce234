package ports

// Sink receives compressed output from a compression session.
// It is deliberately shaped like io.Writer so any existing stream
// type (files, buffers, network connections) satisfies it.
//
// A Sink must report exactly how many bytes it accepted; sessions
// treat anything short of the full buffer as a fatal write error.
type Sink interface {
	Write(p []byte) (int, error)
}

// Source supplies compressed input to a decompression session.
// It is deliberately shaped like io.Reader.
//
// Returning zero bytes with a nil error (or io.EOF) signals that the
// source is exhausted; sessions decide from codec state whether that
// is a clean end of stream or a truncation.
type Source interface {
	Read(p []byte) (int, error)
}
