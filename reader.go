package script

import "io"

// eof is the sentinel returned by Reader.GetByte once the underlying
// stream is exhausted. -1 can never be a valid byte value.
const eof = -1

// Reader wraps a byte stream for the lexer. It guarantees that reads
// past the end of the stream are idempotent: once EOF is observed,
// every subsequent GetByte call returns eof again without touching
// the underlying reader.
//
// Reader owns the stream for as long as it is in use. Close clears
// only the EOF condition it tracks internally (not any error the
// underlying reader produced) so the caller may reuse the stream
// after rewinding it, mirroring the scoped-acquisition behavior of a
// stream adapter that only clears the stream's eofbit on release.
type Reader struct {
	src io.ReadSeeker
	eof bool
}

// NewReader takes ownership of src for the lifetime of the returned Reader.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src}
}

// GetByte returns the next byte of the stream, or eof when exhausted.
func (r *Reader) GetByte() int {
	if r.eof {
		return eof
	}
	var buf [1]byte
	n, err := r.src.Read(buf[:])
	if n == 0 || err != nil {
		r.eof = true
		return eof
	}
	return int(buf[0])
}

// Rewind seeks the stream back to its start and clears the EOF condition.
func (r *Reader) Rewind() {
	r.eof = false
	_, _ = r.src.Seek(0, io.SeekStart)
}

// Close clears the EOF bit this Reader observed, leaving the
// underlying stream free for reuse by the caller.
func (r *Reader) Close() {
	r.eof = false
}
