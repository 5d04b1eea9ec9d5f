// Package strbuf implements the growable byte buffer the scanner uses to
// build lexemes and the emitter uses to accumulate its output program.
//
// The source this module is adapted from represents the buffer as an
// explicit capacity/length pair over a null-terminated byte array. Go's
// slice header already tracks length and capacity, so this type exposes
// the same operations (create/clear/append/concat/destroy) over a plain
// []byte rather than reimplementing manual capacity bookkeeping.
package strbuf

const defaultCapacity = 16

// Buffer is a growable, appendable sequence of bytes.
type Buffer struct {
	data []byte
}

// New creates a Buffer. A nonpositive initialCapacity is treated as the
// default capacity of 16.
func New(initialCapacity int) *Buffer {
	if initialCapacity <= 0 {
		initialCapacity = defaultCapacity
	}
	return &Buffer{data: make([]byte, 0, initialCapacity)}
}

// Clear empties the buffer without releasing its underlying storage.
func (b *Buffer) Clear() {
	if b == nil {
		return
	}
	b.data = b.data[:0]
}

// AppendChar appends a single byte to the buffer.
func (b *Buffer) AppendChar(c byte) {
	b.data = append(b.data, c)
}

// AppendLiteral appends a run of bytes to the buffer.
func (b *Buffer) AppendLiteral(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString appends a string's bytes to the buffer.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Concat appends the contents of other to b without modifying other.
func (b *Buffer) Concat(other *Buffer) {
	if other == nil {
		return
	}
	b.data = append(b.data, other.data...)
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and must not be mutated by the caller.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// String returns the buffer's contents as a string.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Destroy releases the buffer's storage. It is idempotent and safe to call
// on a nil Buffer.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	b.data = nil
}
