package token

// node is one link in the TokenStream's doubly linked list.
type node struct {
	tok  Token
	prev *node
	next *node
}

// TokenStream is an ordered, bidirectionally traversable sequence of
// tokens with a movable "active" cursor, populated once by the scanner
// and then walked by the parser. This mirrors spec's data-model
// description of the stream as a real linked list rather than a slice
// the parser indexes by hand.
type TokenStream struct {
	head   *node
	tail   *node
	active *node
}

// NewTokenStream returns an empty, initialized stream.
func NewTokenStream() *TokenStream {
	return &TokenStream{}
}

// InsertLast appends tok to the end of the stream.
func (ts *TokenStream) InsertLast(tok Token) {
	n := &node{tok: tok}
	if ts.tail == nil {
		ts.head = n
		ts.tail = n
		return
	}
	n.prev = ts.tail
	ts.tail.next = n
	ts.tail = n
}

// First resets the active cursor to the head of the stream and returns
// its token. The second return value is false if the stream is empty.
func (ts *TokenStream) First() (Token, bool) {
	ts.active = ts.head
	if ts.active == nil {
		return Token{}, false
	}
	return ts.active.tok, true
}

// Current returns the token at the active cursor without moving it.
func (ts *TokenStream) Current() (Token, bool) {
	if ts.active == nil {
		return Token{}, false
	}
	return ts.active.tok, true
}

// Next advances the active cursor and returns its new token. The second
// return value is false once the cursor runs past the tail.
func (ts *TokenStream) Next() (Token, bool) {
	if ts.active == nil {
		return Token{}, false
	}
	ts.active = ts.active.next
	if ts.active == nil {
		return Token{}, false
	}
	return ts.active.tok, true
}

// PeekKindIgnoringEOL walks forward from the active cursor without
// moving it, returning the Kind of the first token at or after the
// cursor that is not EOL. It returns EOF if the stream runs out first.
func (ts *TokenStream) PeekKindIgnoringEOL() Kind {
	n := ts.active
	for n != nil {
		if n.tok.Kind != EOL {
			return n.tok.Kind
		}
		n = n.next
	}
	return EOF
}

// Dispose releases the stream's nodes. It is idempotent and safe to
// call on a nil TokenStream.
func (ts *TokenStream) Dispose() {
	if ts == nil {
		return
	}
	ts.head = nil
	ts.tail = nil
	ts.active = nil
}
