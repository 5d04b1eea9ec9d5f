package token

import "testing"

func TestTokenStreamFirstNext(t *testing.T) {
	ts := NewTokenStream()
	ts.InsertLast(New(IF, 1, 1))
	ts.InsertLast(New(LPAREN, 1, 3))
	ts.InsertLast(New(EOF, 1, 4))

	first, ok := ts.First()
	if !ok || first.Kind != IF {
		t.Fatalf("First() = %v, %v; want IF, true", first, ok)
	}
	second, ok := ts.Next()
	if !ok || second.Kind != LPAREN {
		t.Fatalf("Next() = %v, %v; want LPAREN, true", second, ok)
	}
	third, ok := ts.Next()
	if !ok || third.Kind != EOF {
		t.Fatalf("Next() = %v, %v; want EOF, true", third, ok)
	}
	_, ok = ts.Next()
	if ok {
		t.Fatalf("Next() past tail returned ok=true")
	}
}

func TestTokenStreamEmpty(t *testing.T) {
	ts := NewTokenStream()
	if _, ok := ts.First(); ok {
		t.Errorf("First() on empty stream returned ok=true")
	}
	if k := ts.PeekKindIgnoringEOL(); k != EOF {
		t.Errorf("PeekKindIgnoringEOL() on empty stream = %v, want EOF", k)
	}
}

func TestPeekKindIgnoringEOL(t *testing.T) {
	ts := NewTokenStream()
	ts.InsertLast(New(EOL, 1, 1))
	ts.InsertLast(New(EOL, 2, 1))
	ts.InsertLast(New(IDENT, 3, 1))
	ts.First()

	if k := ts.PeekKindIgnoringEOL(); k != IDENT {
		t.Errorf("PeekKindIgnoringEOL() = %v, want IDENT", k)
	}
	// peeking must not move the active cursor
	cur, ok := ts.Current()
	if !ok || cur.Kind != EOL {
		t.Errorf("Current() after peek = %v, %v; want EOL, true", cur, ok)
	}
}

func TestDisposeIdempotentAgainstNil(t *testing.T) {
	var ts *TokenStream
	ts.Dispose()

	real := NewTokenStream()
	real.InsertLast(New(EOF, 1, 1))
	real.Dispose()
	real.Dispose()
	if _, ok := real.First(); ok {
		t.Errorf("First() after Dispose returned ok=true")
	}
}
