package ast

// Program is the tree root: an import descriptor followed by an
// ordered list of classes.
type Program struct {
	Import  *Import // always set by parser.Parse, which rejects a program with no import clause
	Classes []*Class
}

// Import models `import "ifj25" for Ifj`. Both fields are fixed by the
// grammar but kept as data rather than a bare presence flag so a syntax
// error can report which part mismatched.
type Import struct {
	Path  string // must be "ifj25"
	Alias string // must be "Ifj"
}

// Class is a top-level `class Name { ... }` declaration.
type Class struct {
	Name string
	Body *Block
}

// Block is an ordered list of statements belonging to one lexical
// region. Parent is a back-reference to the block that immediately
// lexically encloses it (nil for a class body); it must never be
// followed during destruction, only for diagnostic context.
type Block struct {
	Statements []Stmt
	Parent     *Block
}
