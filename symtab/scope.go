package symtab

import "github.com/liskarovh/ifj25c/internal/stack"

// Frame is one scope: an AVL tree of the symbols declared directly in
// it. Popping a frame invalidates every record it holds; callers must
// not retain Symbol pointers past the matching Pop.
type Frame struct {
	root *avlNode
}

// declareLocal inserts name into the frame. It reports false if name
// already exists in this frame (no redeclaration within the same
// block).
func (f *Frame) declareLocal(sym Symbol) bool {
	root, ok := avlInsert(f.root, sym)
	f.root = root
	return ok
}

func (f *Frame) lookup(name string) (*Symbol, bool) {
	return avlFind(f.root, name)
}

// ScopeStack is a last-in-first-out stack of Frames supporting
// shadowing lookups, built on the module's generic Stack.
type ScopeStack struct {
	frames stack.Stack[*Frame]
}

// NewScopeStack returns an empty scope stack.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{}
}

// Push opens a fresh frame.
func (s *ScopeStack) Push() {
	s.frames.Push(&Frame{})
}

// Pop discards the innermost frame and its symbols.
func (s *ScopeStack) Pop() {
	s.frames.Pop()
}

// Top returns the innermost frame, or nil if the stack is empty.
func (s *ScopeStack) Top() *Frame {
	f, ok := s.frames.Peek()
	if !ok {
		return nil
	}
	return f
}

// DeclareLocal declares name in the innermost frame. It reports
// false if the stack is empty or name is already declared in that
// frame.
func (s *ScopeStack) DeclareLocal(name string, kind SymbolKind, dataType DataType, global, defined bool) bool {
	top := s.Top()
	if top == nil {
		return false
	}
	return top.declareLocal(Symbol{
		Name:     name,
		Kind:     kind,
		DataType: dataType,
		Global:   global,
		Defined:  defined,
	})
}

// DeclareFunction declares a KindFunction symbol in the innermost
// frame with the given arity.
func (s *ScopeStack) DeclareFunction(name string, arity int) bool {
	top := s.Top()
	if top == nil {
		return false
	}
	return top.declareLocal(Symbol{Name: name, Kind: KindFunction, Defined: true, Arity: arity})
}

// LookupInCurrent looks up name only in the innermost frame.
func (s *ScopeStack) LookupInCurrent(name string) (*Symbol, bool) {
	top := s.Top()
	if top == nil {
		return nil, false
	}
	return top.lookup(name)
}

// LookupAnywhere scans frames innermost to outermost and returns the
// first match, implementing shadowing.
func (s *ScopeStack) LookupAnywhere(name string) (*Symbol, bool) {
	for i := 0; i < s.frames.Len(); i++ {
		f, ok := s.frames.At(i)
		if !ok {
			continue
		}
		if sym, found := f.lookup(name); found {
			return sym, true
		}
	}
	return nil, false
}

// Dispose empties the stack.
func (s *ScopeStack) Dispose() {
	s.frames = nil
}
