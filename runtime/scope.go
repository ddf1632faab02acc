package runtime

import (
	"fmt"
)

// === Scopes ================================================================

// Scope is a named lexical scope, holding renamings for the symbols bound
// at its level. Scopes link back to a parent scope, forming a chain. The root
// scope has no parent.
//
// Scopes are never modified after construction; scopes of sibling lambdas
// may therefore share a parent without interfering.
type Scope struct {
	Name    string
	Parent  *Scope
	renames map[Symbol]Symbol
}

// NewScope creates a new scope. The rename map is copied.
func NewScope(nm string, parent *Scope, renames map[Symbol]Symbol) *Scope {
	sc := &Scope{
		Name:    nm,
		Parent:  parent,
		renames: make(map[Symbol]Symbol, len(renames)),
	}
	for from, to := range renames {
		sc.renames[from] = to
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// IsRoot is a predicate: Is this the outermost scope?
func (s *Scope) IsRoot() bool {
	return s.Parent == nil
}

// Binds is a predicate: does this scope itself (not its parents) bind sym?
func (s *Scope) Binds(sym Symbol) bool {
	_, ok := s.renames[sym]
	return ok
}

// Size returns the number of bindings at this level.
func (s *Scope) Size() int {
	return len(s.renames)
}

// Resolve finds the renaming of a symbol. Returns the new symbol and the
// scope (of the scope chain) the binding was found in. If no scope binds sym,
// Resolve returns sym unchanged and a nil scope.
//
func (s *Scope) Resolve(sym Symbol) (Symbol, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if to, ok := sc.renames[sym]; ok {
			return to, sc
		}
	}
	return sym, nil
}

// Lookup returns the renaming of sym, or sym itself if it is free.
func (s *Scope) Lookup(sym Symbol) Symbol {
	to, _ := s.Resolve(sym)
	return to
}

// Depth returns the number of scopes in the chain above s.
func (s *Scope) Depth() int {
	d := 0
	for sc := s.Parent; sc != nil; sc = sc.Parent {
		d++
	}
	return d
}
