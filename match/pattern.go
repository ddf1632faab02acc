package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Term is the interface a tree type has to implement to be subject to
// pattern matching.
type Term interface {
	IsNil() bool                // is this the empty list?
	SymbolName() (string, bool) // name of a symbol, false for non-symbols
	First() (Term, bool)        // car of a pair, false for non-pairs
	Rest() (Term, bool)         // cdr of a pair, false for non-pairs
}

// AtomEqualer may be implemented by terms to support literal atoms in patterns.
// Terms not implementing it never match a literal atom.
type AtomEqualer interface {
	EqualAtom(v interface{}) bool
}

// Bindings collects the sub-trees bound by the captures of a pattern.
type Bindings map[string]Term

// Get returns the term bound to name, or nil.
func (b Bindings) Get(name string) Term {
	return b[name]
}

// Pattern is a compiled pattern.
type Pattern interface {
	// Match checks t against the pattern. It adds bindings for captures to b.
	// Match returns false if t does not have the pattern's shape; b may then
	// contain partial bindings and should be discarded.
	Match(t Term, b Bindings) bool
	String() string
}

// Matches matches a pattern against a term and returns fresh bindings.
func Matches(p Pattern, t Term) (Bindings, bool) {
	b := make(Bindings)
	if !p.Match(t, b) {
		return nil, false
	}
	return b, true
}

// --- Patterns --------------------------------------------------------------

type wildcard struct{}

// Wildcard is a pattern matching any term.
func Wildcard() Pattern {
	return wildcard{}
}

func (wildcard) Match(Term, Bindings) bool { return true }
func (wildcard) String() string            { return "_" }

type capture struct {
	name string
}

// Capture is a pattern matching any term, binding it to name.
func Capture(name string) Pattern {
	return capture{name: name}
}

func (p capture) Match(t Term, b Bindings) bool {
	b[p.name] = t
	return true
}

func (p capture) String() string {
	return "?" + p.name
}

type symbol struct {
	name string
}

// Symbol is a pattern matching a symbol with a given name.
func Symbol(name string) Pattern {
	return symbol{name: name}
}

func (p symbol) Match(t Term, b Bindings) bool {
	name, ok := t.SymbolName()
	return ok && name == p.name
}

func (p symbol) String() string {
	return p.name
}

type literal struct {
	value interface{}
}

// Literal is a pattern matching an atom equal to v. Symbols should be
// matched with pattern Symbol.
func Literal(v interface{}) Pattern {
	return literal{value: v}
}

func (p literal) Match(t Term, b Bindings) bool {
	if eq, ok := t.(AtomEqualer); ok {
		return eq.EqualAtom(p.value)
	}
	return false
}

func (p literal) String() string {
	if s, ok := p.value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", p.value)
}

type list struct {
	elems []Pattern
	rest  Pattern // nil for proper lists
}

// List is a pattern matching a proper list of exactly len(elems) elements,
// where each element matches the corresponding sub-pattern.
// List() matches nil only.
func List(elems ...Pattern) Pattern {
	return list{elems: elems}
}

// Nil is a pattern matching the empty list.
func Nil() Pattern {
	return list{}
}

// ListRest is a pattern matching a list starting with elements matching elems.
// The remaining tail after len(elems) steps is matched against rest. The tail
// may be any term, thus dotted pairs may be matched.
func ListRest(rest Pattern, elems ...Pattern) Pattern {
	if rest == nil {
		rest = Nil()
	}
	return list{elems: elems, rest: rest}
}

func (p list) Match(t Term, b Bindings) bool {
	cur := t
	for _, sub := range p.elems {
		car, ok := cur.First()
		if !ok || !sub.Match(car, b) {
			return false
		}
		cur, _ = cur.Rest()
	}
	if p.rest == nil {
		return cur.IsNil()
	}
	return p.rest.Match(cur, b)
}

func (p list) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range p.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	if p.rest != nil {
		sb.WriteString(" . ")
		sb.WriteString(p.rest.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

type predicate struct {
	name string
	pred func(Term) bool
}

// Pred is a pattern matching every term for which pred returns true.
// Name is used for debugging output only.
func Pred(name string, pred func(Term) bool) Pattern {
	return predicate{name: name, pred: pred}
}

func (p predicate) Match(t Term, b Bindings) bool {
	return p.pred(t)
}

func (p predicate) String() string {
	return "#" + p.name
}

type as struct {
	name string
	sub  Pattern
}

// Bind is a pattern matching sub, additionally binding the whole term to name.
func Bind(name string, sub Pattern) Pattern {
	return as{name: name, sub: sub}
}

func (p as) Match(t Term, b Bindings) bool {
	if !p.sub.Match(t, b) {
		return false
	}
	b[p.name] = t
	return true
}

func (p as) String() string {
	return "?" + p.name + "@" + p.sub.String()
}
