package runtime

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is an ordered set of symbols. Iteration order is the order of
// identity (see Symbol.Less), which makes output deterministic.
type SymbolSet struct {
	set *treeset.Set
}

// symbolComparator orders symbols by their serial number. Symbols of
// different tables are kept apart, ordered by table.
var symbolComparator utils.Comparator = func(a, b interface{}) int {
	s1, s2 := a.(Symbol), b.(Symbol)
	switch {
	case s1.tableID() < s2.tableID():
		return -1
	case s1.tableID() > s2.tableID():
		return 1
	case s1.ID() < s2.ID():
		return -1
	case s1.ID() > s2.ID():
		return 1
	}
	return 0
}

// NewSymbolSet creates a set, optionally pre-filled with symbols.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, s := range syms {
		S.set.Add(s)
	}
	return S
}

// Add adds symbols to the set.
func (S *SymbolSet) Add(syms ...Symbol) {
	for _, s := range syms {
		S.set.Add(s)
	}
}

// Remove removes symbols from the set.
func (S *SymbolSet) Remove(syms ...Symbol) {
	for _, s := range syms {
		S.set.Remove(s)
	}
}

// Contains is a predicate: is sym an element of S?
func (S *SymbolSet) Contains(sym Symbol) bool {
	return S.set.Contains(sym)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	return S.set.Size()
}

// Empty is a predicate: is S the empty set?
func (S *SymbolSet) Empty() bool {
	return S.set.Empty()
}

// Union adds all elements of other to S.
func (S *SymbolSet) Union(other *SymbolSet) {
	if other == nil {
		return
	}
	S.set.Add(other.set.Values()...)
}

// Values returns the symbols of S in order.
func (S *SymbolSet) Values() []Symbol {
	vals := S.set.Values()
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

func (S *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, s := range S.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.Name())
	}
	b.WriteString("}")
	return b.String()
}
