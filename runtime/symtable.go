package runtime

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Symbol table for identifier names. There is no process-wide table:
// clients create one and hand it to every pass which creates symbols.

// --- Symbols ---------------------------------------------------------------

// Symbol is a handle for an interned name. Symbols of the same table compare
// equal with == if and only if their names are equal. The zero value is not a
// valid symbol.
// Symbols may be copied freely and used as map keys.
type Symbol struct {
	entry *symEntry
}

type symEntry struct {
	name  string
	id    uint32
	table uint32 // serial number of the owning table
}

// Name gets the symbol's name.
func (s Symbol) Name() string {
	if s.entry == nil {
		return ""
	}
	return s.entry.name
}

// ID returns the serial number of a symbol within its table. IDs start at 0
// and are handed out in interning order.
func (s Symbol) ID() uint32 {
	if s.entry == nil {
		return 0
	}
	return s.entry.id
}

func (s Symbol) tableID() uint32 {
	if s.entry == nil {
		return 0
	}
	return s.entry.table
}

// IsValid is a predicate: has this symbol been created by a symbol table?
func (s Symbol) IsValid() bool {
	return s.entry != nil
}

// Less imposes an order on symbols, based on their identity.
// This is not lexical order.
func (s Symbol) Less(other Symbol) bool {
	return s.ID() < other.ID()
}

// String returns the symbol's name.
func (s Symbol) String() string {
	return s.Name()
}

// GoString is a debug Stringer for symbols.
func (s Symbol) GoString() string {
	return fmt.Sprintf("<sym '%s':%d>", s.Name(), s.ID())
}

// === Symbol Tables =========================================================

// SymbolTable is a table of interned symbols. It is safe for concurrent use.
// Entries are never removed.
type SymbolTable struct {
	mu     sync.Mutex
	id     uint32
	table  map[string]*symEntry
	serial []*symEntry
}

var tableCount uint32

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		id:     atomic.AddUint32(&tableCount, 1),
		table:  make(map[string]*symEntry),
		serial: make([]*symEntry, 0, 64),
	}
}

// Intern returns the symbol for a name, creating it if necessary.
// Equal names always yield equal symbols.
func (t *SymbolTable) Intern(name string) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, found := t.table[name]
	if !found {
		e = &symEntry{name: name, id: uint32(len(t.serial)), table: t.id}
		t.table[name] = e
		t.serial = append(t.serial, e)
	}
	return Symbol{entry: e}
}

// Lookup checks for a symbol in the table without interning it.
// Returns the symbol and a flag, signalling whether the name has been
// interned before.
//
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, found := t.table[name]
	if !found {
		return Symbol{}, false
	}
	return Symbol{entry: e}, true
}

// ByID resolves a symbol from its serial number.
func (t *SymbolTable) ByID(id uint32) (Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) >= len(t.serial) {
		return Symbol{}, false
	}
	return Symbol{entry: t.serial[id]}, true
}

// Contains is a predicate: is s a symbol of this table?
func (t *SymbolTable) Contains(s Symbol) bool {
	if !s.IsValid() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return int(s.entry.id) < len(t.serial) && t.serial[s.entry.id] == s.entry
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.serial)
}

// Gensym interns a fresh symbol, named prefix followed by a number. Numbers
// are taken from *counter, which is incremented for every attempt. If
// avoidExisting is set, names already present in the table are skipped.
func (t *SymbolTable) Gensym(prefix string, counter *int, avoidExisting bool) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		name := fmt.Sprintf("%s%d", prefix, *counter)
		*counter++
		e, found := t.table[name]
		if found && avoidExisting {
			tracer().Debugf("gensym: skipping existing name %s", name)
			continue
		}
		if !found {
			e = &symEntry{name: name, id: uint32(len(t.serial)), table: t.id}
			t.table[name] = e
			t.serial = append(t.serial, e)
		}
		return Symbol{entry: e}
	}
}
