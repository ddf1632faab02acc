package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/match"
	"github.com/npillmayer/schemer/runtime"
)

// Type is the tag of an object.
type Type int8

// Object tags.
const (
	UndefType Type = iota
	NilType
	IntType
	FloatType
	SymbolType
	StringType
	FunctionType
	ConsType
)

var typeNames = []string{"undefined", "nil", "integer", "float", "symbol",
	"string", "function", "pair"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Object is a node of a tagged value tree.
// The zero value is an undefined object.
type Object struct {
	typ Type
	num int64   // payload for integers and function addresses
	flt float64 // payload for floats
	str string  // payload for strings
	sym runtime.Symbol
	car *Object
	cdr *Object
}

var nilObject = &Object{typ: NilType}
var undefObject = &Object{typ: UndefType}

// --- Constructors ----------------------------------------------------------

// Nil returns the empty list.
func Nil() *Object {
	return nilObject
}

// Undef returns an undefined object.
func Undef() *Object {
	return undefObject
}

// Integer creates an integer atom.
func Integer(n int64) *Object {
	return &Object{typ: IntType, num: n}
}

// Float creates a float atom.
func Float(x float64) *Object {
	return &Object{typ: FloatType, flt: x}
}

// Symbol creates a symbol atom.
func Symbol(sym runtime.Symbol) *Object {
	return &Object{typ: SymbolType, sym: sym}
}

// String creates a string atom.
func String(s string) *Object {
	return &Object{typ: StringType, str: s}
}

// Function creates an atom referencing external code.
func Function(addr uintptr) *Object {
	return &Object{typ: FunctionType, num: int64(addr)}
}

// Cons creates a pair. Nil arguments are treated as the empty list.
func Cons(car, cdr *Object) *Object {
	return &Object{typ: ConsType, car: orNil(car), cdr: orNil(cdr)}
}

func orNil(o *Object) *Object {
	if o == nil {
		return nilObject
	}
	return o
}

// --- Predicates and accessors ----------------------------------------------

// Type returns the tag of o.
func (o *Object) Type() Type {
	if o == nil {
		return NilType
	}
	return o.typ
}

// IsUndef is a predicate.
func (o *Object) IsUndef() bool { return o.Type() == UndefType }

// IsNil is a predicate: is o the empty list?
func (o *Object) IsNil() bool { return o.Type() == NilType }

// IsInteger is a predicate.
func (o *Object) IsInteger() bool { return o.Type() == IntType }

// IsFloat is a predicate.
func (o *Object) IsFloat() bool { return o.Type() == FloatType }

// IsSymbol is a predicate.
func (o *Object) IsSymbol() bool { return o.Type() == SymbolType }

// IsString is a predicate.
func (o *Object) IsString() bool { return o.Type() == StringType }

// IsFunction is a predicate.
func (o *Object) IsFunction() bool { return o.Type() == FunctionType }

// IsPair is a predicate.
func (o *Object) IsPair() bool { return o.Type() == ConsType }

// IsAtom is true for every object except pairs.
func (o *Object) IsAtom() bool { return o.Type() != ConsType }

// AsInteger returns the integer payload, if o is an integer.
func (o *Object) AsInteger() (int64, bool) {
	if !o.IsInteger() {
		return 0, false
	}
	return o.num, true
}

// AsFloat returns the float payload, if o is a float.
func (o *Object) AsFloat() (float64, bool) {
	if !o.IsFloat() {
		return 0, false
	}
	return o.flt, true
}

// AsSymbol returns the symbol payload, if o is a symbol.
func (o *Object) AsSymbol() (runtime.Symbol, bool) {
	if !o.IsSymbol() {
		return runtime.Symbol{}, false
	}
	return o.sym, true
}

// AsString returns the string payload, if o is a string.
func (o *Object) AsString() (string, bool) {
	if !o.IsString() {
		return "", false
	}
	return o.str, true
}

// AsFunction returns the code address, if o is a function.
func (o *Object) AsFunction() (uintptr, bool) {
	if !o.IsFunction() {
		return 0, false
	}
	return uintptr(o.num), true
}

// Car returns the first part of a pair. It returns a NotAPair error for
// non-pairs.
func (o *Object) Car() (*Object, error) {
	if !o.IsPair() {
		return nil, schemer.Errorf(schemer.NotAPair, o, "car of %s", o)
	}
	return o.car, nil
}

// Cdr returns the second part of a pair. It returns a NotAPair error for
// non-pairs.
func (o *Object) Cdr() (*Object, error) {
	if !o.IsPair() {
		return nil, schemer.Errorf(schemer.NotAPair, o, "cdr of %s", o)
	}
	return o.cdr, nil
}

// Decons returns car and cdr of a pair.
func (o *Object) Decons() (*Object, *Object, error) {
	if !o.IsPair() {
		return nil, nil, schemer.Errorf(schemer.NotAPair, o, "cannot decons %s", o)
	}
	return o.car, o.cdr, nil
}

// GetRef returns the i-th element of a list, or false if the list is shorter
// or o is not a list.
func (o *Object) GetRef(i int) (*Object, bool) {
	if i < 0 {
		return nil, false
	}
	cur := o
	for ; i > 0 && cur.IsPair(); i-- {
		cur = cur.cdr
	}
	if !cur.IsPair() {
		return nil, false
	}
	return cur.car, true
}

// ListLen returns the length of a proper list. It returns false for
// atoms (other than Nil) and dotted lists.
func (o *Object) ListLen() (int, bool) {
	n := 0
	cur := o
	for cur.IsPair() {
		n++
		cur = cur.cdr
	}
	if !cur.IsNil() {
		return 0, false
	}
	return n, true
}

// ListToVec collects the elements of a list until the first non-pair.
// Any non-nil terminator is dropped.
func (o *Object) ListToVec() []*Object {
	var v []*Object
	for cur := o; cur.IsPair(); cur = cur.cdr {
		v = append(v, cur.car)
	}
	return v
}

// Map applies f to every element of a proper list, building a new list.
// The first error of f aborts the mapping. Mapping over a dotted list
// results in a NotAPair error.
func (o *Object) Map(f func(*Object) (*Object, error)) (*Object, error) {
	lb := NewListBuilder()
	cur := o
	for cur.IsPair() {
		r, err := f(cur.car)
		if err != nil {
			return nil, err
		}
		lb.Append(r)
		cur = cur.cdr
	}
	if !cur.IsNil() {
		return nil, schemer.Errorf(schemer.NotAPair, o, "cannot map over improper list %s", o)
	}
	return lb.Build(), nil
}

// Equal compares two trees structurally. Floats are compared by value,
// symbols by identity.
func (o *Object) Equal(other *Object) bool {
	if o.Type() != other.Type() {
		return false
	}
	switch o.Type() {
	case UndefType, NilType:
		return true
	case IntType, FunctionType:
		return o.num == other.num
	case FloatType:
		return o.flt == other.flt
	case SymbolType:
		return o.sym == other.sym
	case StringType:
		return o.str == other.str
	}
	return o.car.Equal(other.car) && o.cdr.Equal(other.cdr)
}

// --- Printing --------------------------------------------------------------

func (o *Object) String() string {
	var sb strings.Builder
	o.writeTo(&sb)
	return sb.String()
}

func (o *Object) writeTo(sb *strings.Builder) {
	switch o.Type() {
	case UndefType:
		sb.WriteString("#undefined")
	case NilType:
		sb.WriteString("'()")
	case IntType:
		sb.WriteString(strconv.FormatInt(o.num, 10))
	case FloatType:
		sb.WriteString(FormatFloat(o.flt))
	case SymbolType:
		sb.WriteString(o.sym.Name())
	case StringType:
		sb.WriteString(strconv.Quote(o.str))
	case FunctionType:
		fmt.Fprintf(sb, "#<function %#x>", o.num)
	case ConsType:
		sb.WriteByte('(')
		cur := o
		for {
			cur.car.writeTo(sb)
			if cur.cdr.IsNil() {
				break
			}
			if !cur.cdr.IsPair() {
				sb.WriteString(" . ")
				cur.cdr.writeTo(sb)
				break
			}
			sb.WriteByte(' ')
			cur = cur.cdr
		}
		sb.WriteByte(')')
	}
}

// FormatFloat formats a float in Scheme notation. Finite floats always
// carry a decimal point or an exponent.
func FormatFloat(x float64) string {
	if math.IsInf(x, 1) {
		return "+inf.0"
	} else if math.IsInf(x, -1) {
		return "-inf.0"
	} else if math.IsNaN(x) {
		return "+nan.0"
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// --- Matcher capability ----------------------------------------------------

var _ match.Term = (*Object)(nil)

// SymbolName returns the name of a symbol atom.
func (o *Object) SymbolName() (string, bool) {
	if !o.IsSymbol() {
		return "", false
	}
	return o.sym.Name(), true
}

// First is the car of a pair, for the matcher.
func (o *Object) First() (match.Term, bool) {
	if !o.IsPair() {
		return nil, false
	}
	return o.car, true
}

// Rest is the cdr of a pair, for the matcher.
func (o *Object) Rest() (match.Term, bool) {
	if !o.IsPair() {
		return nil, false
	}
	return o.cdr, true
}

// EqualAtom compares an atom to a Go value. Integers compare to any Go
// integer type, floats to float64, strings to string.
func (o *Object) EqualAtom(v interface{}) bool {
	switch x := v.(type) {
	case int64:
		return o.IsInteger() && o.num == x
	case int:
		return o.IsInteger() && o.num == int64(x)
	case float64:
		return o.IsFloat() && o.flt == x
	case string:
		return o.IsString() && o.str == x
	case runtime.Symbol:
		return o.IsSymbol() && o.sym == x
	case *Object:
		return o.IsAtom() && o.Equal(x)
	}
	return false
}

// Bound returns the object bound to name in b, or nil if name is unbound
// or bound to a foreign term type.
func Bound(b match.Bindings, name string) *Object {
	if o, ok := b.Get(name).(*Object); ok {
		return o
	}
	return nil
}
