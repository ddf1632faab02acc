/*
Package jit defines the value convention at the boundary to native code.

A value crossing the boundary is a pair of a tag byte and a 64-bit payload.
Integers carry their value, floats their IEEE 754 bit pattern, functions
their code address. Symbols are passed by their index in the symbol table,
which preserves identity for every symbol interned in that table.

Strings and pairs have no native representation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jit

import (
	"fmt"
	"math"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.jit'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.jit")
}

// Tag is the type tag of a native value.
type Tag uint8

// Tags, in the order native code expects them.
const (
	Undef Tag = iota
	Null
	Integer
	Float
	Symbol
	Function
)

var tagNames = []string{"undef", "null", "integer", "float", "symbol", "function"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Value is the two-word representation of an object for native code.
type Value struct {
	Tag     Tag
	Payload int64
}

func (v Value) String() string {
	return fmt.Sprintf("[%s %#x]", v.Tag, uint64(v.Payload))
}

// Encode converts an atom into a native value.
func Encode(obj *object.Object) (Value, error) {
	switch obj.Type() {
	case object.UndefType:
		return Value{Tag: Undef}, nil
	case object.NilType:
		return Value{Tag: Null}, nil
	case object.IntType:
		n, _ := obj.AsInteger()
		return Value{Tag: Integer, Payload: n}, nil
	case object.FloatType:
		x, _ := obj.AsFloat()
		return Value{Tag: Float, Payload: int64(math.Float64bits(x))}, nil
	case object.SymbolType:
		sym, _ := obj.AsSymbol()
		return Value{Tag: Symbol, Payload: int64(sym.ID())}, nil
	case object.FunctionType:
		addr, _ := obj.AsFunction()
		return Value{Tag: Function, Payload: int64(addr)}, nil
	}
	return Value{}, schemer.Errorf(schemer.UnsupportedForm, obj,
		"%s has no native representation: %s", obj.Type(), obj)
}

// Decode converts a native value into an object. Symbols are looked up in
// symtab, which has to be the table used for encoding.
func Decode(v Value, symtab *runtime.SymbolTable) (*object.Object, error) {
	switch v.Tag {
	case Undef:
		return object.Undef(), nil
	case Null:
		return object.Nil(), nil
	case Integer:
		return object.Integer(v.Payload), nil
	case Float:
		return object.Float(math.Float64frombits(uint64(v.Payload))), nil
	case Symbol:
		if v.Payload < 0 || v.Payload > math.MaxUint32 {
			return nil, schemer.Errorf(schemer.UnknownExpressionType, v, "invalid symbol index %d", v.Payload)
		}
		sym, ok := symtab.ByID(uint32(v.Payload))
		if !ok {
			return nil, schemer.Errorf(schemer.UnknownExpressionType, v, "unknown symbol index %d", v.Payload)
		}
		return object.Symbol(sym), nil
	case Function:
		return object.Function(uintptr(v.Payload)), nil
	}
	tracer().Errorf("cannot decode native value %s", v)
	return nil, schemer.Errorf(schemer.UnknownExpressionType, v, "unknown tag %d", v.Tag)
}
