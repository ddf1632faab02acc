package jit

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEncodeDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.jit")
	defer teardown()
	//
	symtab := runtime.NewSymbolTable()
	symtab.Intern("a")
	for _, obj := range []*object.Object{
		object.Undef(),
		object.Nil(),
		object.Integer(-42),
		object.Float(math.Pi),
		object.Symbol(symtab.Intern("foo")),
		object.Symbol(symtab.Intern("foobar")),
		object.Function(0xdeadbeef),
	} {
		v, err := Encode(obj)
		if err != nil {
			t.Errorf("cannot encode %s: %v", obj, err)
			continue
		}
		back, err := Decode(v, symtab)
		if err != nil {
			t.Errorf("cannot decode %s: %v", v, err)
			continue
		}
		if !back.Equal(obj) {
			t.Errorf("round trip of %s yields %s", obj, back)
		}
	}
}

func TestEncodingDetails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.jit")
	defer teardown()
	//
	symtab := runtime.NewSymbolTable()
	sym := symtab.Intern("longsymbol")
	v, _ := Encode(object.Symbol(sym))
	if v.Tag != Symbol || v.Payload != int64(sym.ID()) {
		t.Errorf("expected symbol to be encoded by its index, have %s", v)
	}
	v, _ = Encode(object.Float(1.0))
	if v.Tag != Float || uint64(v.Payload) != 0x3ff0000000000000 {
		t.Errorf("expected IEEE bit pattern for 1.0, have %s", v)
	}
	if Integer != 2 || Function != 5 {
		t.Errorf("tag values do not match native convention")
	}
}

func TestEncodeFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.jit")
	defer teardown()
	//
	for _, obj := range []*object.Object{
		object.String("s"),
		object.List(object.Integer(1)),
	} {
		if _, err := Encode(obj); !errors.Is(err, schemer.ErrUnsupportedForm) {
			t.Errorf("expected %s not to be encodable, got %v", obj, err)
		}
	}
	symtab := runtime.NewSymbolTable()
	if _, err := Decode(Value{Tag: Symbol, Payload: 7}, symtab); err == nil {
		t.Errorf("expected unknown symbol index to fail")
	}
	if _, err := Decode(Value{Tag: 99}, symtab); err == nil {
		t.Errorf("expected unknown tag to fail")
	}
}
