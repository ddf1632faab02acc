package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.reader")
	defer teardown()
	//
	r := New(runtime.NewSymbolTable())
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"2.5", "2.5"},
		{"1e3", "1000.0"},
		{"x", "x"},
		{`"a\nb"`, `"a\nb"`},
		{"()", "'()"},
		{"(a b c)", "(a b c)"},
		{"(a . b)", "(a . b)"},
		{"(a b . (c d))", "(a b c d)"},
		{"'x", "(quote x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"(lambda (x y) ; comment\n (+ x y))", "(lambda (x y) (+ x y))"},
		{"#xff", "255"},
		{"#b101", "5"},
		{"#o17", "15"},
		{"#e1.0", "1"},
		{"#i3", "3.0"},
		{"#x#iA", "10.0"},
	}
	for _, test := range tests {
		o, err := r.Read(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
			continue
		}
		if o.String() != test.expected {
			t.Errorf("%q: expected %s, got %s", test.input, test.expected, o)
		}
	}
}

func TestReadInternsSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.reader")
	defer teardown()
	//
	symtab := runtime.NewSymbolTable()
	r := New(symtab)
	o, err := r.Read("(foo foo)")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := o.GetRef(0)
	b, _ := o.GetRef(1)
	sa, _ := a.AsSymbol()
	sb, _ := b.AsSymbol()
	if sa != sb {
		t.Errorf("expected both occurrences of foo to be the same symbol")
	}
	if foo, ok := symtab.Lookup("foo"); !ok || foo != sa {
		t.Errorf("expected foo to be interned in the reader's table")
	}
}

func TestReadAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.reader")
	defer teardown()
	//
	r := New(runtime.NewSymbolTable())
	data, err := r.ReadAll("(define x 1)\n(define (f y) y)\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 data, have %d", len(data))
	}
	if data[1].String() != "(define (f y) y)" {
		t.Errorf("unexpected second datum %s", data[1])
	}
	if _, err = r.Read("1 2"); !errors.Is(err, schemer.ErrSyntax) {
		t.Errorf("expected Read of two data to fail, got %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.reader")
	defer teardown()
	//
	r := New(runtime.NewSymbolTable())
	tests := []struct {
		input string
		kind  schemer.ErrorKind
	}{
		{"(a b", schemer.SyntaxError},
		{")", schemer.SyntaxError},
		{"(. a)", schemer.SyntaxError},
		{"(a . b c)", schemer.SyntaxError},
		{"[a]", schemer.SyntaxError},
		{"1abc", schemer.InvalidNumericConstant},
		{"99999999999999999999", schemer.InvalidNumericConstant},
		{"#e1.5", schemer.InvalidNumericConstant},
		{"#x1.5", schemer.InvalidNumericConstant},
		{"#x#x1", schemer.InvalidNumericConstant},
	}
	for _, test := range tests {
		_, err := r.Read(test.input)
		if err == nil {
			t.Errorf("%q: expected an error", test.input)
			continue
		}
		if schemer.KindOf(err) != test.kind {
			t.Errorf("%q: expected %s, got %v", test.input, test.kind, err)
		}
	}
}

func TestReadUnclosedListSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.reader")
	defer teardown()
	//
	_, err := New(runtime.NewSymbolTable()).ReadAll("(a (b c) d")
	if !errors.Is(err, schemer.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if !strings.Contains(err.Error(), "(0…10)") {
		t.Errorf("expected error to report span of unclosed list, have %q", err)
	}
}

func TestReadDottedPairIsImproper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.reader")
	defer teardown()
	//
	o, err := New(runtime.NewSymbolTable()).Read("(1 . 2)")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := o.ListLen(); ok {
		t.Errorf("dotted pair must not be a proper list")
	}
	if cdr, _ := o.Cdr(); !cdr.Equal(object.Integer(2)) {
		t.Errorf("expected cdr to be 2, is %s", cdr)
	}
}
