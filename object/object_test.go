package object

import (
	"errors"
	"testing"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/match"
	"github.com/npillmayer/schemer/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	a, b, c := Integer(1), Float(2.5), String("c")
	lb := NewListBuilder()
	lb.Append(a).Append(b).Append(c)
	if lb.Len() != 3 {
		t.Errorf("expected builder to count 3 elements, has %d", lb.Len())
	}
	l := lb.Build()
	if n, ok := l.ListLen(); !ok || n != 3 {
		t.Fatalf("expected list length 3, is %d (%v)", n, ok)
	}
	for i, x := range []*Object{a, b, c} {
		if e, ok := l.GetRef(i); !ok || e != x {
			t.Errorf("element #%d should be %s, is %s", i, x, e)
		}
	}
	if _, ok := l.GetRef(3); ok {
		t.Errorf("expected no element past end of list")
	}
	v := l.ListToVec()
	if len(v) != 3 || v[0] != a || v[1] != b || v[2] != c {
		t.Errorf("list to vec should be [a b c], is %v", v)
	}
	if l.String() != `(1 2.5 "c")` {
		t.Errorf("unexpected list string %s", l)
	}
}

func TestDottedTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	l := NewListBuilder().Append(Integer(1)).Append(Integer(2)).SetTail(Integer(3)).Build()
	if l.String() != "(1 2 . 3)" {
		t.Errorf("expected (1 2 . 3), is %s", l)
	}
	if _, ok := l.ListLen(); ok {
		t.Errorf("dotted list must not have a list length")
	}
	if len(l.ListToVec()) != 2 {
		t.Errorf("expected list to vec to stop at dotted tail")
	}
	_, err := l.Map(func(o *Object) (*Object, error) { return o, nil })
	if !errors.Is(err, schemer.ErrNotAPair) {
		t.Errorf("expected mapping over dotted list to fail, got %v", err)
	}
	if NewListBuilder().SetTail(Integer(7)).Build().String() != "7" {
		t.Errorf("empty builder with tail should build the tail")
	}
}

func TestAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	symtab := runtime.NewSymbolTable()
	x := Symbol(symtab.Intern("x"))
	if s, ok := x.AsSymbol(); !ok || s.Name() != "x" {
		t.Errorf("expected symbol x, have %v", x)
	}
	if _, ok := x.AsInteger(); ok {
		t.Errorf("symbol must not be an integer")
	}
	if _, err := x.Car(); !errors.Is(err, schemer.ErrNotAPair) {
		t.Errorf("car of atom should be NotAPair error, is %v", err)
	}
	if !Nil().IsNil() || Nil().IsPair() || !Nil().IsAtom() {
		t.Errorf("nil has wrong predicates")
	}
	if n, ok := Nil().ListLen(); !ok || n != 0 {
		t.Errorf("nil should be a list of length 0")
	}
	if Nil().String() != "'()" {
		t.Errorf("nil should print as '(), is %s", Nil())
	}
	if f, _ := Function(0x1000).AsFunction(); f != 0x1000 {
		t.Errorf("function address lost: %#x", f)
	}
	if Float(3).String() != "3.0" {
		t.Errorf("float 3 should print as 3.0, is %s", Float(3))
	}
}

func TestMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	l := List(Integer(1), Integer(2), Integer(3))
	sq, err := l.Map(func(o *Object) (*Object, error) {
		n, _ := o.AsInteger()
		return Integer(n * n), nil
	})
	if err != nil || sq.String() != "(1 4 9)" {
		t.Errorf("expected (1 4 9), got %s (%v)", sq, err)
	}
	calls := 0
	_, err = List(Integer(1), String("x"), Integer(3)).Map(func(o *Object) (*Object, error) {
		calls++
		if !o.IsInteger() {
			return nil, schemer.Errorf(schemer.UnsupportedForm, o, "no integer")
		}
		return o, nil
	})
	if err == nil || calls != 2 {
		t.Errorf("expected map to stop at first failure after 2 calls, made %d", calls)
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	symtab := runtime.NewSymbolTable()
	a := List(Symbol(symtab.Intern("a")), Integer(1), List(Float(1.5)))
	b := List(Symbol(symtab.Intern("a")), Integer(1), List(Float(1.5)))
	if !a.Equal(b) {
		t.Errorf("expected %s to equal %s", a, b)
	}
	other := runtime.NewSymbolTable()
	c := List(Symbol(other.Intern("a")), Integer(1), List(Float(1.5)))
	if a.Equal(c) {
		t.Errorf("symbols from different tables must not be equal")
	}
}

func TestObjectsAreTerms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	symtab := runtime.NewSymbolTable()
	sym := func(s string) *Object { return Symbol(symtab.Intern(s)) }
	lambda := List(sym("lambda"), List(sym("x")), List(sym("+"), sym("x"), Integer(1)))
	p := match.MustCompile("(lambda ?params . ?body)")
	b, ok := match.Matches(p, lambda)
	if !ok {
		t.Fatalf("expected %s to match %s", p, lambda)
	}
	if Bound(b, "params").String() != "(x)" {
		t.Errorf("expected params (x), have %s", Bound(b, "params"))
	}
	if Bound(b, "body").String() != "((+ x 1))" {
		t.Errorf("expected body ((+ x 1)), have %s", Bound(b, "body"))
	}
	if _, ok := match.Matches(match.MustCompile("(_ _ (_ _ 1))"), lambda); !ok {
		t.Errorf("expected literal integer to match")
	}
	if _, ok := match.Matches(match.MustCompile("(_ _ (_ _ 2))"), lambda); ok {
		t.Errorf("expected literal integer 2 not to match 1")
	}
}
