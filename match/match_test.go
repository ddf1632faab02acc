package match

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// node is a minimal tree type for testing: either a pair, a symbol,
// an integer atom or nil.
type node struct {
	car, cdr *node
	sym      string
	num      int64
	isNum    bool
}

func sym(s string) *node { return &node{sym: s} }
func num(n int64) *node { return &node{num: n, isNum: true} }
func cons(a, d *node) *node { return &node{car: a, cdr: d} }

func mklist(elems ...*node) *node {
	var l *node
	for i := len(elems) - 1; i >= 0; i-- {
		l = cons(elems[i], l)
	}
	return l
}

func (n *node) IsNil() bool { return n == nil }

func (n *node) SymbolName() (string, bool) {
	if n == nil || n.sym == "" {
		return "", false
	}
	return n.sym, true
}

func (n *node) First() (Term, bool) {
	if n == nil || n.car == nil && n.cdr == nil && (n.sym != "" || n.isNum) {
		return nil, false
	}
	return termOf(n.car), true
}

func (n *node) Rest() (Term, bool) {
	if n == nil || n.car == nil && n.cdr == nil && (n.sym != "" || n.isNum) {
		return nil, false
	}
	return termOf(n.cdr), true
}

func (n *node) EqualAtom(v interface{}) bool {
	i, ok := v.(int64)
	return ok && n != nil && n.isNum && n.num == i
}

func (n *node) String() string {
	switch {
	case n == nil:
		return "()"
	case n.sym != "":
		return n.sym
	case n.isNum:
		return fmt.Sprintf("%d", n.num)
	}
	var sb strings.Builder
	sb.WriteByte('(')
	cur := n
	for {
		sb.WriteString(cur.car.String())
		if cur.cdr == nil {
			break
		}
		if cur.cdr.sym != "" || cur.cdr.isNum {
			sb.WriteString(" . ")
			sb.WriteString(cur.cdr.String())
			break
		}
		sb.WriteByte(' ')
		cur = cur.cdr
	}
	sb.WriteByte(')')
	return sb.String()
}

// termOf keeps nil nodes usable as typed terms.
func termOf(n *node) Term {
	return n
}

func TestMatchList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	p := List(Symbol("if"), Capture("c"), Capture("t"), Capture("e"))
	b, ok := Matches(p, mklist(sym("if"), sym("x"), num(1), num(2)))
	if !ok {
		t.Fatalf("expected %s to match", p)
	}
	if b.Get("c").(*node).sym != "x" || b.Get("e").(*node).num != 2 {
		t.Errorf("wrong bindings: %v", b)
	}
	if _, ok := Matches(p, mklist(sym("if"), sym("x"), num(1))); ok {
		t.Errorf("list too short should not match %s", p)
	}
	if _, ok := Matches(p, mklist(sym("if"), num(1), num(2), num(3), num(4))); ok {
		t.Errorf("list too long should not match %s", p)
	}
}

func TestMatchDottedTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	p := ListRest(Capture("args"), Capture("proc"))
	b, ok := Matches(p, cons(sym("f"), num(7)))
	if !ok {
		t.Fatalf("expected %s to match dotted pair", p)
	}
	if b.Get("args").(*node).num != 7 {
		t.Errorf("expected tail to be 7, is %v", b.Get("args"))
	}
	if _, ok := Matches(p, num(3)); ok {
		t.Errorf("atom should not match %s", p)
	}
	if _, ok := Matches(p, (*node)(nil)); ok {
		t.Errorf("nil should not match %s", p)
	}
}

func TestCompileTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	p, err := Compile("(define (?name . ?params) ?body)")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "(define (?name . ?params) ?body)" {
		t.Errorf("unexpected pattern %s", p)
	}
	term := mklist(sym("define"), mklist(sym("sqr"), sym("x")),
		mklist(sym("*"), sym("x"), sym("x")))
	b, ok := Matches(p, term)
	if !ok {
		t.Fatalf("expected %s to match %s", p, term)
	}
	if b.Get("name").(*node).sym != "sqr" {
		t.Errorf("expected ?name to be sqr, is %v", b.Get("name"))
	}
	if s := b.Get("params").(*node).String(); s != "(x)" {
		t.Errorf("expected ?params to be (x), is %s", s)
	}
}

func TestCompileLiteralsAndWildcard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	p := MustCompile("(_ 42)")
	if _, ok := Matches(p, mklist(sym("anything"), num(42))); !ok {
		t.Errorf("expected %s to match", p)
	}
	if _, ok := Matches(p, mklist(sym("anything"), num(43))); ok {
		t.Errorf("expected %s not to match 43", p)
	}
}

func TestCompileRejectsMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	for _, tmpl := range []string{
		"(a ?x ?x)", // duplicate capture
		"(. a)",     // dot at start
		"(a . b c)", // more than one tail
		"(a b",      // unbalanced
		"a b",       // extra input
	} {
		_, err := Compile(tmpl)
		if err == nil {
			t.Errorf("expected template %q to be rejected", tmpl)
			continue
		}
		if !errors.Is(err, schemer.ErrSyntax) {
			t.Errorf("expected syntax error for %q, got %v", tmpl, err)
		}
	}
}

func TestChainOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	isNum := Pred("number", func(t Term) bool {
		n, ok := t.(*node)
		return ok && n != nil && n.isNum
	})
	c := NewChain("test").
		When("(quote . _)", func(Bindings) (interface{}, error) { return "quote", nil }).
		When("(?proc . ?args)", func(b Bindings) (interface{}, error) {
			return "apply " + b.Get("proc").(*node).String(), nil
		}).
		Case(isNum, func(Bindings) (interface{}, error) { return "number", nil })
	tests := []struct {
		term     *node
		expected string
	}{
		{mklist(sym("quote"), sym("x")), "quote"},
		{mklist(sym("f"), num(1)), "apply f"},
		{num(3), "number"},
	}
	for _, test := range tests {
		r, err := c.Dispatch(test.term)
		if err != nil {
			t.Fatal(err)
		}
		if r.(string) != test.expected {
			t.Errorf("%s: expected %q, got %q", test.term, test.expected, r)
		}
	}
	_, err := c.Dispatch(sym("x"))
	if !errors.Is(err, ErrUnmatched) {
		t.Errorf("expected unmatched error, got %v", err)
	}
	c.Else(func(Bindings) (interface{}, error) { return "else", nil })
	if r, _ := c.Dispatch(sym("x")); r != "else" {
		t.Errorf("expected else clause to fire, got %v", r)
	}
}

func TestChainPanicsIfConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{
		"tracing.adapter":           "test",
		"panic-on-unmatched-switch": true,
	})
	defer gconf.Initialize(testconfig.Conf{"tracing.adapter": "test"})
	c := NewChain("strict").
		When("(quote . _)", func(Bindings) (interface{}, error) { return "quote", nil })
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected unmatched chain to panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrUnmatched) {
			t.Errorf("expected panic with unmatched error, have %v", r)
		}
	}()
	c.Dispatch(sym("x"))
}

func TestSwitch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	r, err := Switch(mklist(num(1), num(2)),
		Case(Nil(), func(Bindings) (interface{}, error) { return 0, nil }),
		Case(MustCompile("(_ . ?rest)"), func(b Bindings) (interface{}, error) {
			return b.Get("rest").(*node).String(), nil
		}),
	)
	if err != nil || r != "(2)" {
		t.Errorf("expected (2), got %v (%v)", r, err)
	}
}

func TestBindWholeTerm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schemer.core")
	defer teardown()
	//
	p := Bind("q", MustCompile("(quote ?datum)"))
	term := mklist(sym("quote"), mklist(sym("x"), sym("y")))
	b, ok := Matches(p, term)
	if !ok {
		t.Fatalf("expected %s to match %s", p, term)
	}
	if b.Get("q").(*node) != term {
		t.Errorf("expected whole term to be bound")
	}
	if b.Get("datum").(*node).String() != "(x y)" {
		t.Errorf("expected datum (x y), have %v", b.Get("datum"))
	}
}
