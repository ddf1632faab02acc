package anf

import (
	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/ir"
	"github.com/npillmayer/schemer/runtime"
)

// Continuation receives a normalized expression and returns the expression
// built around it.
type Continuation func(ir.Expression) ir.Expression

// listContinuation receives a list of atomic expressions.
type listContinuation func([]ir.Expression) ir.Expression

func identity(e ir.Expression) ir.Expression {
	return e
}

// Normalizer converts expressions into A-normal form. Fresh temporaries are
// interned into the normalizer's symbol table, named by a prefix and a
// counter. A Normalizer is not safe for concurrent use.
type Normalizer struct {
	symtab  *runtime.SymbolTable
	prefix  string
	counter int
}

// Option configures a Normalizer.
type Option func(n *Normalizer)

// TempPrefix sets the name prefix for temporaries. Default is "newvar-".
func TempPrefix(prefix string) Option {
	return func(n *Normalizer) {
		n.prefix = prefix
	}
}

// NewNormalizer creates a normalizer, interning temporaries in symtab.
func NewNormalizer(symtab *runtime.SymbolTable, opts ...Option) *Normalizer {
	n := &Normalizer{
		symtab: symtab,
		prefix: "newvar-",
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NormalizeTerm normalizes an expression in an empty context.
func (n *Normalizer) NormalizeTerm(e ir.Expression) ir.Expression {
	return n.normalize(e, identity)
}

// NormalizeDefinition normalizes a top-level definition. Function definitions
// are turned into variable definitions bound to a lambda. Any other
// expression is not allowed at top level and results in a syntax error.
func (n *Normalizer) NormalizeDefinition(e ir.Expression) (ir.Expression, error) {
	switch def := e.(type) {
	case ir.DeFunc:
		lambda := ir.Lambda{Params: def.Params, Body: def.Body}
		return ir.DefVar{Name: def.Name, Expr: n.NormalizeTerm(lambda)}, nil
	case ir.DefVar:
		return ir.DefVar{Name: def.Name, Expr: n.NormalizeTerm(def.Expr)}, nil
	}
	err := schemer.Errorf(schemer.SyntaxError, e, "expected definition at top level, have %s", e)
	tracer().Errorf(err.Error())
	return nil, err
}

// NormalizeProgram normalizes a sequence of top-level definitions. It stops
// at the first form which is not a definition.
func (n *Normalizer) NormalizeProgram(defs []ir.Expression) ([]ir.Expression, error) {
	prog := make([]ir.Expression, 0, len(defs))
	for _, def := range defs {
		d, err := n.NormalizeDefinition(def)
		if err != nil {
			return prog, err
		}
		prog = append(prog, d)
	}
	return prog, nil
}

func (n *Normalizer) normalize(e ir.Expression, k Continuation) ir.Expression {
	switch x := e.(type) {
	case ir.Lambda:
		// the body is evaluated later, thus it gets a context of its own
		return k(ir.Lambda{Params: x.Params, Body: n.NormalizeTerm(x.Body)})
	case ir.Let:
		return n.normalize(x.Init, func(init ir.Expression) ir.Expression {
			return ir.Let{Var: x.Var, Init: init, Body: n.normalize(x.Body, k)}
		})
	case ir.If:
		return n.normalizeName(x.Cond, func(cond ir.Expression) ir.Expression {
			return k(ir.If{
				Cond: cond,
				Then: n.NormalizeTerm(x.Then),
				Else: n.NormalizeTerm(x.Else),
			})
		})
	case ir.Apply:
		if _, isprim := x.Proc.(ir.Primitive); isprim {
			return n.normalizeNames(x.Args, func(args []ir.Expression) ir.Expression {
				return k(ir.Apply{Proc: x.Proc, Args: args})
			})
		}
		return n.normalizeName(x.Proc, func(proc ir.Expression) ir.Expression {
			return n.normalizeNames(x.Args, func(args []ir.Expression) ir.Expression {
				return k(ir.Apply{Proc: proc, Args: args})
			})
		})
	}
	return k(e)
}

// normalizeName normalizes e and passes an atomic expression to k. If the
// normalized expression is not atomic, it is bound to a fresh temporary.
func (n *Normalizer) normalizeName(e ir.Expression, k Continuation) ir.Expression {
	return n.normalize(e, func(norm ir.Expression) ir.Expression {
		if norm.IsAtomic() {
			return k(norm)
		}
		t := n.newVar()
		tracer().Debugf("naming %s -> %s", norm, t)
		return ir.Let{Var: t, Init: norm, Body: k(ir.Variable{Symbol: t})}
	})
}

// normalizeNames names a list of expressions from left to right.
func (n *Normalizer) normalizeNames(es []ir.Expression, k listContinuation) ir.Expression {
	if len(es) == 0 {
		return k([]ir.Expression{})
	}
	return n.normalizeName(es[0], func(t ir.Expression) ir.Expression {
		return n.normalizeNames(es[1:], func(ts []ir.Expression) ir.Expression {
			atoms := make([]ir.Expression, 0, len(ts)+1)
			atoms = append(atoms, t)
			return k(append(atoms, ts...))
		})
	})
}

func (n *Normalizer) newVar() runtime.Symbol {
	return n.symtab.Gensym(n.prefix, &n.counter, true)
}
