package anf

import (
	"github.com/npillmayer/schemer"
	"github.com/npillmayer/schemer/ir"
)

// Verify checks that e is in A-normal form: every operator and argument of a
// call and every condition is atomic, recursively. This is what a code
// generator may rely on. Definitions are legal only as the root of e.
func Verify(e ir.Expression) error {
	switch x := e.(type) {
	case ir.DefVar:
		return verify(x.Expr)
	case ir.DeFunc:
		return verify(x.Body)
	}
	return verify(e)
}

func verify(e ir.Expression) error {
	switch x := e.(type) {
	case ir.Lambda:
		return verify(x.Body)
	case ir.Let:
		if err := verify(x.Init); err != nil {
			return err
		}
		return verify(x.Body)
	case ir.If:
		if err := atomic(x.Cond, e); err != nil {
			return err
		}
		if err := verify(x.Then); err != nil {
			return err
		}
		return verify(x.Else)
	case ir.Apply:
		if err := atomic(x.Proc, e); err != nil {
			return err
		}
		for _, a := range x.Args {
			if err := atomic(a, e); err != nil {
				return err
			}
		}
	case ir.DefVar, ir.DeFunc:
		return schemer.Errorf(schemer.SyntaxError, e, "definition %s within an expression", e)
	}
	return nil
}

// atomic checks that operand op of e is atomic. Lambdas are checked
// recursively.
func atomic(op, e ir.Expression) error {
	if !op.IsAtomic() {
		return schemer.Errorf(schemer.SyntaxError, e, "operand %s of %s is not atomic", op, e)
	}
	return verify(op)
}
