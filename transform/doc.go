/*
Package transform implements tree-to-tree passes over object trees.

The Alphatizer renames every lambda-bound variable to a fresh, unique
symbol, at the binder and at every use site within the lambda's body.
Free variables and quoted data are left untouched:

    (lambda (x y) (+ x y))    =>  (lambda (x0 y1) (+ x0 y1))

FreeVariables collects the variables of a tree not bound by any enclosing
lambda.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package transform

import (
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.transform'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.transform")
}

// Transformer is the interface of tree-to-tree passes.
type Transformer interface {
	Transform(tree *object.Object) (*object.Object, error)
}
