/*
Package ir implements the expression IR of the compiler core.

Expressions are built from object trees by a Builder, which recognizes the
core forms of the language by matching syntax templates:

    (define (name . params) body)   =>  DefVar(name, Lambda(params, body))
    (define name expr)              =>  DefVar(name, expr)
    (lambda params body)            =>  Lambda(params, body)
    (if cond then else)             =>  If(cond, then, else)
    (proc . args)                   =>  Apply(proc, args)

Atoms map to Integer, Float and Variable, the empty list to Nil.
Lambdas with a sequence body, quoted data, strings and functions are
outside of the IR's target subset and result in an UnsupportedForm error.

Like object trees, expressions are never modified after construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ir

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.core'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.core")
}
