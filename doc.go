/*
Package schemer is the middle layer of a small Scheme-like language implementation.

It turns a tree of Scheme data, as produced by a reader, into a renamed,
continuation-normalized intermediate form suitable for code generation.
Transformation passes are written as syntax templates, interpreted by a
structural pattern matcher, rather than as manual tree walks. Package
structure is as follows:

■ runtime: Package runtime provides interned symbols and rename scopes.

■ object: Package object implements the tagged value tree, a Lisp-like
cons-pair structure representing both source and data.

■ match: Package match implements ordered structural pattern matching over
any tree type exposing car, cdr, nil-ness and symbol names.

■ scanner: Package scanner splits s-expression text into tokens.

■ reader: Package reader reads s-expression text into objects.

■ ir: Package ir implements the typed expression IR and its builder.

■ transform: Package transform implements source-to-source transformations,
most notably alphatization.

■ anf: Package anf converts expressions into administrative normal form.

■ jit: Package jit implements the two-word value convention at the native
code boundary.

■ compiler: Package compiler strings the passes together.

The base package contains the error taxonomy and data types which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package schemer
