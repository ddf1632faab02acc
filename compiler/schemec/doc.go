/*
Package schemec/main provides a command line driver for the compiler core.
It reads Scheme source from files, standard input or the command line and
prints the A-normal form of every top-level definition.

    schemec [-trace Debug|Info|Error] [-alpha] [-tree] [-e expr] [file ...]

With -alpha the alphatized source is printed as well, with -tree the
normalized expression is displayed as a tree. Errors of single definitions
are reported and compilation continues with the next definition.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.compiler'
func tracer() tracing.Trace {
	return tracing.Select("schemer.compiler")
}
