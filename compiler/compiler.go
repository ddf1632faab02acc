/*
Package compiler drives the passes of the compiler core.

Source text is read into object trees, one per top-level form. Each form
is a compilation unit and passes through

    read → alphatize → build IR → normalize (ANF)

A unit is either fully transformed or abandoned with a single error; an
error in one unit does not prevent compilation of the following units.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compiler

import (
	"github.com/npillmayer/schemer/anf"
	"github.com/npillmayer/schemer/ir"
	"github.com/npillmayer/schemer/object"
	"github.com/npillmayer/schemer/reader"
	"github.com/npillmayer/schemer/runtime"
	"github.com/npillmayer/schemer/transform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'schemer.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("schemer.compiler")
}

// DefaultPrimitives are the intrinsics known to the compiler if not
// configured otherwise.
var DefaultPrimitives = []string{"+", "-", "*", "/", "=", "<", ">", "<=", ">="}

// Unit is the result of compiling a single top-level form. Fields are set
// as far as compilation got; Err is the reason a unit has been abandoned.
type Unit struct {
	Source *object.Object     // form as read
	Alpha  *object.Object     // alphatized form
	Free   *runtime.SymbolSet // global variables referenced by the form
	IR     ir.Expression      // expression built from the alphatized form
	ANF    ir.Expression      // normalized definition
	Err    error
}

// Compiler holds the state shared between compilation units: the symbol
// table and the counters for fresh names.
type Compiler struct {
	symtab     *runtime.SymbolTable
	reader     *reader.Reader
	alpha      *transform.Alphatizer
	builder    *ir.Builder
	normalizer *anf.Normalizer
}

type config struct {
	symtab       *runtime.SymbolTable
	primitives   []string
	avoidCapture bool
	tempPrefix   string
}

// Option configures a compiler.
type Option func(c *config)

// WithSymbolTable makes the compiler use an existing symbol table.
func WithSymbolTable(symtab *runtime.SymbolTable) Option {
	return func(c *config) {
		c.symtab = symtab
	}
}

// Primitives sets the names of intrinsics, replacing DefaultPrimitives.
func Primitives(names ...string) Option {
	return func(c *config) {
		c.primitives = names
	}
}

// AvoidCapture is passed on to the Alphatizer.
func AvoidCapture(b bool) Option {
	return func(c *config) {
		c.avoidCapture = b
	}
}

// TempPrefix is passed on to the Normalizer.
func TempPrefix(prefix string) Option {
	return func(c *config) {
		c.tempPrefix = prefix
	}
}

// New creates a compiler.
func New(opts ...Option) *Compiler {
	cfg := &config{
		primitives:   DefaultPrimitives,
		avoidCapture: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.symtab == nil {
		cfg.symtab = runtime.NewSymbolTable()
	}
	var anfOpts []anf.Option
	if cfg.tempPrefix != "" {
		anfOpts = append(anfOpts, anf.TempPrefix(cfg.tempPrefix))
	}
	return &Compiler{
		symtab:     cfg.symtab,
		reader:     reader.New(cfg.symtab),
		alpha:      transform.NewAlphatizer(cfg.symtab, transform.AvoidCapture(cfg.avoidCapture)),
		builder:    ir.NewBuilder(ir.Primitives(cfg.primitives...)),
		normalizer: anf.NewNormalizer(cfg.symtab, anfOpts...),
	}
}

// SymbolTable returns the compiler's symbol table.
func (c *Compiler) SymbolTable() *runtime.SymbolTable {
	return c.symtab
}

// Compile reads all top-level forms of source and compiles each of them.
// A read error aborts compilation, as the source cannot be split into units.
// Errors of single units are reported in the units.
func (c *Compiler) Compile(source string) ([]Unit, error) {
	forms, err := c.reader.ReadAll(source)
	if err != nil {
		return nil, err
	}
	units := make([]Unit, len(forms))
	for i, form := range forms {
		units[i] = c.CompileForm(form)
	}
	return units, nil
}

// CompileForm compiles a single top-level form.
func (c *Compiler) CompileForm(form *object.Object) Unit {
	u := Unit{Source: form}
	if u.Alpha, u.Err = c.alpha.Transform(form); u.Err != nil {
		return c.abandon(u)
	}
	u.Free = transform.FreeVariables(u.Alpha)
	if u.IR, u.Err = c.builder.Build(u.Alpha); u.Err != nil {
		return c.abandon(u)
	}
	if u.ANF, u.Err = c.normalizer.NormalizeDefinition(u.IR); u.Err != nil {
		return c.abandon(u)
	}
	if u.Err = anf.Verify(u.ANF); u.Err != nil {
		return c.abandon(u)
	}
	tracer().Debugf("compiled %s", u.ANF)
	return u
}

func (c *Compiler) abandon(u Unit) Unit {
	tracer().Errorf("abandoning %s: %v", u.Source, u.Err)
	return u
}
