package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/npillmayer/schemer/compiler"
	"github.com/npillmayer/schemer/ir"
	"github.com/npillmayer/schemer/runtime"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

var traceKeys = []string{"schemer.runtime", "schemer.core", "schemer.reader",
	"schemer.transform", "schemer.jit", "schemer.compiler"}

type options struct {
	alpha bool
	tree  bool
}

// main() reads source text, compiles every top-level definition and prints
// the result. Exit code is 1 if one of the definitions failed to compile and
// 2 if the source could not be read.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	expr := flag.String("e", "", "Compile expression instead of files")
	alpha := flag.Bool("alpha", false, "Print alphatized source")
	tree := flag.Bool("tree", false, "Display normalized definitions as trees")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	opts := options{alpha: *alpha, tree: *tree}
	c := compiler.New()
	failed := false
	if *expr != "" {
		ok, err := compile(c, "<expr>", *expr, opts)
		exitOnError(err)
		failed = !ok
	} else if flag.NArg() == 0 {
		src, err := ioutil.ReadAll(os.Stdin)
		exitOnError(err)
		ok, err := compile(c, "<stdin>", string(src), opts)
		exitOnError(err)
		failed = !ok
	}
	for _, filename := range flag.Args() {
		src, err := ioutil.ReadFile(filename)
		exitOnError(err)
		ok, err := compile(c, filename, string(src), opts)
		exitOnError(err)
		failed = failed || !ok
	}
	if failed {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func exitOnError(err error) {
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
}

// compile compiles a source and prints the units. It returns false if one of
// the units failed to compile.
func compile(c *compiler.Compiler, name, source string, opts options) (bool, error) {
	tracer().Infof("compiling %s", name)
	units, err := c.Compile(source)
	if err != nil {
		return false, fmt.Errorf("%s: %v", name, err)
	}
	ok := true
	globals := runtime.NewSymbolSet()
	for i, u := range units {
		if u.Err != nil {
			pterm.Error.Println(fmt.Sprintf("%s #%d: %v", name, i+1, u.Err))
			ok = false
			continue
		}
		if opts.alpha {
			pterm.Info.Println(u.Alpha.String())
		}
		fmt.Println(u.ANF.String())
		if opts.tree {
			pterm.DefaultTree.WithRoot(treeOf(u.ANF)).Render()
		}
		tracer().Debugf("global references: %s", u.Free)
		globals.Union(u.Free)
	}
	if !globals.Empty() {
		tracer().Infof("%s references globals %s", name, globals)
	}
	return ok, nil
}

// treeOf creates a tree display for a normalized expression.
func treeOf(e ir.Expression) pterm.TreeNode {
	ll := leveled(e, pterm.LeveledList{}, 0)
	return pterm.NewTreeFromLeveledList(ll)
}

func leveled(e ir.Expression, ll pterm.LeveledList, level int) pterm.LeveledList {
	item := func(text string) pterm.LeveledList {
		return append(ll, pterm.LeveledListItem{Level: level, Text: text})
	}
	switch x := e.(type) {
	case ir.DefVar:
		ll = item("define " + x.Name.Name())
		return leveled(x.Expr, ll, level+1)
	case ir.Lambda:
		ll = item(fmt.Sprintf("lambda (%s)", params(x)))
		return leveled(x.Body, ll, level+1)
	case ir.Let:
		ll = item("let " + x.Var.Name())
		ll = leveled(x.Init, ll, level+1)
		return leveled(x.Body, ll, level+1)
	case ir.If:
		ll = item("if")
		ll = leveled(x.Cond, ll, level+1)
		ll = leveled(x.Then, ll, level+1)
		return leveled(x.Else, ll, level+1)
	case ir.Apply:
		ll = item("apply " + x.Proc.String())
		for _, a := range x.Args {
			ll = leveled(a, ll, level+1)
		}
		return ll
	}
	return item(e.String())
}

func params(l ir.Lambda) string {
	s := ""
	for i, p := range l.Params {
		if i > 0 {
			s += " "
		}
		s += p.Name()
	}
	return s
}
