package match

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// ErrUnmatched is returned (wrapped) by a chain if no clause matches.
// If configuration flag "panic-on-unmatched-switch" is set, chains will
// panic instead.
var ErrUnmatched = errors.New("no clause matches")

// Action is a function
//
//     bindings ↦ result
//
// i.e., the right hand side of a clause. It is called with the bindings of
// the clause's pattern.
type Action func(b Bindings) (interface{}, error)

// Clause is a type representing a rule for dispatching on the shape of a term.
// It contains a pattern and an action. If the pattern matches, the action
// will be called with the bindings of the match.
type Clause struct {
	Pattern Pattern
	Action  Action
}

// Case creates a clause.
func Case(p Pattern, a Action) Clause {
	return Clause{Pattern: p, Action: a}
}

// Chain is an ordered sequence of clauses.
type Chain struct {
	Name    string
	clauses []Clause
}

// NewChain creates an empty chain. The name is used for tracing and error
// messages.
func NewChain(name string, clauses ...Clause) *Chain {
	return &Chain{
		Name:    name,
		clauses: clauses,
	}
}

// Case appends a clause to the chain. Returns the chain (for chaining).
func (c *Chain) Case(p Pattern, a Action) *Chain {
	c.clauses = append(c.clauses, Clause{Pattern: p, Action: a})
	return c
}

// When appends a clause from a template. It panics if the template is
// malformed, as chains are usually set up during initialization.
func (c *Chain) When(template string, a Action) *Chain {
	return c.Case(MustCompile(template), a)
}

// Else appends a clause matching anything.
func (c *Chain) Else(a Action) *Chain {
	return c.Case(Wildcard(), a)
}

// Len returns the number of clauses of c.
func (c *Chain) Len() int {
	return len(c.clauses)
}

// Select finds the first clause matching t. It returns the clause index and
// the bindings, or -1 if no clause matches. Clauses are tried in the order
// they have been added; there is no backtracking.
func (c *Chain) Select(t Term) (int, Bindings) {
	for i, clause := range c.clauses {
		if b, ok := Matches(clause.Pattern, t); ok {
			tracer().Debugf("%s: clause #%d %s matches", c.Name, i, clause.Pattern)
			return i, b
		}
	}
	return -1, nil
}

// Dispatch selects the first clause matching t and calls its action.
// If no clause matches, Dispatch returns an error wrapping ErrUnmatched.
func (c *Chain) Dispatch(t Term) (interface{}, error) {
	i, b := c.Select(t)
	if i < 0 {
		return nil, c.unmatched(t)
	}
	return c.clauses[i].Action(b)
}

func (c *Chain) unmatched(t Term) error {
	err := fmt.Errorf("%s: %w: %s", c.Name, ErrUnmatched, describe(t))
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-unmatched-switch") {
		panic(err)
	}
	return err
}

// Switch is a shortcut for dispatching over an ad-hoc chain of clauses.
func Switch(t Term, clauses ...Clause) (interface{}, error) {
	return NewChain("switch", clauses...).Dispatch(t)
}

func describe(t Term) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", t)
}
