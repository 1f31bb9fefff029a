// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package poly

import (
	"github.com/lucidlang/poly/types"
)

type envEntry struct {
	Binding types.Binding
	Region  types.Region
}

// TypeEnvironment is a lexically-nested scope: identifier bindings paired with the
// region they live in, plus a depth counter used by generalize/instantiate and by the
// dangling-reference check.
//
// A TypeEnvironment cannot be used concurrently; environments are stack-scoped for
// the duration of the traversal that opened them (§5).
type TypeEnvironment struct {
	parent *TypeEnvironment
	depth  int
	vars   map[string]envEntry
}

var _ types.Env = (*TypeEnvironment)(nil)

// NewTypeEnvironment creates the root environment, at depth 1.
func NewTypeEnvironment() *TypeEnvironment {
	return &TypeEnvironment{depth: 1, vars: make(map[string]envEntry)}
}

// NewChild opens a fresh environment one level deeper than env, as Lambda does.
func (env *TypeEnvironment) NewChild() *TypeEnvironment {
	return &TypeEnvironment{parent: env, depth: env.depth + 1, vars: make(map[string]envEntry)}
}

// Depth returns the scope-nesting depth of env (root is 1).
func (env *TypeEnvironment) Depth() int { return env.depth }

// Parent returns the immediately enclosing environment, or nil at the root.
func (env *TypeEnvironment) Parent() types.Env {
	if env.parent == nil {
		return nil
	}
	return env.parent
}

// Region returns the region of bindings introduced directly within env.
func (env *TypeEnvironment) Region() *types.RegionBase { return types.NewRegionBase(env) }

// Declare binds name to binding at region within the current scope only. Redefining a
// name already declared in this same scope is rejected; shadowing a parent's binding
// is not.
func (env *TypeEnvironment) Declare(name string, binding types.Binding, region types.Region) error {
	if _, ok := env.vars[name]; ok {
		return &types.RedefinedError{Name: name}
	}
	env.vars[name] = envEntry{Binding: binding, Region: region}
	return nil
}

// Lookup finds name in env or one of its ancestors.
func (env *TypeEnvironment) Lookup(name string) (types.Binding, types.Region, bool) {
	for e := env; e != nil; e = e.parent {
		if entry, ok := e.vars[name]; ok {
			return entry.Binding, entry.Region, true
		}
	}
	return types.Binding{}, nil, false
}

// NewVariable creates a fresh, unsolved type-variable at env's depth.
func (env *TypeEnvironment) NewVariable(constraints types.Constraints) *types.Variable {
	return &types.Variable{Depth: env.depth, Constraints: constraints}
}

// NewRegionVariable creates a fresh, unsolved region-variable at env's depth.
func (env *TypeEnvironment) NewRegionVariable() *types.RegionVariable {
	return types.NewRegionVariable(env.depth)
}

// Includes reports whether region lies at-or-within env: a RegionBase whose defining
// environment, walked up the parent chain to env's depth, is env itself. Used by
// Lambda's dangling-reference check — a reference whose region the lambda's scope is
// about to discard must not escape into the body's type. Let/Letrec do not use it;
// they check the bound value with isDanglingRef instead.
func (env *TypeEnvironment) Includes(region types.Region) bool {
	base, ok := types.SolvedRegion(region).(*types.RegionBase)
	if !ok {
		return false
	}
	e := base.Env
	for e != nil && e.Depth() > env.depth {
		e = e.Parent()
	}
	return e == types.Env(env)
}
