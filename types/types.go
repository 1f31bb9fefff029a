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

// Package types holds the kinded Type and Region node representations, type-class
// and constraint-set machinery, and the helpers (solved, unwrapRef, depend) used
// throughout unification and generalization.
package types

// Type is the base interface for all type nodes.
type Type interface {
	TypeName() string
}

func (t *Base) TypeName() string      { return "Base" }
func (t *Function) TypeName() string  { return "Function" }
func (t *Variable) TypeName() string  { return "Variable" }
func (t *Param) TypeName() string     { return "Param" }
func (t *TypeClass) TypeName() string { return "TypeClass" }
func (t *Ref) TypeName() string       { return "Ref" }

// Base is a nominal primitive type, e.g. number or boolean. Equality is by identity
// of the allocated node: two Base values with the same Name are different types
// unless they are the same pointer.
type Base struct {
	Name string
}

// Function is a function type. Base points at the ground `fn` nominal registered in
// the TypeRegistry, so a function type can answer "what is your type-name?" for
// constraint lookup (TypeRegistry.GetTypeClassList).
type Function struct {
	Base       *Base
	ParamType  Type
	ReturnType Type
}

// Variable is a mutable metavariable. It is either unsolved (Solve == nil) or its
// Solve chain terminates at a non-Variable (readers must path-compress via Solved).
// Depth is the scope depth at which the variable was born and never decreases;
// unifying two Variables points the deeper (inner) one at the shallower (outer) one.
type Variable struct {
	Constraints Constraints
	Solve       Type
	Depth       int
}

// NewVariable creates a fresh, unsolved type-variable at the given depth.
func NewVariable(depth int) *Variable { return &Variable{Depth: depth} }

// Param is a scheme-bound, immutable (after creation) placeholder. It occurs only
// inside a Scheme body and never under a Variable's Solve. Index is positional:
// Param{Index: i} inside a scheme body denotes the scheme's vals[i] (or
// regionVals[i], for a Region Param).
type Param struct {
	Constraints Constraints
	Index       int
}

// NewParam creates a scheme-bound placeholder at the given positional index.
func NewParam(index int, constraints Constraints) *Param {
	return &Param{Index: index, Constraints: constraints}
}

// TypeClass is the existential "type-class" type: a value implementing Classes,
// held via a reference in Region. (Not to be confused with the named Class
// definition below — this is the Type-kind that unification/generalization see.)
type TypeClass struct {
	Classes Constraints
	Region  Region
}

// Ref is a reference to Type, living in Region. Base points at the ground `ref`
// nominal, mirroring Function's Base.
type Ref struct {
	Base   *Base
	Type   Type
	Region Region
}
