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

// Package ast defines the fixed set of expression nodes the inference engine
// operates over: constants, identifiers, lambdas, applications, let/letrec bindings,
// class-method access, and binary operators. Every node caches the TypeInfo either
// inference algorithm attaches to it, mirroring how a type-checked syntax tree
// carries its own answer once inference is done.
package ast

import (
	"github.com/lucidlang/poly/types"
)

// Expr is implemented by every node in the fixed eight-kind AST.
type Expr interface {
	ExprName() string
}

// Typed nodes are annotated with their TypeInfo once J or M has visited them.
type Typed interface {
	SetTypeInfo(t types.Type, r types.Region)
	Type() types.Type
	Region() types.Region
}

type typed struct {
	typ    types.Type
	region types.Region
}

func (t *typed) SetTypeInfo(typ types.Type, region types.Region) {
	t.typ, t.region = typ, region
}
func (t *typed) Type() types.Type     { return t.typ }
func (t *typed) Region() types.Region { return t.region }

// Constant is a literal ground value, e.g. a number or string, whose static type is
// already known (Invariant per §4.11 "Constant").
type Constant struct {
	typed
	Value interface{}
	Const types.Type
}

func (*Constant) ExprName() string { return "Constant" }

// Identifier looks up a previously-bound name.
type Identifier struct {
	typed
	Name string
}

func (*Identifier) ExprName() string { return "Identifier" }

// Lambda introduces a single parameter, binding it for the extent of Body. Constraint
// optionally supplies the parameter's type directly — an existential TypeClass type or
// a Ref type, typically — instead of synthesizing a fresh Variable for it; nil means no
// annotation.
type Lambda struct {
	typed
	Param      string
	Constraint types.Type
	Body       Expr
}

func (*Lambda) ExprName() string { return "Lambda" }

// Apply applies Func to Arg.
type Apply struct {
	typed
	Func Expr
	Arg  Expr
}

func (*Apply) ExprName() string { return "Apply" }

// Let binds Name to Value's inferred type for the extent of Body, generalizing
// Value's type first. Params optionally names the exact scheme parameters
// generalization should close over, pre-declared by the caller, rather than inferring
// them from Value's free variables; nil means "infer them."
type Let struct {
	typed
	Name   string
	Params []*types.Param
	Value  Expr
	Body   Expr
}

func (*Let) ExprName() string { return "Let" }

// Letrec binds Name to a fresh, ungeneralized type before inferring Value, so that
// Value may refer to Name recursively; Name's binding is generalized only after
// Value is fully inferred, then used for the extent of Body. Params has the same
// meaning as Let.Params.
type Letrec struct {
	typed
	Name   string
	Params []*types.Param
	Value  Expr
	Body   Expr
}

func (*Letrec) ExprName() string { return "Letrec" }

// AccessToClassMethod resolves MethodName against Receiver's inferred type through
// the constraint set that names it, materializing a concrete method type.
type AccessToClassMethod struct {
	typed
	Receiver   Expr
	MethodName string
}

func (*AccessToClassMethod) ExprName() string { return "AccessToClassMethod" }

// BinaryExpression is implemented by binary-operator nodes; each names the class
// whose method resolves the operator.
type BinaryExpression interface {
	Expr
	Left() Expr
	Right() Expr
	ClassName() string
	MethodName() string
}

// Add is `left + right`, resolved through the class named by AddClassName.
type Add struct {
	typed
	Lhs Expr
	Rhs Expr
}

func (*Add) ExprName() string       { return "Add" }
func (a *Add) Left() Expr           { return a.Lhs }
func (a *Add) Right() Expr          { return a.Rhs }
func (*Add) ClassName() string      { return AddClassName }
func (*Add) MethodName() string     { return AddMethodName }

// AddClassName and AddMethodName name the built-in class and method implementing the
// `+` operator; a program's TypeRegistry must declare a class under this name with a
// method under this name for Add to type-check.
const (
	AddClassName  = "Add"
	AddMethodName = "add"
)
