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

// Package construct collects small constructor helpers for the AST and type nodes,
// so callers building a program (or a test fixture) don't hand-assemble struct
// literals with region/type bookkeeping repeated at every call site.
package construct

import (
	"github.com/lucidlang/poly/ast"
	"github.com/lucidlang/poly/types"
)

// Constant builds a Constant node holding value at type t.
func Constant(value interface{}, t types.Type) *ast.Constant {
	return &ast.Constant{Value: value, Const: t}
}

// Identifier builds a name reference.
func Identifier(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

// Lambda builds a single-parameter function literal whose parameter type is inferred
// as a fresh Variable.
func Lambda(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// LambdaAnnotated builds a single-parameter function literal whose parameter is
// declared at an explicit type — an existential TypeClass type or a Ref type,
// typically — instead of a synthesized fresh Variable.
func LambdaAnnotated(param string, constraint types.Type, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Constraint: constraint, Body: body}
}

// Apply builds a function application.
func Apply(fn, arg ast.Expr) *ast.Apply {
	return &ast.Apply{Func: fn, Arg: arg}
}

// Let builds a non-recursive binding whose scheme parameters are inferred from
// Value's free variables at generalization.
func Let(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Value: value, Body: body}
}

// LetGeneric builds a non-recursive binding that generalizes over exactly the given
// scheme parameters, e.g. `let f<'a: TypeClass> = λ(n:'a). n.method n in f`.
func LetGeneric(name string, params []*types.Param, value, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Params: params, Value: value, Body: body}
}

// Letrec builds a self-referential binding whose scheme parameters are inferred from
// Value's free variables at generalization.
func Letrec(name string, value, body ast.Expr) *ast.Letrec {
	return &ast.Letrec{Name: name, Value: value, Body: body}
}

// LetrecGeneric builds a self-referential binding that generalizes over exactly the
// given scheme parameters; see LetGeneric.
func LetrecGeneric(name string, params []*types.Param, value, body ast.Expr) *ast.Letrec {
	return &ast.Letrec{Name: name, Params: params, Value: value, Body: body}
}

// AccessToClassMethod builds a class-method access on receiver.
func AccessToClassMethod(receiver ast.Expr, methodName string) *ast.AccessToClassMethod {
	return &ast.AccessToClassMethod{Receiver: receiver, MethodName: methodName}
}

// Add builds a `+` binary expression.
func Add(lhs, rhs ast.Expr) *ast.Add {
	return &ast.Add{Lhs: lhs, Rhs: rhs}
}

// TBase builds a named ground type, e.g. TBase("number").
func TBase(name string) *types.Base {
	return &types.Base{Name: name}
}

// TVar builds a fresh, unsolved type-variable at depth, optionally constrained.
func TVar(depth int, constraints ...*types.Class) *types.Variable {
	return &types.Variable{Depth: depth, Constraints: types.NewConstraints(constraints...)}
}

// TParam builds a scheme-bound type parameter at index, optionally constrained.
func TParam(index int, constraints ...*types.Class) *types.Param {
	return types.NewParam(index, types.NewConstraints(constraints...))
}

// TFunction builds a function type over fnBase.
func TFunction(fnBase *types.Base, param, ret types.Type) *types.Function {
	return &types.Function{Base: fnBase, ParamType: param, ReturnType: ret}
}

// TRef builds a reference type over refBase, at region.
func TRef(refBase *types.Base, t types.Type, region types.Region) *types.Ref {
	return &types.Ref{Base: refBase, Type: t, Region: region}
}

// TTypeClass builds an existential type-class type at region.
func TTypeClass(region types.Region, classes ...*types.Class) *types.TypeClass {
	return &types.TypeClass{Classes: types.NewConstraints(classes...), Region: region}
}

// RVar builds a fresh, unsolved region-variable at depth.
func RVar(depth int) *types.RegionVariable {
	return types.NewRegionVariable(depth)
}

// RParam builds a scheme-bound region parameter at index.
func RParam(index int) *types.RegionParam {
	return types.NewRegionParam(index)
}

// Env is the minimal interface a region's defining environment must satisfy; it
// matches types.Env exactly so callers can pass a *poly.TypeEnvironment directly.
type Env = types.Env

// RBase builds a region tied to env's scope.
func RBase(env Env) *types.RegionBase {
	return types.NewRegionBase(env)
}
