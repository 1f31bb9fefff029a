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
	"testing"

	"github.com/lucidlang/poly/ast"
	"github.com/lucidlang/poly/construct"
	"github.com/lucidlang/poly/types"
)

// Base types are nominal by node identity, so each name is allocated once and shared.
var (
	numberBase  = construct.TBase("number")
	booleanBase = construct.TBase("boolean")
)

func numberType() *types.Base  { return numberBase }
func booleanType() *types.Base { return booleanBase }

func newTestRegistry(t *testing.T) *TypeRegistry {
	t.Helper()
	reg := NewTypeRegistry()
	if err := reg.AddType("number", types.MonoBinding(numberType()), types.Constraints{}); err != nil {
		t.Fatalf("AddType(number): %v", err)
	}
	return reg
}

func mustInfer(t *testing.T, env *TypeEnvironment, reg *TypeRegistry, e ast.Expr) *TypeInfo {
	t.Helper()
	info, err := J(env, reg, e)
	if err != nil {
		t.Fatalf("J(%s): %v", ast.ExprString(e), err)
	}
	return info
}

// Scenario 1: λn. 1 ⇒ ?a -> number
func TestLambdaConstantBody(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	expr := construct.Lambda("n", construct.Constant(1, numberType()))
	info := mustInfer(t, env, reg, expr)

	got := types.TypeString(info.Type)
	if got != "?a -> number" {
		t.Fatalf("got %q", got)
	}
}

// Scenario 4 (letrec, simplified to a bare recursive call): letrec fib = λn. fib n in
// fib ⇒ a function type, with fib's use inside its own body unified against the
// Variable it was pre-bound to.
func TestLetrecSelfReference(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	// letrec fib = λn. fib n in fib
	body := construct.Apply(construct.Identifier("fib"), construct.Identifier("n"))
	fn := construct.Lambda("n", body)
	expr := construct.Letrec("fib", fn, construct.Identifier("fib"))

	info := mustInfer(t, env, reg, expr)
	if _, ok := types.Solved(info.Type).(*types.Function); !ok {
		t.Fatalf("expected a function type, got %s", types.TypeString(info.Type))
	}
}

// Scenario 3 (simplified): let id = λn. n in id id
func TestLetPolymorphism(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	id := construct.Lambda("n", construct.Identifier("n"))
	body := construct.Apply(construct.Identifier("id"), construct.Identifier("id"))
	expr := construct.Let("id", id, body)

	info := mustInfer(t, env, reg, expr)
	if _, ok := types.Solved(info.Type).(*types.Function); !ok {
		t.Fatalf("expected id id to still be a function, got %s", types.TypeString(info.Type))
	}
}

// Scenario 5: λn. n + n with an Add class ⇒ ?a: Add -> ?a: Add
func TestBinaryOperatorConstrainsOperand(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	self := construct.TParam(0)
	addMethod := construct.TFunction(reg.FnBase, self, construct.TFunction(reg.FnBase, self, self))
	class, err := reg.NewClass(ast.AddClassName, types.Constraints{}, self, map[string]types.Binding{
		ast.AddMethodName: types.MonoBinding(addMethod),
	})
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}

	expr := construct.Lambda("n", construct.Add(construct.Identifier("n"), construct.Identifier("n")))
	info := mustInfer(t, env, reg, expr)

	fn, ok := types.Solved(info.Type).(*types.Function)
	if !ok {
		t.Fatalf("expected a function type, got %s", types.TypeString(info.Type))
	}
	if !reg.GetTypeClassList(fn.ParamType).Has(class) {
		t.Fatalf("parameter type %s does not carry the Add constraint", types.TypeString(fn.ParamType))
	}
}

// Scenario 10: two incomparable classes both declaring m raise AmbiguousClassMethod.
func TestAmbiguousClassMethod(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	selfA, selfB := construct.TParam(0), construct.TParam(0)
	methodA := types.MonoBinding(construct.TFunction(reg.FnBase, selfA, numberType()))
	methodB := types.MonoBinding(construct.TFunction(reg.FnBase, selfB, numberType()))

	classA, err := reg.NewClass("A", types.Constraints{}, selfA, map[string]types.Binding{"m": methodA})
	if err != nil {
		t.Fatalf("NewClass(A): %v", err)
	}
	classB, err := reg.NewClass("B", types.Constraints{}, selfB, map[string]types.Binding{"m": methodB})
	if err != nil {
		t.Fatalf("NewClass(B): %v", err)
	}

	v := env.NewVariable(types.NewConstraints(classA, classB))
	if err := env.Declare("x", types.MonoBinding(v), env.Region()); err != nil {
		t.Fatalf("Declare: %v", err)
	}

	expr := construct.AccessToClassMethod(construct.Identifier("x"), "m")
	_, err = J(env, reg, expr)
	if _, ok := err.(*types.AmbiguousClassMethodError); !ok {
		t.Fatalf("expected AmbiguousClassMethodError, got %v", err)
	}
}

// Scenario 11: applying a non-function raises TypeMismatch.
func TestApplyNonFunction(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	expr := construct.Apply(construct.Constant(1, numberType()), construct.Constant(2, numberType()))
	_, err := J(env, reg, expr)
	if _, ok := err.(*types.TypeMismatchError); !ok {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestUnknownIdentifier(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	_, err := J(env, reg, construct.Identifier("nope"))
	if _, ok := err.(*types.UnknownIdentifierError); !ok {
		t.Fatalf("expected UnknownIdentifierError, got %v", err)
	}
}

func TestRedefinitionRejectedWithinSameScope(t *testing.T) {
	env := NewTypeEnvironment()

	if err := env.Declare("x", types.MonoBinding(numberType()), env.Region()); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	if err := env.Declare("x", types.MonoBinding(numberType()), env.Region()); err == nil {
		t.Fatalf("expected RedefinedError on second Declare in the same scope")
	} else if _, ok := err.(*types.RedefinedError); !ok {
		t.Fatalf("expected RedefinedError, got %v", err)
	}
}

func TestExprStringLambda(t *testing.T) {
	expr := construct.Lambda("n", construct.Add(construct.Identifier("n"), construct.Identifier("n")))
	if got, want := ast.ExprString(expr), "λn. n + n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 2: λn. n - 1, with `-` declared as number -> number -> number in scope,
// ⇒ number -> number: n's fresh Variable is fully solved to number by unification
// against `-`'s parameter type.
func TestLambdaParameterSolvedByOperatorUse(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	minus := construct.TFunction(reg.FnBase, numberType(), construct.TFunction(reg.FnBase, numberType(), numberType()))
	if err := env.Declare("-", types.MonoBinding(minus), env.Region()); err != nil {
		t.Fatalf("Declare(-): %v", err)
	}

	body := construct.Apply(construct.Apply(construct.Identifier("-"), construct.Identifier("n")), construct.Constant(1, numberType()))
	expr := construct.Lambda("n", body)
	info := mustInfer(t, env, reg, expr)

	if got, want := types.TypeString(info.Type), "number -> number"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 6: true.method true, where TypeClass declares method: 'a -> 'a -> 'a and
// boolean is registered as implementing it, ⇒ boolean.
func TestClassMethodAccessOnConcreteImplementor(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	self := construct.TParam(0)
	method := construct.TFunction(reg.FnBase, self, construct.TFunction(reg.FnBase, self, self))
	class, err := reg.NewClass("TypeClass", types.Constraints{}, self, map[string]types.Binding{
		"method": types.MonoBinding(method),
	})
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	if err := reg.AddType("boolean", types.MonoBinding(booleanType()), types.NewConstraints(class)); err != nil {
		t.Fatalf("AddType(boolean): %v", err)
	}

	expr := construct.Apply(
		construct.AccessToClassMethod(construct.Constant(true, booleanType()), "method"),
		construct.Constant(true, booleanType()),
	)
	info := mustInfer(t, env, reg, expr)

	if got, want := types.TypeString(info.Type), "boolean"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 7: let f = λ(n: TypeClass). n.method n in f true, an existential
// TypeClass-typed parameter widened against a concrete boolean argument ⇒ succeeds,
// yielding a TypeClass result type.
func TestLambdaWithTypeClassAnnotationWidensAgainstConcreteArgument(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	self := construct.TParam(0)
	method := construct.TFunction(reg.FnBase, self, construct.TFunction(reg.FnBase, self, self))
	class, err := reg.NewClass("TypeClass", types.Constraints{}, self, map[string]types.Binding{
		"method": types.MonoBinding(method),
	})
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	if err := reg.AddType("boolean", types.MonoBinding(booleanType()), types.NewConstraints(class)); err != nil {
		t.Fatalf("AddType(boolean): %v", err)
	}

	annotation := construct.TTypeClass(env.NewRegionVariable(), class)
	f := construct.LambdaAnnotated("n", annotation,
		construct.Apply(construct.AccessToClassMethod(construct.Identifier("n"), "method"), construct.Identifier("n")))
	expr := construct.Let("f", f, construct.Apply(construct.Identifier("f"), construct.Constant(true, booleanType())))

	info := mustInfer(t, env, reg, expr)
	if _, ok := types.Solved(info.Type).(*types.TypeClass); !ok {
		t.Fatalf("expected a TypeClass result type, got %s", types.TypeString(info.Type))
	}
}

// Scenario 8: let g = λ(n: ref<'a> at a). 1 in g true, a Ref-typed parameter widened
// by unifying its pointee against a concrete boolean argument (no Ref on the caller's
// side) ⇒ number.
func TestLambdaWithRefAnnotationWidensAgainstConcreteArgument(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	annotation := construct.TRef(reg.RefBase, env.NewVariable(types.Constraints{}), env.NewRegionVariable())
	g := construct.LambdaAnnotated("n", annotation, construct.Constant(1, numberType()))
	expr := construct.Let("g", g, construct.Apply(construct.Identifier("g"), construct.Constant(true, booleanType())))

	info := mustInfer(t, env, reg, expr)
	if got, want := types.TypeString(info.Type), "number"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 9: let h = λ(n: ref<'a> at a). n in (let i = h true in i). Applying h to a
// Temporary-region argument resolves h's Ref annotation to a Temporary-region Ref;
// binding that result via a further Let must raise Dangling.
func TestLetBindingDanglingRefIsRejected(t *testing.T) {
	reg := newTestRegistry(t)
	env := NewTypeEnvironment()

	annotation := construct.TRef(reg.RefBase, env.NewVariable(types.Constraints{}), env.NewRegionVariable())
	h := construct.LambdaAnnotated("n", annotation, construct.Identifier("n"))
	inner := construct.Let("i", construct.Apply(construct.Identifier("h"), construct.Constant(true, booleanType())), construct.Identifier("i"))
	expr := construct.Let("h", h, inner)

	_, err := J(env, reg, expr)
	if _, ok := err.(*types.DanglingError); !ok {
		t.Fatalf("expected DanglingError, got %v", err)
	}
}
