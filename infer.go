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
	"github.com/lucidlang/poly/ast"
	"github.com/lucidlang/poly/types"
)

// J synthesizes a TypeInfo for expr bottom-up (§4.11, Algorithm J), caching the
// result on expr itself.
func J(env *TypeEnvironment, reg *TypeRegistry, expr ast.Expr) (*TypeInfo, error) {
	var info *TypeInfo
	var err error

	switch expr := expr.(type) {
	case *ast.Constant:
		info = &TypeInfo{Type: expr.Const, Region: types.Temporary}

	case *ast.Identifier:
		binding, region, ok := env.Lookup(expr.Name)
		if !ok {
			return nil, &types.UnknownIdentifierError{Name: expr.Name}
		}
		t := binding.Type
		if binding.IsScheme() {
			t, err = env.Instantiate(reg, binding.Scheme, nil, nil)
			if err != nil {
				return nil, err
			}
		}
		info = &TypeInfo{Type: t, Region: region}

	case *ast.Lambda:
		info, err = inferLambda(env, reg, expr)

	case *ast.Apply:
		info, err = inferApply(env, reg, expr)

	case *ast.Let:
		info, err = inferLet(env, reg, expr)

	case *ast.Letrec:
		info, err = inferLetrec(env, reg, expr)

	case *ast.AccessToClassMethod:
		info, err = inferClassMethodAccess(env, reg, expr)

	case ast.BinaryExpression:
		info, err = inferBinary(env, reg, expr)

	default:
		panic("poly: J: unrecognized expression node")
	}

	if err != nil {
		return nil, err
	}
	if typed, ok := expr.(ast.Typed); ok {
		typed.SetTypeInfo(info.Type, info.Region)
	}
	return info, nil
}

// M checks expr against an already-known expected TypeInfo top-down (§4.11,
// Algorithm M). Nodes with no special top-down decomposition fall back to J
// followed by UnifyWithRef against expected.
func M(env *TypeEnvironment, reg *TypeRegistry, expr ast.Expr, expected *TypeInfo) error {
	switch expr := expr.(type) {
	case *ast.Lambda:
		return checkLambda(env, reg, expr, expected)

	case *ast.Let:
		return checkLet(env, reg, expr, expected)

	case *ast.Letrec:
		return checkLetrec(env, reg, expr, expected)

	default:
		info, err := J(env, reg, expr)
		if err != nil {
			return err
		}
		_, err = UnifyWithRef(reg, expected.Type, info)
		return err
	}
}

func inferLambda(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Lambda) (*TypeInfo, error) {
	child := env.NewChild()
	var paramType types.Type = child.NewVariable(types.Constraints{})
	if expr.Constraint != nil {
		paramType = expr.Constraint
	}
	if err := child.Declare(expr.Param, types.MonoBinding(paramType), child.Region()); err != nil {
		return nil, err
	}

	bodyInfo, err := J(child, reg, expr.Body)
	if err != nil {
		return nil, err
	}
	if regionEscapes(child, bodyInfo.Type) {
		return nil, &types.DanglingError{Name: expr.Param}
	}

	fn := &types.Function{Base: reg.FnBase, ParamType: paramType, ReturnType: bodyInfo.Type}
	return &TypeInfo{Type: fn, Region: types.Temporary}, nil
}

func checkLambda(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Lambda, expected *TypeInfo) error {
	child := env.NewChild()
	var paramType types.Type = child.NewVariable(types.Constraints{})
	if expr.Constraint != nil {
		paramType = expr.Constraint
	}
	if err := child.Declare(expr.Param, types.MonoBinding(paramType), child.Region()); err != nil {
		return err
	}

	resultType := child.NewVariable(types.Constraints{})
	argInfo := &TypeInfo{Type: paramType, Region: child.Region()}
	resultInfo := &TypeInfo{Type: resultType, Region: types.Temporary}
	if _, _, err := UnifyFunction(reg, expected.Type, argInfo, resultInfo); err != nil {
		return err
	}

	if err := M(child, reg, expr.Body, resultInfo); err != nil {
		return err
	}
	if regionEscapes(child, resultInfo.Type) {
		return &types.DanglingError{Name: expr.Param}
	}
	expr.SetTypeInfo(expected.Type, expected.Region)
	return nil
}

func inferApply(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Apply) (*TypeInfo, error) {
	funcInfo, err := J(env, reg, expr.Func)
	if err != nil {
		return nil, err
	}
	argInfo, err := J(env, reg, expr.Arg)
	if err != nil {
		return nil, err
	}
	resultInfo := &TypeInfo{Type: env.NewVariable(types.Constraints{}), Region: types.Temporary}
	if _, _, err := UnifyFunction(reg, funcInfo.Type, argInfo, resultInfo); err != nil {
		return nil, err
	}
	return resultInfo, nil
}

func inferLet(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Let) (*TypeInfo, error) {
	valueInfo, err := J(env, reg, expr.Value)
	if err != nil {
		return nil, err
	}
	if isDanglingRef(valueInfo.Type) {
		return nil, &types.DanglingError{Name: expr.Name}
	}

	binding := Generalize(env, valueInfo.Type, expr.Params)
	bodyScope := env.NewChild()
	if err := bodyScope.Declare(expr.Name, binding, valueInfo.Region); err != nil {
		return nil, err
	}

	return J(bodyScope, reg, expr.Body)
}

func checkLet(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Let, expected *TypeInfo) error {
	valueInfo, err := J(env, reg, expr.Value)
	if err != nil {
		return err
	}
	if isDanglingRef(valueInfo.Type) {
		return &types.DanglingError{Name: expr.Name}
	}

	binding := Generalize(env, valueInfo.Type, expr.Params)
	bodyScope := env.NewChild()
	if err := bodyScope.Declare(expr.Name, binding, valueInfo.Region); err != nil {
		return err
	}

	if err := M(bodyScope, reg, expr.Body, expected); err != nil {
		return err
	}
	expr.SetTypeInfo(expected.Type, expected.Region)
	return nil
}

func inferLetrec(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Letrec) (*TypeInfo, error) {
	valueScope := env.NewChild()
	preVar := valueScope.NewVariable(types.Constraints{})
	if err := valueScope.Declare(expr.Name, types.MonoBinding(preVar), valueScope.Region()); err != nil {
		return nil, err
	}

	valueInfo, err := J(valueScope, reg, expr.Value)
	if err != nil {
		return nil, err
	}
	if _, err := UnifyType(reg, preVar, valueInfo.Type, false); err != nil {
		return nil, err
	}
	if isDanglingRef(valueInfo.Type) {
		return nil, &types.DanglingError{Name: expr.Name}
	}

	binding := Generalize(env, valueInfo.Type, expr.Params)
	bodyScope := env.NewChild()
	if err := bodyScope.Declare(expr.Name, binding, valueInfo.Region); err != nil {
		return nil, err
	}

	return J(bodyScope, reg, expr.Body)
}

func checkLetrec(env *TypeEnvironment, reg *TypeRegistry, expr *ast.Letrec, expected *TypeInfo) error {
	valueScope := env.NewChild()
	preVar := valueScope.NewVariable(types.Constraints{})
	if err := valueScope.Declare(expr.Name, types.MonoBinding(preVar), valueScope.Region()); err != nil {
		return err
	}

	valueInfo, err := J(valueScope, reg, expr.Value)
	if err != nil {
		return err
	}
	if _, err := UnifyType(reg, preVar, valueInfo.Type, false); err != nil {
		return err
	}
	if isDanglingRef(valueInfo.Type) {
		return &types.DanglingError{Name: expr.Name}
	}

	binding := Generalize(env, valueInfo.Type, expr.Params)
	bodyScope := env.NewChild()
	if err := bodyScope.Declare(expr.Name, binding, valueInfo.Region); err != nil {
		return err
	}

	if err := M(bodyScope, reg, expr.Body, expected); err != nil {
		return err
	}
	expr.SetTypeInfo(expected.Type, expected.Region)
	return nil
}

func inferClassMethodAccess(env *TypeEnvironment, reg *TypeRegistry, expr *ast.AccessToClassMethod) (*TypeInfo, error) {
	receiverInfo, err := J(env, reg, expr.Receiver)
	if err != nil {
		return nil, err
	}
	classes := reg.GetTypeClassList(receiverInfo.Type)
	class, err := classes.GetClassMethod(expr.MethodName)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, &types.MissingClassMethodError{Name: expr.MethodName}
	}
	methodType, err := GetInstantiatedMethod(env, reg, class, expr.MethodName, receiverInfo)
	if err != nil {
		return nil, err
	}
	return &TypeInfo{Type: methodType, Region: types.Temporary}, nil
}

func inferBinary(env *TypeEnvironment, reg *TypeRegistry, expr ast.BinaryExpression) (*TypeInfo, error) {
	leftInfo, err := J(env, reg, expr.Left())
	if err != nil {
		return nil, err
	}
	class, ok := reg.LookupClass(expr.ClassName())
	if !ok {
		return nil, &types.MissingClassError{Name: expr.ClassName()}
	}
	if err := reg.ApplyConstraint(leftInfo.Type, types.NewConstraintsUnchecked([]*types.Class{class})); err != nil {
		return nil, err
	}

	methodType, err := GetInstantiatedMethod(env, reg, class, expr.MethodName(), leftInfo)
	if err != nil {
		return nil, err
	}
	fn, ok := types.Solved(methodType).(*types.Function)
	if !ok {
		return nil, &types.TypeMismatchError{Left: methodType, Right: &types.Function{Base: reg.FnBase}}
	}

	rightInfo := &TypeInfo{Type: fn.ParamType, Region: types.Temporary}
	if err := M(env, reg, expr.Right(), rightInfo); err != nil {
		return nil, err
	}
	return &TypeInfo{Type: fn.ReturnType, Region: types.Temporary}, nil
}

// regionEscapes reports whether t mentions any region whose defining environment is
// scope itself or an environment nested inside it (TypeEnvironment.Includes): the mark of a returned Ref/TypeClass that a caller could not have
// observed before a Lambda's parameter scope closed. Let/Letrec use the narrower,
// value-shape-only isDanglingRef check instead — see its doc comment.
func regionEscapes(scope *TypeEnvironment, t types.Type) bool {
	switch t := types.Solved(t).(type) {
	case *types.Function:
		return regionEscapes(scope, t.ParamType) || regionEscapes(scope, t.ReturnType)
	case *types.TypeClass:
		return regionIs(scope, t.Region)
	case *types.Ref:
		return regionIs(scope, t.Region) || regionEscapes(scope, t.Type)
	default:
		return false
	}
}

func regionIs(scope *TypeEnvironment, r types.Region) bool {
	return scope.Includes(r)
}

// isDanglingRef reports whether t is itself a Ref over a Temporary region: a
// Let/Letrec binding a value of this shape would bind a name to a reference whose
// referent has already gone out of scope by the time the name is looked up.
func isDanglingRef(t types.Type) bool {
	ref, ok := types.Solved(t).(*types.Ref)
	if !ok {
		return false
	}
	_, ok = types.SolvedRegion(ref.Region).(types.RegionTemporary)
	return ok
}
