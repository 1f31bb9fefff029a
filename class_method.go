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

// GetInstantiatedMethod materializes class's method named methodName against
// receiver (§4.6). Self is a class-level Param shared by every method of class, not
// part of any individual method's own scheme, so the method is opened in two steps:
// first its own scheme (if it has one) is instantiated, which cannot touch Self since
// Self is never among a method scheme's Vals; the result is then closed over Self via
// a synthetic one-element scheme and instantiated a second time against receiver.
// The receiver is finally checked against the method's parameter slot via
// UnifyWithRef, and the method's return type is reported back.
func GetInstantiatedMethod(env *TypeEnvironment, reg *TypeRegistry, class *types.Class, methodName string, receiverInfo *TypeInfo) (types.Type, error) {
	binding, owner, ok := class.LookupMethod(methodName)
	if !ok {
		return nil, &types.MissingClassMethodError{Name: methodName}
	}

	methodType := binding.Type
	if binding.IsScheme() {
		t, err := env.Instantiate(reg, binding.Scheme, nil, nil)
		if err != nil {
			return nil, err
		}
		methodType = t
	}

	selfScheme := types.NewScheme([]*types.Param{owner.Self}, nil, methodType)
	opened, err := env.Instantiate(reg, selfScheme, []types.Type{receiverInfo.Type}, nil)
	if err != nil {
		return nil, err
	}

	fn, ok := types.Solved(opened).(*types.Function)
	if !ok {
		return nil, &types.TypeMismatchError{Left: opened, Right: &types.Function{Base: reg.FnBase}}
	}

	if _, err := UnifyWithRef(reg, receiverInfo.Type, &TypeInfo{Type: fn.ParamType, Region: receiverInfo.Region}); err != nil {
		return nil, err
	}
	return fn.ReturnType, nil
}
