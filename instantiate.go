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

// instantiateState carries the positional Param -> Type and RegionParam -> Region
// substitution for one Instantiate call, plus the registry used to verify
// caller-supplied vals against the Params they replace.
type instantiateState struct {
	reg *TypeRegistry

	vals       []types.Type
	regionVals []types.Region
}

// Instantiate opens scheme, substituting each Param at index i with vals[i] (or, if
// vals is shorter than scheme.Vals, a fresh Variable padded on env's behalf) and each
// RegionParam at index i with regionVals[i] (or a fresh RegionVariable), per §4.9.
// Caller-supplied vals are checked against the Param's own Constraints via
// ApplyConstraint before substitution.
func (env *TypeEnvironment) Instantiate(reg *TypeRegistry, scheme *types.Scheme, vals []types.Type, regionVals []types.Region) (types.Type, error) {
	st := &instantiateState{reg: reg, vals: make([]types.Type, len(scheme.Vals)), regionVals: make([]types.Region, len(scheme.RegionVals))}

	for i, p := range scheme.Vals {
		if i < len(vals) {
			if err := reg.ApplyConstraint(vals[i], p.Constraints); err != nil {
				return nil, err
			}
			st.vals[i] = vals[i]
		} else {
			st.vals[i] = env.NewVariable(p.Constraints)
		}
	}
	for i := range scheme.RegionVals {
		if i < len(regionVals) {
			st.regionVals[i] = regionVals[i]
		} else {
			st.regionVals[i] = env.NewRegionVariable()
		}
	}

	return st.instantiateType(scheme.Type), nil
}

func (st *instantiateState) instantiateType(t types.Type) types.Type {
	switch t := types.Solved(t).(type) {
	case *types.Param:
		if t.Index < len(st.vals) {
			return st.vals[t.Index]
		}
		return t

	case *types.Function:
		param := st.instantiateType(t.ParamType)
		ret := st.instantiateType(t.ReturnType)
		if param == t.ParamType && ret == t.ReturnType {
			return t
		}
		return &types.Function{Base: t.Base, ParamType: param, ReturnType: ret}

	case *types.TypeClass:
		region := st.instantiateRegion(t.Region)
		if region == t.Region {
			return t
		}
		return &types.TypeClass{Classes: t.Classes, Region: region}

	case *types.Ref:
		inner := st.instantiateType(t.Type)
		region := st.instantiateRegion(t.Region)
		if inner == t.Type && region == t.Region {
			return t
		}
		return &types.Ref{Base: t.Base, Type: inner, Region: region}

	default:
		return t
	}
}

func (st *instantiateState) instantiateRegion(r types.Region) types.Region {
	switch r := types.SolvedRegion(r).(type) {
	case *types.RegionParam:
		if r.Index < len(st.regionVals) {
			return st.regionVals[r.Index]
		}
		return r
	default:
		return r
	}
}
