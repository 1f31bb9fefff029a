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

// generalizeState accumulates the Params/RegionParams a generalize pass allocates,
// so that two Variables/RegionVariables occurring more than once in t share the same
// Param on the way out.
type generalizeState struct {
	env *TypeEnvironment

	vars       map[*types.Variable]*types.Param
	regionVars map[*types.RegionVariable]*types.RegionParam

	params       []*types.Param
	regionParams []*types.RegionParam
}

// Generalize closes over every type- and region-variable in t whose depth exceeds
// env's (§4.8): each such variable becomes a fresh, positionally-indexed Param (or
// RegionParam), explicitParams are included as Vals even if they don't otherwise
// occur free in t, and the result is wrapped in a Scheme only when at least one Param
// was produced — otherwise t (or its unchanged rewrite) is returned as a plain
// monotype binding.
func Generalize(env *TypeEnvironment, t types.Type, explicitParams []*types.Param) types.Binding {
	st := &generalizeState{
		env:        env,
		vars:       make(map[*types.Variable]*types.Param),
		regionVars: make(map[*types.RegionVariable]*types.RegionParam),
	}
	for _, p := range explicitParams {
		st.params = append(st.params, p)
	}

	body := st.generalizeType(t)

	if len(st.params) == 0 && len(st.regionParams) == 0 {
		return types.MonoBinding(body)
	}
	return types.SchemeBinding(types.NewScheme(st.params, st.regionParams, body))
}

func (st *generalizeState) paramFor(v *types.Variable) *types.Param {
	if p, ok := st.vars[v]; ok {
		return p
	}
	p := types.NewParam(len(st.params), v.Constraints)
	st.vars[v] = p
	st.params = append(st.params, p)
	return p
}

func (st *generalizeState) regionParamFor(v *types.RegionVariable) *types.RegionParam {
	if p, ok := st.regionVars[v]; ok {
		return p
	}
	p := types.NewRegionParam(len(st.regionParams))
	st.regionVars[v] = p
	st.regionParams = append(st.regionParams, p)
	return p
}

func (st *generalizeState) generalizeType(t types.Type) types.Type {
	switch t := types.Solved(t).(type) {
	case *types.Variable:
		if t.Depth <= st.env.depth {
			return t
		}
		return st.paramFor(t)

	case *types.Function:
		param := st.generalizeType(t.ParamType)
		ret := st.generalizeType(t.ReturnType)
		if param == t.ParamType && ret == t.ReturnType {
			return t
		}
		return &types.Function{Base: t.Base, ParamType: param, ReturnType: ret}

	case *types.TypeClass:
		region := st.generalizeRegion(t.Region)
		if region == t.Region {
			return t
		}
		return &types.TypeClass{Classes: t.Classes, Region: region}

	case *types.Ref:
		inner := st.generalizeType(t.Type)
		region := st.generalizeRegion(t.Region)
		if inner == t.Type && region == t.Region {
			return t
		}
		return &types.Ref{Base: t.Base, Type: inner, Region: region}

	default:
		return t
	}
}

func (st *generalizeState) generalizeRegion(r types.Region) types.Region {
	switch r := types.SolvedRegion(r).(type) {
	case *types.RegionVariable:
		if r.Depth <= st.env.depth {
			return r
		}
		return st.regionParamFor(r)
	default:
		return r
	}
}
