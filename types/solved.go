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

package types

// Solved resolves a chain of linked type-variables, path-compressing along the way
// so subsequent lookups are O(1). Idempotent; does not allocate.
func Solved(t Type) Type {
	tv, ok := t.(*Variable)
	if !ok || tv.Solve == nil {
		return t
	}
	real := Solved(tv.Solve)
	tv.Solve = real
	return real
}

// SolvedRegion is the Region analogue of Solved.
func SolvedRegion(r Region) Region {
	rv, ok := r.(*RegionVariable)
	if !ok || rv.solve == nil {
		return r
	}
	real := SolvedRegion(rv.solve)
	rv.solve = real
	return real
}

// UnwrapRef resolves t, then descends through any chain of Ref wrappers,
// path-compressing along the way, to expose the "value shape" underneath any
// references. Used to inspect a type for constraint application.
func UnwrapRef(t Type) Type {
	t = Solved(t)
	for {
		ref, ok := t.(*Ref)
		if !ok {
			return t
		}
		t = Solved(ref.Type)
	}
}

// Depend (the occurs check) returns true iff t, or any sub-type reachable without
// entering a Param, an unsolved Variable, a TypeClass, or a Base, contains a node
// identical to target. Function descends into both sides; Ref descends into its
// pointee; a solved Variable descends into its resolution. Used to reject
// recursive unifications such as alpha ~ alpha -> beta.
func Depend(t, target Type) bool {
	if t == target {
		return true
	}
	switch t := t.(type) {
	case *Variable:
		if t.Solve == nil {
			return false
		}
		return Depend(t.Solve, target)
	case *Function:
		return Depend(t.ParamType, target) || Depend(t.ReturnType, target)
	case *Ref:
		return Depend(t.Type, target)
	default:
		return false
	}
}
