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

// CastKind reports what, if anything, unification had to do to reconcile two types
// beyond plain structural equality.
type CastKind int

const (
	// CastNone means the two types unified without widening either side.
	CastNone CastKind = iota
	// CastTypeClass means an existential TypeClass type was resolved against a
	// concrete implementor.
	CastTypeClass
	// CastReference means a Ref was resolved against its pointee (or vice versa).
	CastReference
)

// Convert resolves the region lattice operation of §4.4: it widens/aliases r2 toward
// r1, returning the canonical region both handles now share. Region convert failures
// are logic errors in a well-typed program (unification never calls convert on
// regions it hasn't already established a relationship between), so Convert panics on
// a failing pair rather than returning an error — per §7's "implementations may
// assert."
func Convert(r1, r2 types.Region) types.Region {
	a := types.SolvedRegion(r1)
	switch a := a.(type) {
	case types.RegionTemporary:
		if b, ok := types.SolvedRegion(r2).(*types.RegionVariable); ok {
			b.SetLink(a)
		}
		return a

	case *types.RegionVariable:
		b := types.SolvedRegion(r2)
		switch b.(type) {
		case *types.RegionVariable, types.RegionTemporary, *types.RegionBase:
			if b != types.Region(a) {
				a.SetLink(b)
			}
			return b
		default:
			panic("poly: region convert: cannot widen a region-variable against " + regionKind(b))
		}

	case *types.RegionBase:
		b := types.SolvedRegion(r2)
		switch b := b.(type) {
		case *types.RegionVariable:
			b.SetLink(a)
			return a
		case *types.RegionBase:
			e := b.Env
			for e != nil && e.Depth() > a.Env.Depth() {
				e = e.Parent()
			}
			if e == types.Env(a.Env) {
				return a
			}
			panic("poly: region convert: " + regionKind(b) + " does not descend from " + regionKind(a))
		default:
			panic("poly: region convert: cannot convert " + regionKind(b) + " to a base region")
		}

	case *types.RegionParam:
		b := types.SolvedRegion(r2)
		if b == types.Region(a) {
			return a
		}
		panic("poly: region convert: a param region only converts against itself")

	default:
		panic("poly: region convert: unrecognized region kind")
	}
}

func regionKind(r types.Region) string {
	switch r.(type) {
	case types.RegionTemporary:
		return "a temporary region"
	case *types.RegionBase:
		return "a base region"
	case *types.RegionVariable:
		return "a region variable"
	case *types.RegionParam:
		return "a param region"
	default:
		return "an unknown region"
	}
}

// UnifyType unifies t1 and t2 structurally (§4.10). When allowImplicit is true, a
// TypeClass or Ref on either side may widen against a concrete counterpart instead of
// requiring an exact structural match; UnifyType reports which widening (if any) it
// performed.
func UnifyType(reg *TypeRegistry, t1, t2 types.Type, allowImplicit bool) (CastKind, error) {
	t1, t2 = types.Solved(t1), types.Solved(t2)

	if v1, ok := t1.(*types.Variable); ok {
		return CastNone, unifyVariable(reg, v1, t2)
	}
	if v2, ok := t2.(*types.Variable); ok {
		return CastNone, unifyVariable(reg, v2, t1)
	}

	if allowImplicit {
		if tc1, ok := t1.(*types.TypeClass); ok {
			if _, ok := t2.(*types.TypeClass); !ok {
				return unifyTypeClassAgainst(reg, tc1, t2)
			}
		}
		if tc2, ok := t2.(*types.TypeClass); ok {
			if _, ok := t1.(*types.TypeClass); !ok {
				return unifyTypeClassAgainst(reg, tc2, t1)
			}
		}
		if r1, ok := t1.(*types.Ref); ok {
			if _, ok := t2.(*types.Ref); !ok {
				kind, err := UnifyType(reg, r1.Type, t2, allowImplicit)
				if err != nil {
					return kind, err
				}
				return CastReference, nil
			}
		}
		if r2, ok := t2.(*types.Ref); ok {
			if _, ok := t1.(*types.Ref); !ok {
				kind, err := UnifyType(reg, t1, r2.Type, allowImplicit)
				if err != nil {
					return kind, err
				}
				return CastReference, nil
			}
		}
	}

	switch t1 := t1.(type) {
	case *types.Base:
		t2, ok := t2.(*types.Base)
		if !ok || t1 != t2 {
			return CastNone, &types.TypeMismatchError{Left: t1, Right: t2}
		}
		return CastNone, nil

	case *types.Function:
		t2, ok := t2.(*types.Function)
		if !ok {
			return CastNone, &types.TypeMismatchError{Left: t1, Right: t2}
		}
		if _, err := UnifyType(reg, t1.ParamType, t2.ParamType, allowImplicit); err != nil {
			return CastNone, err
		}
		if _, err := UnifyType(reg, t1.ReturnType, t2.ReturnType, allowImplicit); err != nil {
			return CastNone, err
		}
		return CastNone, nil

	case *types.Param:
		t2, ok := t2.(*types.Param)
		if !ok || t1 != t2 {
			return CastNone, &types.TypeMismatchError{Left: t1, Right: t2}
		}
		return CastNone, nil

	case *types.TypeClass:
		t2, ok := t2.(*types.TypeClass)
		if !ok {
			return CastNone, &types.TypeMismatchError{Left: t1, Right: t2}
		}
		region := Convert(t1.Region, t2.Region)
		t1.Region, t2.Region = region, region
		return CastNone, nil

	case *types.Ref:
		t2, ok := t2.(*types.Ref)
		if !ok {
			return CastNone, &types.TypeMismatchError{Left: t1, Right: t2}
		}
		if _, err := UnifyType(reg, t1.Type, t2.Type, allowImplicit); err != nil {
			return CastNone, err
		}
		region := Convert(t1.Region, t2.Region)
		t1.Region, t2.Region = region, region
		return CastNone, nil

	default:
		return CastNone, &types.TypeMismatchError{Left: t1, Right: t2}
	}
}

func unifyTypeClassAgainst(reg *TypeRegistry, tc *types.TypeClass, other types.Type) (CastKind, error) {
	if err := reg.ApplyConstraint(other, tc.Classes); err != nil {
		return CastNone, err
	}
	return CastTypeClass, nil
}

func unifyVariable(reg *TypeRegistry, v *types.Variable, t types.Type) error {
	if v2, ok := t.(*types.Variable); ok {
		if v == v2 {
			return nil
		}
		if v2.Depth > v.Depth {
			v, v2 = v2, v
		}
		v2.Constraints = v2.Constraints.Merge(v.Constraints)
		v.Solve = v2
		return nil
	}
	if types.Depend(t, v) {
		return &types.RecursiveUnificationError{}
	}
	if err := reg.ApplyConstraint(t, v.Constraints); err != nil {
		return err
	}
	v.Solve = t
	return nil
}

// UnifyWithRef unifies the formal type t1 against a caller-supplied info, allowing a
// TypeClass or Ref on t1's side specifically to widen against info's concrete type
// (the asymmetric counterpart to UnifyType's symmetric allowImplicit rules, gated on
// the formal/expected side per the widening direction type1 <- type2): a TypeClass on
// t1 widens once info.Type is confirmed to implement the TypeClass's classes, and a
// Ref on t1 widens by unifying its pointee against info.Type directly. info is left
// unresolved (a bare Variable) falls through to plain unification so it still links
// through the ordinary Variable-binding path.
func UnifyWithRef(reg *TypeRegistry, t1 types.Type, info *TypeInfo) (CastKind, error) {
	t1 = types.Solved(t1)
	t2 := types.Solved(info.Type)

	if _, unresolved := t2.(*types.Variable); !unresolved {
		if tc1, ok := t1.(*types.TypeClass); ok {
			if _, ok := t2.(*types.TypeClass); !ok {
				if err := reg.ApplyConstraint(t2, tc1.Classes); err != nil {
					return CastNone, err
				}
				tc1.Region = Convert(info.Region, tc1.Region)
				return CastTypeClass, nil
			}
		}

		if ref1, ok := t1.(*types.Ref); ok {
			if _, ok := t2.(*types.Ref); !ok {
				if _, err := UnifyType(reg, ref1.Type, t2, false); err != nil {
					return CastNone, err
				}
				ref1.Region = Convert(info.Region, ref1.Region)
				return CastReference, nil
			}
		}
	}

	return UnifyType(reg, t1, t2, true)
}

// UnifyFunction unifies t1 against a function shape whose parameter and result are
// described by argInfo/resultInfo (§4.10): if t1 is already a Function, its param and
// return sides are checked against argInfo/resultInfo via UnifyWithRef; if t1 is a
// bare Variable, it is solved directly to a freshly-built Function over
// argInfo.Type/resultInfo.Type.
func UnifyFunction(reg *TypeRegistry, t1 types.Type, argInfo, resultInfo *TypeInfo) (CastKind, CastKind, error) {
	t1 = types.Solved(t1)

	if fn, ok := t1.(*types.Function); ok {
		argKind, err := UnifyWithRef(reg, fn.ParamType, argInfo)
		if err != nil {
			return CastNone, CastNone, err
		}
		resultKind, err := UnifyWithRef(reg, fn.ReturnType, resultInfo)
		if err != nil {
			return argKind, CastNone, err
		}
		return argKind, resultKind, nil
	}

	v, ok := t1.(*types.Variable)
	if !ok {
		return CastNone, CastNone, &types.TypeMismatchError{
			Left:  t1,
			Right: &types.Function{Base: reg.FnBase, ParamType: argInfo.Type, ReturnType: resultInfo.Type},
		}
	}
	fn := &types.Function{Base: reg.FnBase, ParamType: argInfo.Type, ReturnType: resultInfo.Type}
	if err := unifyVariable(reg, v, fn); err != nil {
		return CastNone, CastNone, err
	}
	return CastNone, CastNone, nil
}
