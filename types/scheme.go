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

// Scheme (a.k.a. Generic) is a universally-quantified type: a body plus positional
// lists of type and region parameters. Vals and RegionVals are the bound positions;
// each Param/RegionParam inside Type with a matching Index refers to them
// positionally (Invariant 9).
type Scheme struct {
	Vals       []*Param
	RegionVals []*RegionParam
	Type       Type
}

// NewScheme builds a scheme closing over vals/regionVals within body.
func NewScheme(vals []*Param, regionVals []*RegionParam, body Type) *Scheme {
	return &Scheme{Vals: vals, RegionVals: regionVals, Type: body}
}

// Arity returns the number of bound type parameters.
func (s *Scheme) Arity() int { return len(s.Vals) }

// RegionArity returns the number of bound region parameters.
func (s *Scheme) RegionArity() int { return len(s.RegionVals) }

// Binding is either a monomorphic Type or a polymorphic Scheme, matching the
// TypeEnvironment/TypeRegistry entries of the form (Type|Scheme, ...) from the
// data model (§3). Exactly one of Type/Scheme is non-nil.
type Binding struct {
	Type   Type
	Scheme *Scheme
}

// MonoBinding wraps a monomorphic type as a Binding.
func MonoBinding(t Type) Binding { return Binding{Type: t} }

// SchemeBinding wraps a scheme as a Binding.
func SchemeBinding(s *Scheme) Binding { return Binding{Scheme: s} }

// IsScheme reports whether the binding is polymorphic.
func (b Binding) IsScheme() bool { return b.Scheme != nil }
