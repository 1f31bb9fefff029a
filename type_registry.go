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
	"github.com/benbjohnson/immutable"

	"github.com/lucidlang/poly/types"
)

type registryEntry struct {
	Binding    types.Binding
	Implements types.Constraints
}

// TypeRegistry is the process-scoped table of named types and classes: the target of
// TypeMap.addType/addTypeClass and applyConstraint in §4.7. Registration is rare
// relative to lookup, so the backing SortedMaps favor cheap, immutable snapshots over
// mutation-in-place; a TypeRegistry is typically built once and shared for the
// lifetime of a program's inference.
type TypeRegistry struct {
	types   *immutable.SortedMap
	classes *immutable.SortedMap

	nextClassId int

	// FnBase and RefBase are the ground nominal Base types backing every Function and
	// Ref value respectively; FnScheme and RefScheme are their generic schemes, for
	// callers constructing fresh function/reference types. (UnifyFunction's
	// bare-Variable branch builds its Function directly over FnBase.)
	FnBase  *types.Base
	RefBase *types.Base

	FnScheme  *types.Scheme
	RefScheme *types.Scheme
}

// NewTypeRegistry creates an empty registry, pre-populated with the "fn" and "ref"
// ground types every Function and Ref value is nominally backed by.
func NewTypeRegistry() *TypeRegistry {
	fnBase := &types.Base{Name: "fn"}
	refBase := &types.Base{Name: "ref"}

	p0, p1 := types.NewParam(0, types.Constraints{}), types.NewParam(1, types.Constraints{})
	r0 := types.NewRegionParam(0)

	reg := &TypeRegistry{
		types:   immutable.NewSortedMap(nil),
		classes: immutable.NewSortedMap(nil),
		FnBase:  fnBase,
		RefBase: refBase,
		FnScheme: types.NewScheme(
			[]*types.Param{p0, p1}, nil,
			&types.Function{Base: fnBase, ParamType: p0, ReturnType: p1},
		),
		RefScheme: types.NewScheme(
			[]*types.Param{types.NewParam(0, types.Constraints{})}, []*types.RegionParam{r0},
			&types.Ref{Base: refBase, Type: types.NewParam(0, types.Constraints{}), Region: r0},
		),
	}
	return reg
}

// AddType registers a ground name (e.g. "number", "string") with its binding and the
// classes it is declared to implement. Redeclaring an existing name is rejected.
func (reg *TypeRegistry) AddType(name string, binding types.Binding, implements types.Constraints) error {
	if _, ok := reg.types.Get(name); ok {
		return &types.DuplicateTypeDefinitionError{Name: name}
	}
	reg.types = reg.types.Set(name, registryEntry{Binding: binding, Implements: implements})
	return nil
}

// AddClass registers class.Name in the registry's class table. Redeclaring an
// existing class name is rejected.
func (reg *TypeRegistry) AddClass(class *types.Class) error {
	if _, ok := reg.classes.Get(class.Name); ok {
		return &types.DuplicateClassDefinitionError{Name: class.Name}
	}
	reg.classes = reg.classes.Set(class.Name, class)
	return nil
}

// NewClass allocates and registers a fresh class with a registry-unique Id.
func (reg *TypeRegistry) NewClass(name string, bases types.Constraints, self *types.Param, methods map[string]types.Binding) (*types.Class, error) {
	class := types.NewClass(reg.nextClassId, name, bases, self, methods)
	if err := reg.AddClass(class); err != nil {
		return nil, err
	}
	reg.nextClassId++
	return class, nil
}

// LookupClass finds a previously-registered class by name.
func (reg *TypeRegistry) LookupClass(name string) (*types.Class, bool) {
	v, ok := reg.classes.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*types.Class), true
}

// LookupType finds a previously-registered ground type's binding by name.
func (reg *TypeRegistry) LookupType(name string) (types.Binding, types.Constraints, bool) {
	v, ok := reg.types.Get(name)
	if !ok {
		return types.Binding{}, types.Constraints{}, false
	}
	entry := v.(registryEntry)
	return entry.Binding, entry.Implements, true
}

// GetTypeClassList returns the set of classes t is known to implement (§4.7): a
// Variable or Param's own carried constraints, a TypeClass's member list, a Ref's
// pointee's list (computed WITHOUT collapsing solved Variables first, mirroring how a
// bare Variable reports its own constraints), or — for any named Base/Function — the
// implements-list recorded at registration.
func (reg *TypeRegistry) GetTypeClassList(t types.Type) types.Constraints {
	switch t := types.Solved(t).(type) {
	case *types.Variable:
		return t.Constraints
	case *types.Param:
		return t.Constraints
	case *types.TypeClass:
		return t.Classes
	case *types.Ref:
		if v, ok := t.Type.(*types.Variable); ok {
			return v.Constraints
		}
		return reg.GetTypeClassList(t.Type)
	case *types.Base:
		_, implements, ok := reg.LookupType(t.Name)
		if !ok {
			return types.Constraints{}
		}
		return implements
	case *types.Function:
		_, implements, ok := reg.LookupType(t.Base.Name)
		if !ok {
			return types.Constraints{}
		}
		return implements
	default:
		return types.Constraints{}
	}
}

// ApplyConstraint attaches classes to t (§4.7). A Variable merges the constraints
// directly. A Param must already carry every class in classes — reg has no way to
// retroactively widen a scheme-bound parameter — or NotDeclaredParamConstraintError
// is returned. Anything else must already satisfy classes via GetTypeClassList, or
// MissingClassError names the first class it fails to implement.
func (reg *TypeRegistry) ApplyConstraint(t types.Type, classes types.Constraints) error {
	switch t := types.UnwrapRef(t).(type) {
	case *types.Variable:
		t.Constraints = t.Constraints.Merge(classes)
		return nil
	case *types.Param:
		have := t.Constraints
		for _, c := range classes.List() {
			if !have.Has(c) {
				return &types.NotDeclaredParamConstraintError{Class: c.Name}
			}
		}
		return nil
	default:
		have := reg.GetTypeClassList(t)
		for _, c := range classes.List() {
			if !have.Has(c) {
				return &types.MissingClassError{Name: c.Name}
			}
		}
		return nil
	}
}
