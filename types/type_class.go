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

import (
	"github.com/lucidlang/poly/internal/util"
)

// Class is a named type-class: bases, a self-parameter, and a map of named method
// schemes. Its Id should be unique within a TypeRegistry; Bases/Self/Methods are set
// once at declaration and not mutated afterward, matching the immutability implied
// by the data model (§3 "TypeClass").
type Class struct {
	Id      int
	Name    string
	Bases   Constraints
	// Self is a fresh, unconstrained Param unique to this class; it occurs as the
	// first formal throughout Methods (Invariant 4).
	Self    *Param
	Methods map[string]Binding
}

// NewClass declares a named class with the given bases and method set. self must be
// a fresh Param not shared with any other class.
func NewClass(id int, name string, bases Constraints, self *Param, methods map[string]Binding) *Class {
	return &Class{Id: id, Name: name, Bases: bases, Self: self, Methods: methods}
}

// Derived reports whether c is target itself, or inherits (transitively) from
// target through Bases.
func (c *Class) Derived(target *Class) bool {
	if c == target {
		return true
	}
	for _, base := range c.Bases.List() {
		if base.Derived(target) {
			return true
		}
	}
	return false
}

func (c *Class) definesDirectly(name string) bool {
	_, ok := c.Methods[name]
	return ok
}

func (c *Class) inheritsMethod(name string) bool {
	for _, base := range c.Bases.List() {
		if base.definesDirectly(name) || base.inheritsMethod(name) {
			return true
		}
	}
	return false
}

// LookupMethod finds the (possibly inherited) method binding named name, along with
// the class that directly defines it. Sub-classes shadow base-defined methods with
// the same name.
func (c *Class) LookupMethod(name string) (Binding, *Class, bool) {
	seen := util.NewIntDedupeMap()
	defer seen.Release()
	return c.lookupMethod(seen, name)
}

func (c *Class) lookupMethod(seen util.IntDedupeMap, name string) (Binding, *Class, bool) {
	if seen[c.Id] {
		return Binding{}, nil, false
	}
	seen[c.Id] = true
	if b, ok := c.Methods[name]; ok {
		return b, c, true
	}
	for _, base := range c.Bases.List() {
		if b, owner, ok := base.lookupMethod(seen, name); ok {
			return b, owner, true
		}
	}
	return Binding{}, nil, false
}
