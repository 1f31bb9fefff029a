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

import "testing"

func newClass(id int, name string, bases Constraints) *Class {
	self := NewParam(0, Constraints{})
	return NewClass(id, name, bases, self, map[string]Binding{})
}

func TestConstraintsMergeContracts(t *testing.T) {
	base := newClass(0, "Base", Constraints{})
	derived := newClass(1, "Derived", NewConstraints(base))

	cs := NewConstraints(base)
	cs = cs.Merge(NewConstraints(derived))

	if cs.Len() != 1 {
		t.Fatalf("expected the narrower class to replace its base, got %d entries", cs.Len())
	}
	if cs.List()[0] != derived {
		t.Fatalf("expected Derived to win, got %s", cs.List()[0].Name)
	}
}

func TestConstraintsMergeSkipsWhenAlreadyNarrower(t *testing.T) {
	base := newClass(0, "Base", Constraints{})
	derived := newClass(1, "Derived", NewConstraints(base))

	cs := NewConstraints(derived)
	cs = cs.Merge(NewConstraints(base))

	if cs.Len() != 1 || cs.List()[0] != derived {
		t.Fatalf("expected Derived to remain, got %v", cs.List())
	}
}

func TestConstraintsHas(t *testing.T) {
	base := newClass(0, "Base", Constraints{})
	derived := newClass(1, "Derived", NewConstraints(base))
	cs := NewConstraints(derived)

	if !cs.Has(base) {
		t.Fatalf("expected Has(base) to hold via subclassing")
	}
	other := newClass(2, "Other", Constraints{})
	if cs.Has(other) {
		t.Fatalf("did not expect Has(other) to hold")
	}
}

func TestGetClassMethodAmbiguous(t *testing.T) {
	a := NewClass(0, "A", Constraints{}, NewParam(0, Constraints{}), map[string]Binding{
		"m": MonoBinding(&Base{Name: "number"}),
	})
	b := NewClass(1, "B", Constraints{}, NewParam(0, Constraints{}), map[string]Binding{
		"m": MonoBinding(&Base{Name: "number"}),
	})
	cs := NewConstraints(a, b)

	_, err := cs.GetClassMethod("m")
	if _, ok := err.(*AmbiguousClassMethodError); !ok {
		t.Fatalf("expected AmbiguousClassMethodError, got %v", err)
	}
}

func TestGetClassMethodMostDerivedWins(t *testing.T) {
	base := NewClass(0, "Base", Constraints{}, NewParam(0, Constraints{}), map[string]Binding{
		"m": MonoBinding(&Base{Name: "number"}),
	})
	derived := NewClass(1, "Derived", NewConstraints(base), NewParam(0, Constraints{}), map[string]Binding{})
	cs := NewConstraints(derived)

	class, err := cs.GetClassMethod("m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class != derived {
		t.Fatalf("expected the inheriting Derived class to be returned, got %v", class)
	}
}

func TestGetClassMethodAbsent(t *testing.T) {
	base := newClass(0, "Base", Constraints{})
	cs := NewConstraints(base)

	class, err := cs.GetClassMethod("missing")
	if err != nil || class != nil {
		t.Fatalf("expected (nil, nil) for an undefined method, got (%v, %v)", class, err)
	}
}
