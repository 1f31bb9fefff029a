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

// Constraints is an insertion-ordered set of Class references. No element is a
// superclass of another (the narrower one wins); duplicates are collapsed.
// Membership is by node identity (pointer equality), not name (Invariant 5).
type Constraints struct {
	list []*Class
}

// NewConstraints builds a Constraints set from a handful of classes, applying the
// same contraction Merge would.
func NewConstraints(classes ...*Class) Constraints {
	var cs Constraints
	return cs.Merge(NewConstraintsUnchecked(classes))
}

// NewConstraintsUnchecked wraps classes directly, without contracting under the
// subclass lattice. Used by NewConstraints, and by callers wrapping a list that is
// already contracted, such as a single class.
func NewConstraintsUnchecked(classes []*Class) Constraints {
	return Constraints{list: classes}
}

// Len returns the number of classes in the set.
func (cs Constraints) Len() int { return len(cs.list) }

// List returns the underlying classes, in insertion order. Callers must not mutate
// the returned slice.
func (cs Constraints) List() []*Class { return cs.list }

// Merge combines other into cs under the subclass lattice: for each class c in
// other, for each current class d: if d equals c or d is already a subclass of c,
// skip; if c is a subclass of d, replace d with c; otherwise append c. The result
// contains only pairwise-incomparable classes (Invariant 5).
func (cs Constraints) Merge(other Constraints) Constraints {
	result := make([]*Class, len(cs.list))
	copy(result, cs.list)
	for _, c := range other.list {
		replaced := false
		skip := false
		for i, d := range result {
			switch {
			case d == c || d.Derived(c):
				skip = true
			case c.Derived(d):
				result[i] = c
				replaced = true
			}
			if skip || replaced {
				break
			}
		}
		if replaced {
			// c may also subclass later entries (multiple inheritance); drop them.
			kept := result[:0]
			for _, d := range result {
				if d == c || !c.Derived(d) {
					kept = append(kept, d)
				}
			}
			result = kept
		}
		if !skip && !replaced {
			result = append(result, c)
		}
	}
	return Constraints{list: result}
}

// Has reports whether any class in cs is c or a (non-strict) subclass of c.
func (cs Constraints) Has(c *Class) bool {
	for _, d := range cs.list {
		if d == c || d.Derived(c) {
			return true
		}
	}
	return false
}

// GetClassMethod finds, among the classes in cs which define name (directly or
// through a base class), the most-derived one. If two incomparable classes both
// define name directly, it returns an *AmbiguousClassMethodError. If no class in cs
// defines name, it returns (nil, nil); callers raise MissingClassMethodError.
func (cs Constraints) GetClassMethod(name string) (*Class, error) {
	type candidate struct {
		class  *Class
		direct bool
	}
	var candidates []candidate
	for _, c := range cs.list {
		direct := c.definesDirectly(name)
		if direct || c.inheritsMethod(name) {
			candidates = append(candidates, candidate{c, direct})
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case c.class.Derived(best.class):
			best = c
		case best.class.Derived(c.class):
			// keep best; it is already more derived than c
		case c.direct && best.direct:
			return nil, &AmbiguousClassMethodError{Name: name}
		case c.direct && !best.direct:
			best = c
		}
	}
	return best.class, nil
}
