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

func TestTypeStringBase(t *testing.T) {
	if got := TypeString(&Base{Name: "number"}); got != "number" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeStringUnsolvedVariable(t *testing.T) {
	v := NewVariable(1)
	if got := TypeString(v); got != "?a" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeStringConstrainedParam(t *testing.T) {
	class := NewClass(0, "Add", Constraints{}, NewParam(0, Constraints{}), map[string]Binding{})
	p := NewParam(0, NewConstraints(class))
	if got := TypeString(p); got != "'a: Add" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeStringFunctionParenthesizesCompoundParam(t *testing.T) {
	fnBase := &Base{Name: "fn"}
	inner := &Function{Base: fnBase, ParamType: &Base{Name: "number"}, ReturnType: &Base{Name: "number"}}
	outer := &Function{Base: fnBase, ParamType: inner, ReturnType: &Base{Name: "number"}}

	if got, want := TypeString(outer), "(number -> number) -> number"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTypeStringRef(t *testing.T) {
	refBase := &Base{Name: "ref"}
	ref := &Ref{Base: refBase, Type: &Base{Name: "number"}, Region: Temporary}
	got := TypeString(ref)
	if got != "number& at a" {
		t.Fatalf("got %q", got)
	}
}
