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

// Env is the minimal contract a lexically-nested type-environment must satisfy for
// Region.Base to reference it and for region conversion to walk its parent chain.
// The root package's TypeEnvironment implements Env; Region lives in this package so
// that Type/Region nodes stay free of a dependency on the inference engine itself.
type Env interface {
	// Depth returns the scope-nesting depth of the environment (root is 1).
	Depth() int
	// Parent returns the immediately enclosing environment, or nil at the root.
	Parent() Env
}

// Region is the base interface for all region nodes.
type Region interface {
	RegionName() string
}

func (r *RegionBase) RegionName() string     { return "Base" }
func (RegionTemporary) RegionName() string   { return "Temporary" }
func (r *RegionVariable) RegionName() string { return "Variable" }
func (r *RegionParam) RegionName() string    { return "Param" }

// RegionBase is the region of identifier bindings in a lexical scope: "the region of
// Env". Two RegionBase values are ordered by whether one Env is an ancestor of the
// other (see Convert).
type RegionBase struct {
	Env Env
}

// NewRegionBase builds the region of bindings introduced directly within env.
func NewRegionBase(env Env) *RegionBase { return &RegionBase{Env: env} }

// RegionTemporary is the bottom of the region lattice: where literals and freshly
// instantiated generic values live.
type RegionTemporary struct{}

// Temporary is the single canonical Temporary region value.
var Temporary RegionTemporary

// RegionVariable is a unifiable region metavariable; it behaves as the top of the
// region lattice until solved.
type RegionVariable struct {
	solve Region
	Depth int
}

// NewRegionVariable creates a fresh, unsolved region-variable at the given depth.
func NewRegionVariable(depth int) *RegionVariable { return &RegionVariable{Depth: depth} }

// Link returns the region this variable has been solved to, or nil if unsolved.
func (r *RegionVariable) Link() Region { return r.solve }

// SetLink solves the region-variable to r.
func (rv *RegionVariable) SetLink(r Region) { rv.solve = r }

// RegionParam is a scheme-bound, immutable region placeholder, positional like
// types.Param.
type RegionParam struct {
	Index int
}

// NewRegionParam creates a scheme-bound region placeholder at the given index.
func NewRegionParam(index int) *RegionParam { return &RegionParam{Index: index} }
