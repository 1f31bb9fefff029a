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
	"github.com/lucidlang/poly/ast"
	"github.com/lucidlang/poly/types"
)

// InferenceContext is a reusable driver around J/M: it remembers the last failing
// expression alongside the error that stopped inference, so a caller reporting
// diagnostics doesn't have to thread that pair through every call site by hand.
type InferenceContext struct {
	Registry *TypeRegistry

	err     error
	invalid ast.Expr
}

// NewInferenceContext creates a context bound to reg; reg is typically shared across
// many Infer/Check calls (one TypeRegistry per program, not per expression).
func NewInferenceContext(reg *TypeRegistry) *InferenceContext {
	return &InferenceContext{Registry: reg}
}

// Error returns the error from the most recent failing Infer/Check call, or nil.
func (ctx *InferenceContext) Error() error { return ctx.err }

// InvalidExpr returns the root expression passed to the most recent failing
// Infer/Check call, or nil if the last call succeeded (or none has run yet). It does
// not identify which sub-expression inference was visiting when it failed.
func (ctx *InferenceContext) InvalidExpr() ast.Expr { return ctx.invalid }

// Reset clears any remembered failure.
func (ctx *InferenceContext) Reset() {
	ctx.err = nil
	ctx.invalid = nil
}

// Infer synthesizes root's type in env via Algorithm J, generalizing the result at
// env's own depth once inference completes.
func (ctx *InferenceContext) Infer(env *TypeEnvironment, root ast.Expr) (types.Binding, error) {
	ctx.Reset()
	info, err := J(env, ctx.Registry, root)
	if err != nil {
		ctx.err, ctx.invalid = err, root
		return types.Binding{}, err
	}
	return Generalize(env, info.Type, nil), nil
}

// Check verifies root against expected in env via Algorithm M.
func (ctx *InferenceContext) Check(env *TypeEnvironment, root ast.Expr, expected *TypeInfo) error {
	ctx.Reset()
	if err := M(env, ctx.Registry, root, expected); err != nil {
		ctx.err, ctx.invalid = err, root
		return err
	}
	return nil
}
