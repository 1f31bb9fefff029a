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

// Package poly implements a Hindley-Milner type inference engine extended with
// type classes (including multiple inheritance and existential type-class values)
// and a static region system for tracking reference lifetimes.
//
// Inference runs in two cooperating modes: J synthesizes a type bottom-up from an
// expression alone, and M checks an expression top-down against an already-known
// expected type, used wherever a binder (a lambda parameter, a declared type
// annotation) supplies one in advance. Both share the same unification, Generalize
// and Instantiate machinery defined alongside them in this package.
//
// A TypeEnvironment is a lexically-nested, stack-scoped binding scope; a
// TypeRegistry is the longer-lived, process-scoped table of named types and classes
// a program's environments are built against. Neither is safe for concurrent use —
// unification is destructive and does not roll back on failure, so a single
// inference pass owns both exclusively for its duration.
package poly
