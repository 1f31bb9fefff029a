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

// The fixed error taxonomy for the engine (spec §6/§7). Errors live here, rather
// than in the root package, so that pure algorithms in this package (Constraints,
// Class) can raise them without creating an import cycle back to the engine.

// UnknownIdentifierError is raised when an identifier has no binding in scope.
type UnknownIdentifierError struct{ Name string }

func (e *UnknownIdentifierError) Error() string { return "Unknown identifier " + e.Name }

// RecursiveUnificationError is a contract-level error: an implicitly recursive type
// was rejected by the occurs check.
type RecursiveUnificationError struct{}

func (e *RecursiveUnificationError) Error() string {
	return "Implicitly recursive types are not supported"
}

// TypeMismatchError is raised when two types cannot be unified.
type TypeMismatchError struct{ Left, Right Type }

func (e *TypeMismatchError) Error() string {
	return "Type mismatch between " + e.Left.TypeName() + " and " + e.Right.TypeName()
}

// MissingClassError is raised when a non-Variable type is asked to satisfy a class
// it does not implement.
type MissingClassError struct{ Name string }

func (e *MissingClassError) Error() string { return "Missing class " + e.Name }

// NotDeclaredParamConstraintError is raised when a constraint is applied to a Param
// which was not pre-declared with that constraint.
type NotDeclaredParamConstraintError struct{ Class string }

func (e *NotDeclaredParamConstraintError) Error() string {
	return "generic parameter needs prior constraint " + e.Class
}

// AmbiguousClassMethodError is raised when two incomparable classes in a constraint
// set both directly define the same method name.
type AmbiguousClassMethodError struct{ Name string }

func (e *AmbiguousClassMethodError) Error() string { return "Ambiguous class method " + e.Name }

// MissingClassMethodError is raised when no class in a constraint set implements a
// requested method.
type MissingClassMethodError struct{ Name string }

func (e *MissingClassMethodError) Error() string { return "Method not implemented " + e.Name }

// RedefinedError is raised when an identifier is redefined in the same scope.
type RedefinedError struct{ Name string }

func (e *RedefinedError) Error() string { return "Identifier redefined " + e.Name }

// DanglingError is raised when a reference to a region would escape the scope that
// defines it. Name is the identifier at fault, if any.
type DanglingError struct{ Name string }

func (e *DanglingError) Error() string {
	if e.Name == "" {
		return "Dangling reference"
	}
	return "Dangling reference " + e.Name
}

// DuplicateTypeDefinitionError is raised when a type name is registered twice in a
// TypeRegistry.
type DuplicateTypeDefinitionError struct{ Name string }

func (e *DuplicateTypeDefinitionError) Error() string {
	return "Duplicate type definition " + e.Name
}

// DuplicateClassDefinitionError is raised when a class name is registered twice in a
// TypeRegistry.
type DuplicateClassDefinitionError struct{ Name string }

func (e *DuplicateClassDefinitionError) Error() string {
	return "Duplicate class definition " + e.Name
}
