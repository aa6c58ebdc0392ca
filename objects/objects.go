/*
File    : magnet/objects/objects.go
*/

// Package objects defines the runtime object model of the magnet
// language: the Object interface, the type constants whose names appear
// verbatim in runtime diagnostics, and the concrete kinds - integers,
// booleans, strings, null, the transient return wrapper, first-class
// errors, and builtin functions. The user function object lives in its
// own package because it references the AST and the scope chain.
package objects

import "fmt"

// ObjectType identifies the kind of a runtime object. The constant
// values are the uppercase kind names used in error messages, e.g.
// "Type mismatch: INTEGER + STRING".
type ObjectType string

const (
	// INTEGER_TYPE represents 64-bit integer values
	INTEGER_TYPE ObjectType = "INTEGER"
	// BOOLEAN_TYPE represents the two shared boolean sentinels
	BOOLEAN_TYPE ObjectType = "BOOLEAN"
	// STRING_TYPE represents string values
	STRING_TYPE ObjectType = "STRING"
	// NULL_TYPE represents the shared null sentinel
	NULL_TYPE ObjectType = "NULL"
	// RETURN_TYPE represents the transient return-propagation wrapper
	RETURN_TYPE ObjectType = "RETURN"
	// ERROR_TYPE represents runtime error objects
	ERROR_TYPE ObjectType = "ERROR"
	// FUNCTION_TYPE represents user-defined function objects (defined in
	// the function package)
	FUNCTION_TYPE ObjectType = "FUNCTION"
	// BUILTIN_TYPE represents native builtin functions
	BUILTIN_TYPE ObjectType = "BUILTIN"
)

// Object is the interface every magnet runtime value implements.
type Object interface {
	// GetType returns the ObjectType of the object, used for type checking
	GetType() ObjectType
	// Inspect returns the user-facing string representation of the value
	Inspect() string
}

// Integer represents a 64-bit signed integer value.
type Integer struct {
	Value int64 // The underlying integer value
}

// GetType returns the type of the Integer object
func (i *Integer) GetType() ObjectType {
	return INTEGER_TYPE
}

// Inspect returns the decimal rendering of the value (e.g. "42")
func (i *Integer) Inspect() string {
	return fmt.Sprintf("%d", i.Value)
}

// Boolean represents a boolean value. The evaluator shares two
// singletons for true and false; equality on booleans is object
// identity, so boolean objects must never be allocated per expression.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() ObjectType {
	return BOOLEAN_TYPE
}

// Inspect returns "true" or "false"
func (b *Boolean) Inspect() string {
	return fmt.Sprintf("%t", b.Value)
}

// String represents a string value.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() ObjectType {
	return STRING_TYPE
}

// Inspect returns the raw text of the string
func (s *String) Inspect() string {
	return s.Value
}

// Null represents the absence of a value. A single shared sentinel is
// used throughout an evaluation.
type Null struct{}

// GetType returns the type of the Null object
func (n *Null) GetType() ObjectType {
	return NULL_TYPE
}

// Inspect returns "null"
func (n *Null) Inspect() string {
	return "null"
}

// Return wraps a value produced by a return statement while it
// propagates out of nested blocks. It is unwrapped at the program
// boundary and at function-call return, and is never visible to user
// code.
type Return struct {
	Value Object // The wrapped result
}

// GetType returns the type of the Return wrapper
func (r *Return) GetType() ObjectType {
	return RETURN_TYPE
}

// Inspect returns the inspect string of the wrapped value
func (r *Return) Inspect() string {
	return r.Value.Inspect()
}

// Error represents a runtime diagnostic. It is a first-class object, but
// any statement producing one short-circuits the enclosing block and
// program. Line carries the source line of the failure; per-token
// tracking is not wired yet, so every constructor uses line 1.
type Error struct {
	Message string // Human-readable description of the failure
	Line    int    // Source line of the failure
}

// GetType returns the type of the Error object
func (e *Error) GetType() ObjectType {
	return ERROR_TYPE
}

// Inspect renders the error with its line header:
//
//	[Error] in line 1:
//	  Identifier not found: foo
func (e *Error) Inspect() string {
	return fmt.Sprintf("[Error] in line %d:\n  %s", e.Line, e.Message)
}

// BuiltinFunction is the native signature of builtin functions. Each
// builtin validates its own arguments and returns a result or an Error
// object.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a native function so it can live in an environment and
// be applied like any other callable.
type Builtin struct {
	Fn BuiltinFunction // The native implementation
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() ObjectType {
	return BUILTIN_TYPE
}

// Inspect returns the fixed rendering "builtin function"
func (b *Builtin) Inspect() string {
	return "builtin function"
}
