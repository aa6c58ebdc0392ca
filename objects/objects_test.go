/*
File    : magnet/objects/objects_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestObjects_Inspect verifies the user-facing renderings of the basic
// object kinds
func TestObjects_Inspect(t *testing.T) {

	integer := &Integer{Value: 42}
	assert.Equal(t, INTEGER_TYPE, integer.GetType())
	assert.Equal(t, "42", integer.Inspect())

	negative := &Integer{Value: -7}
	assert.Equal(t, "-7", negative.Inspect())

	truthy := &Boolean{Value: true}
	assert.Equal(t, BOOLEAN_TYPE, truthy.GetType())
	assert.Equal(t, "true", truthy.Inspect())
	assert.Equal(t, "false", (&Boolean{Value: false}).Inspect())

	str := &String{Value: "hello"}
	assert.Equal(t, STRING_TYPE, str.GetType())
	assert.Equal(t, "hello", str.Inspect())

	null := &Null{}
	assert.Equal(t, NULL_TYPE, null.GetType())
	assert.Equal(t, "null", null.Inspect())
}

// TestObjects_ReturnInspect verifies that the return wrapper renders as
// its wrapped value
func TestObjects_ReturnInspect(t *testing.T) {

	wrapped := &Return{Value: &Integer{Value: 10}}
	assert.Equal(t, RETURN_TYPE, wrapped.GetType())
	assert.Equal(t, "10", wrapped.Inspect())
}

// TestObjects_ErrorInspect verifies the error rendering with its line
// header
func TestObjects_ErrorInspect(t *testing.T) {

	err := &Error{Message: "Identifier not found: foo", Line: 1}
	assert.Equal(t, ERROR_TYPE, err.GetType())
	assert.Equal(t, "[Error] in line 1:\n  Identifier not found: foo", err.Inspect())
}

// TestObjects_BuiltinInspect verifies the fixed builtin rendering
func TestObjects_BuiltinInspect(t *testing.T) {

	builtin := &Builtin{Fn: func(args ...Object) Object { return &Null{} }}
	assert.Equal(t, BUILTIN_TYPE, builtin.GetType())
	assert.Equal(t, "builtin function", builtin.Inspect())
}
