/*
File    : magnet/eval/builtins_test.go
*/
package eval

import (
	"testing"
)

// TestBuiltins_Length verifies the length builtin over strings
func TestBuiltins_Length(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{`length("world!")`, 6},
		{`length("")`, 0},
		{`length('four')`, 4},
		{`length("Hello" + " " + "World!")`, 12},
		// Characters, not bytes
		{`length("ñandú")`, 5},
	}

	for _, tt := range tests {
		checkIntegerObject(t, testEval(tt.input), tt.expected, tt.input)
	}
}

// TestBuiltins_LengthErrors verifies the arity and argument-type checks
func TestBuiltins_LengthErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`length(1)`, "Invalid INTEGER type argument"},
		{`length(true)`, "Invalid BOOLEAN type argument"},
		{`length()`, "Wrong number of arguments: expected 1 (given 0)"},
		{`length("a", "b")`, "Wrong number of arguments: expected 1 (given 2)"},
	}

	for _, tt := range tests {
		checkErrorObject(t, testEval(tt.input), tt.expected, tt.input)
	}
}

// TestBuiltins_Shadowing verifies that user bindings win over builtins
func TestBuiltins_Shadowing(t *testing.T) {
	checkIntegerObject(t,
		testEval(`let length = function (x) { 99; }; length("abc");`),
		99, "shadowed builtin")
}

// TestBuiltins_Inspect verifies that a bare builtin reference renders as
// a builtin function
func TestBuiltins_Inspect(t *testing.T) {
	result := testEval(`length`)
	if result.Inspect() != "builtin function" {
		t.Errorf("expected %q, got %q", "builtin function", result.Inspect())
	}
}
