/*
File    : magnet/function/function.go
*/

// Package function defines the user-defined function object. It lives in
// its own package so that objects stays free of AST and scope
// dependencies: a function value references the parameter and body nodes
// produced by the parser and the scope frame it was defined in.
package function

import (
	"strings"

	"github.com/magnet-lang/magnet/objects"
	"github.com/magnet-lang/magnet/parser"
	"github.com/magnet-lang/magnet/scope"
)

// Function represents a user-defined function value.
//
// Fields:
//   - Name: The declared name, or "" for anonymous function expressions.
//   - Params: The parameter identifier nodes, bound positionally to
//     arguments on application.
//   - Body: The block evaluated on application.
//   - Scp: The frame the function was defined in. Applications evaluate
//     the body in a fresh child of this frame, which is what gives the
//     language lexical closures.
type Function struct {
	Name   string                             // Declared name ("" when anonymous)
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body
	Scp    *scope.Scope                       // Captured defining scope
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() objects.ObjectType {
	return objects.FUNCTION_TYPE
}

// Inspect renders the function with its parameter list and body:
//
//	function add(a, b) {
//	    return (a + b)
//	}
//
// Anonymous functions render with an empty name slot.
func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Literal())
	}
	return "function " + f.Name + "(" + strings.Join(params, ", ") + ") {\n    " +
		f.Body.Literal() + "\n}"
}
