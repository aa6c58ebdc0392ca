/*
File    : magnet/eval/builtins.go
*/
package eval

import (
	"unicode/utf8"

	"github.com/magnet-lang/magnet/objects"
)

// Builtins is the table of native functions available to every program.
// User bindings shadow entries here (the scope chain is consulted
// first).
var Builtins = map[string]*objects.Builtin{
	"length": {Fn: lengthBuiltin},
}

// lengthBuiltin returns the number of characters in a string.
//
// Syntax: length(s)
//
// Exactly one string argument is required; anything else is an arity or
// argument-type error.
func lengthBuiltin(args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return newError("Wrong number of arguments: expected %d (given %d)", 1, len(args))
	}
	str, ok := args[0].(*objects.String)
	if !ok {
		return newError("Invalid %s type argument", args[0].GetType())
	}
	return &objects.Integer{Value: int64(utf8.RuneCountInString(str.Value))}
}
