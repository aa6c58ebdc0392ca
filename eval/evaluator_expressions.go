/*
File    : magnet/eval/evaluator_expressions.go
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/magnet-lang/magnet/objects"
	"github.com/magnet-lang/magnet/parser"
	"github.com/magnet-lang/magnet/scope"
)

// evalIdentifier resolves a name: the scope chain wins over the builtins
// table, so user bindings may shadow builtins. An unresolved name is a
// runtime error.
func (ev *Evaluator) evalIdentifier(node *parser.IdentifierExpressionNode, scp *scope.Scope) objects.Object {
	if obj, ok := scp.LookUp(node.Name); ok {
		return obj
	}
	if builtin, ok := ev.Builtins[node.Name]; ok {
		return builtin
	}
	return newError("Identifier not found: %s", node.Name)
}

// evalUnaryExpression dispatches a prefix operator over its evaluated
// operand.
func (ev *Evaluator) evalUnaryExpression(operator string, right objects.Object) objects.Object {
	switch operator {
	case "!":
		return evalBangOperator(right)
	case "+":
		return evalPositiveOperator(right)
	case "-":
		return evalNegativeOperator(right)
	default:
		return newError("Invalid operator (%s) for type: %s", operator, right.GetType())
	}
}

// evalBangOperator negates its operand. Integers negate by zero-ness
// (zero is the only "false" integer here); everything else negates its
// truthiness.
func evalBangOperator(right objects.Object) objects.Object {
	if integer, ok := right.(*objects.Integer); ok {
		return toBooleanObject(integer.Value == 0)
	}
	return toBooleanObject(!isTruthy(right))
}

// evalPositiveOperator passes an integer through unchanged; any other
// operand type is an error.
func evalPositiveOperator(right objects.Object) objects.Object {
	integer, ok := right.(*objects.Integer)
	if !ok {
		return newError("Invalid operator (+) for type: %s", right.GetType())
	}
	return &objects.Integer{Value: +integer.Value}
}

// evalNegativeOperator negates an integer; any other operand type is an
// error.
func evalNegativeOperator(right objects.Object) objects.Object {
	integer, ok := right.(*objects.Integer)
	if !ok {
		return newError("Invalid operator (-) for type: %s", right.GetType())
	}
	return &objects.Integer{Value: -integer.Value}
}

// evalBinaryExpression dispatches an infix operator over its evaluated
// operands. The dispatch order is significant:
//  1. integer/integer arithmetic and comparison
//  2. string on the left with a string or integer on the right
//  3. identity == / != (this is how the shared boolean and null
//     sentinels compare, and why a mixed-type == is plain false)
//  4. differing operand types -> type mismatch
//  5. matching operand types with no supported operator -> invalid
//     operation
func (ev *Evaluator) evalBinaryExpression(operator string, left, right objects.Object) objects.Object {
	switch {
	case left.GetType() == objects.INTEGER_TYPE && right.GetType() == objects.INTEGER_TYPE:
		return evalIntegerBinaryExpression(operator, left, right)

	case left.GetType() == objects.STRING_TYPE &&
		(right.GetType() == objects.STRING_TYPE || right.GetType() == objects.INTEGER_TYPE):
		return evalStringBinaryExpression(operator, left, right)

	case operator == "==":
		return toBooleanObject(left == right)

	case operator == "!=":
		return toBooleanObject(left != right)

	case left.GetType() != right.GetType():
		return newError("Type mismatch: %s %s %s", left.GetType(), operator, right.GetType())

	default:
		return newError("Invalid operation: %s %s %s", left.GetType(), operator, right.GetType())
	}
}

// evalIntegerBinaryExpression implements integer arithmetic and
// comparison. Division is floor division: -7 / 2 is -4, not -3.
// Comparisons yield the shared boolean sentinels.
func evalIntegerBinaryExpression(operator string, left, right objects.Object) objects.Object {
	leftVal := left.(*objects.Integer).Value
	rightVal := right.(*objects.Integer).Value

	switch operator {
	case "+":
		return &objects.Integer{Value: leftVal + rightVal}
	case "-":
		return &objects.Integer{Value: leftVal - rightVal}
	case "*":
		return &objects.Integer{Value: leftVal * rightVal}
	case "/":
		return &objects.Integer{Value: floorDiv(leftVal, rightVal)}
	case "<":
		return toBooleanObject(leftVal < rightVal)
	case ">":
		return toBooleanObject(leftVal > rightVal)
	case "<=":
		return toBooleanObject(leftVal <= rightVal)
	case ">=":
		return toBooleanObject(leftVal >= rightVal)
	case "==":
		return toBooleanObject(leftVal == rightVal)
	case "!=":
		return toBooleanObject(leftVal != rightVal)
	default:
		return newError("Invalid operation: %s %s %s", left.GetType(), operator, right.GetType())
	}
}

// evalStringBinaryExpression implements the string operators: string
// concatenation and value comparison against another string, and
// repetition against an integer ("na" * 3 is "nanana"). Any other
// pairing is an error.
func evalStringBinaryExpression(operator string, left, right objects.Object) objects.Object {
	leftVal := left.(*objects.String).Value

	if right.GetType() == objects.STRING_TYPE {
		rightVal := right.(*objects.String).Value
		switch operator {
		case "+":
			return &objects.String{Value: leftVal + rightVal}
		case "==":
			return toBooleanObject(leftVal == rightVal)
		case "!=":
			return toBooleanObject(leftVal != rightVal)
		default:
			return newError("Invalid operation: %s %s %s", left.GetType(), operator, right.GetType())
		}
	}

	if operator == "*" {
		times := right.(*objects.Integer).Value
		if times <= 0 {
			return &objects.String{Value: ""}
		}
		return &objects.String{Value: strings.Repeat(leftVal, int(times))}
	}
	return newError("Type mismatch: %s %s %s", left.GetType(), operator, right.GetType())
}

// evalIfExpression evaluates the condition and picks a branch. With a
// falsy condition and no else block the conditional is null.
func (ev *Evaluator) evalIfExpression(node *parser.IfExpressionNode, scp *scope.Scope) objects.Object {
	condition := ev.Eval(node.Condition, scp)
	if isTruthy(condition) {
		return ev.Eval(node.Consequence, scp)
	} else if node.Alternative != nil {
		return ev.Eval(node.Alternative, scp)
	}
	return NULL
}

// floorDiv divides rounding toward negative infinity. The quotient is
// adjusted whenever there is a remainder and the operands disagree in
// sign. Division by zero is a native panic, contained at the REPL/file
// boundary.
func floorDiv(a, b int64) int64 {
	quotient := a / b
	remainder := a % b
	if remainder != 0 && (remainder < 0) != (b < 0) {
		quotient--
	}
	return quotient
}

// isTruthy is the truth classification used by conditionals and the bang
// operator: only null and false are falsy. Zero and the empty string are
// truthy.
func isTruthy(obj objects.Object) bool {
	return obj != NULL && obj != FALSE
}

// toBooleanObject maps a native bool onto the shared sentinels.
func toBooleanObject(value bool) *objects.Boolean {
	if value {
		return TRUE
	}
	return FALSE
}

// newError builds a runtime Error object with a formatted message.
// Per-token line tracking is not wired yet; every error reports line 1.
func newError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...), Line: 1}
}
