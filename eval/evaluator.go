/*
File    : magnet/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for the magnet
// language. Evaluation threads a scope chain through the AST, producing
// runtime objects. Two propagation rules shape the whole package:
// return values travel outward wrapped in a transient Return object
// until a function boundary or the program root unwraps them, and Error
// objects short-circuit every enclosing block the same way. Neither uses
// Go's error or panic machinery - the propagation is part of the
// language semantics.
package eval

import (
	"io"
	"os"

	"github.com/magnet-lang/magnet/function"
	"github.com/magnet-lang/magnet/objects"
	"github.com/magnet-lang/magnet/parser"
	"github.com/magnet-lang/magnet/scope"
)

// The shared sentinels. Boolean equality in the language falls through
// to object identity, so true/false/null are allocated exactly once.
var (
	TRUE  = &objects.Boolean{Value: true}
	FALSE = &objects.Boolean{Value: false}
	NULL  = &objects.Null{}
)

// Evaluator holds the state shared by one evaluation pipeline: the
// builtins table and the output writer handed to callers that display
// results.
type Evaluator struct {
	Builtins map[string]*objects.Builtin // Builtin functions by name
	Writer   io.Writer                   // Output writer (default: os.Stdout)
}

// NewEvaluator creates an Evaluator with the standard builtins
// registered and output directed at os.Stdout.
//
// Example usage:
//
//	ev := eval.NewEvaluator()
//	result := ev.Eval(parser.NewParser(src).Parse(), scope.NewScope(nil))
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Builtins: make(map[string]*objects.Builtin),
		Writer:   os.Stdout,
	}
	for name, builtin := range Builtins {
		ev.Builtins[name] = builtin
	}
	return ev
}

// SetWriter redirects the evaluator's output writer. Useful for tests
// and for shells that write somewhere other than stdout.
func (ev *Evaluator) SetWriter(w io.Writer) {
	ev.Writer = w
}

// Eval evaluates an AST node in the given scope and returns the
// resulting object. Ill-typed operations yield Error objects rather
// than native failures; nodes the evaluator does not know return nil.
//
// Parameters:
//   - node: Any AST node (statements, expressions, or the root)
//   - scp: The scope frame to evaluate in
//
// Returns:
//   - objects.Object: The result of the node, or nil for unknown nodes
func (ev *Evaluator) Eval(node parser.Node, scp *scope.Scope) objects.Object {
	switch node := node.(type) {

	case *parser.RootNode:
		return ev.evalRootNode(node, scp)

	case *parser.BlockStatementNode:
		return ev.evalBlock(node, scp)

	case *parser.DeclarativeStatementNode:
		value := ev.Eval(node.Value, scp)
		scp.Bind(node.Name.Name, value)
		return value

	case *parser.ReturnStatementNode:
		value := ev.Eval(node.Value, scp)
		return &objects.Return{Value: value}

	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: node.Value}

	case *parser.BooleanLiteralExpressionNode:
		return toBooleanObject(node.Value)

	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: node.Value}

	case *parser.IdentifierExpressionNode:
		return ev.evalIdentifier(node, scp)

	case *parser.UnaryExpressionNode:
		right := ev.Eval(node.Right, scp)
		return ev.evalUnaryExpression(node.Operator, right)

	case *parser.BinaryExpressionNode:
		left := ev.Eval(node.Left, scp)
		right := ev.Eval(node.Right, scp)
		return ev.evalBinaryExpression(node.Operator, left, right)

	case *parser.IfExpressionNode:
		return ev.evalIfExpression(node, scp)

	case *parser.FunctionExpressionNode:
		fn := &function.Function{
			Params: node.Params,
			Body:   node.Body,
			Scp:    scp,
		}
		if node.Name != nil {
			// Named declarations also bind themselves in the defining
			// scope, which is what makes recursion reachable
			fn.Name = node.Name.Name
			scp.Bind(node.Name.Name, fn)
		}
		return fn

	case *parser.CallExpressionNode:
		callee := ev.Eval(node.Func, scp)
		args := ev.evalExpressions(node.Args, scp)
		return ev.applyFunction(callee, args)
	}

	return nil
}

// evalRootNode evaluates the program's statements in order. A Return is
// unwrapped and ends the program; an Error ends the program as-is;
// otherwise the last statement's value is the program's value.
func (ev *Evaluator) evalRootNode(root *parser.RootNode, scp *scope.Scope) objects.Object {
	var result objects.Object
	for _, stmt := range root.Statements {
		result = ev.Eval(stmt, scp)
		switch result := result.(type) {
		case *objects.Return:
			return result.Value
		case *objects.Error:
			return result
		}
	}
	return result
}

// evalBlock evaluates a block's statements in order. Unlike the program
// root, Return and Error objects are propagated without unwrapping so
// enclosing frames can observe and re-propagate them. Unwrapping happens
// only at the program boundary and at function-call return.
func (ev *Evaluator) evalBlock(block *parser.BlockStatementNode, scp *scope.Scope) objects.Object {
	var result objects.Object
	for _, stmt := range block.Statements {
		result = ev.Eval(stmt, scp)
		if result != nil {
			kind := result.GetType()
			if kind == objects.RETURN_TYPE || kind == objects.ERROR_TYPE {
				return result
			}
		}
	}
	return result
}

// evalExpressions evaluates a list of expressions in strict left-to-right
// order, as argument lists require.
func (ev *Evaluator) evalExpressions(expressions []parser.ExpressionNode, scp *scope.Scope) []objects.Object {
	result := make([]objects.Object, 0, len(expressions))
	for _, expression := range expressions {
		result = append(result, ev.Eval(expression, scp))
	}
	return result
}

// applyFunction applies a callee to already-evaluated arguments.
//
// User functions get a fresh frame whose parent is the function's
// captured scope; parameters bind positionally. Missing arguments are an
// arity error; surplus arguments are ignored. A Return produced by the
// body is unwrapped here, at the call boundary.
//
// Builtins are applied directly. Anything else is not callable.
func (ev *Evaluator) applyFunction(callee objects.Object, args []objects.Object) objects.Object {
	switch callee := callee.(type) {

	case *function.Function:
		if len(args) < len(callee.Params) {
			return newError("Wrong number of arguments: expected %d (given %d)",
				len(callee.Params), len(args))
		}
		frame := scope.NewScope(callee.Scp)
		for idx, param := range callee.Params {
			frame.Bind(param.Name, args[idx])
		}
		evaluated := ev.Eval(callee.Body, frame)
		return unwrapReturnValue(evaluated)

	case *objects.Builtin:
		return callee.Fn(args...)

	default:
		return newError("Not a function: %s", callee.GetType())
	}
}

// unwrapReturnValue strips the transient Return wrapper at a function
// boundary; every other object passes through untouched.
func unwrapReturnValue(obj objects.Object) objects.Object {
	if ret, ok := obj.(*objects.Return); ok {
		return ret.Value
	}
	return obj
}
