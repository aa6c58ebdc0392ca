/*
File    : magnet/parser/parser_expressions.go
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/magnet-lang/magnet/lexer"
)

// parseExpression is the heart of the Pratt algorithm. It parses an
// expression at the given precedence level:
//  1. Look up a unary (prefix) parse function for the current token. If
//     none exists, record a diagnostic and give up on this expression.
//  2. Invoke it to obtain the left-hand side.
//  3. While the next token is not a semicolon and binds tighter than the
//     given precedence, hand the left-hand side to that token's binary
//     (infix) parse function and continue with its result.
//
// Parameters:
//
//	precedence - The binding power of the context, e.g. PLUS_PRIORITY
//	             while parsing the right operand of '+'
//
// Returns:
//
//	The parsed expression, or nil when no expression could be formed
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unaryFunc, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addError(fmt.Sprintf("No function found to parse: %s", par.CurrToken.Literal))
		return nil
	}
	left := unaryFunc()

	for par.NextToken.Type != lexer.SEMICOLON_DELIM && precedence < getPrecedence(&par.NextToken) {
		binaryFunc, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		if left == nil {
			// The prefix path failed; nothing to extend
			return nil
		}
		par.advance()
		left = binaryFunc(left)
	}
	return left
}

// parseIdentifier builds an identifier node from the current token.
func (par *Parser) parseIdentifier() *IdentifierExpressionNode {
	return &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}
}

// parseIdentifierExpression is the registry wrapper around
// parseIdentifier for identifier-like tokens in expression position.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return par.parseIdentifier()
}

// parseIntegerLiteral parses the current token as a decimal integer.
// A literal that does not fit the integer range is reported and dropped.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("Is not an integer: %s", par.CurrToken))
		return nil
	}
	return &IntegerLiteralExpressionNode{
		Token: par.CurrToken,
		Value: value,
	}
}

// parseBooleanLiteral builds a boolean node from the true/false keyword.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Type == lexer.TRUE_KEY,
	}
}

// parseStringLiteral builds a string node carrying the raw literal text.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Literal,
	}
}

// parseUnaryExpression parses a prefix operation (-x or !x). The operand
// is parsed at PREFIX_PRIORITY so that "-a + b" groups as "((-a) + b)".
func (par *Parser) parseUnaryExpression() ExpressionNode {
	node := &UnaryExpressionNode{
		Token:    par.CurrToken,
		Operator: par.CurrToken.Literal,
	}
	par.advance()
	node.Right = par.parseExpression(PREFIX_PRIORITY)
	if node.Right == nil {
		return nil
	}
	return node
}

// parseParenthesizedExpression parses a grouped expression: (expr).
// The node of the inner expression is returned directly; grouping has no
// node of its own.
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression(LOWEST_PRIORITY)
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses a conditional:
//
//	if (<condition>) { <consequence> } else { <alternative> }
//
// The else branch is optional.
func (par *Parser) parseIfExpression() ExpressionNode {
	node := &IfExpressionNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression(LOWEST_PRIORITY)
	if node.Condition == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Consequence = par.parseBlock()

	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		node.Alternative = par.parseBlock()
	}
	return node
}

// parseFunctionExpression parses a function literal:
//
//	function (a, b) { <body> }
//	function add(a, b) { <body> }
//
// An identifier after the keyword names the function; the evaluator
// binds named functions into their defining environment.
func (par *Parser) parseFunctionExpression() ExpressionNode {
	node := &FunctionExpressionNode{Token: par.CurrToken}

	if par.NextToken.Type == lexer.IDENTIFIER_ID {
		par.advance()
		node.Name = par.parseIdentifier()
	}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	node.Params = par.parseFunctionParams()

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	node.Body = par.parseBlock()
	return node
}

// parseFunctionParams parses a comma-separated parameter list. The
// current token is '(' on entry; on success the current token is the
// closing ')'. A malformed list yields an empty slice with the
// diagnostic recorded.
func (par *Parser) parseFunctionParams() []*IdentifierExpressionNode {
	params := make([]*IdentifierExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}
	par.advance()
	params = append(params, par.parseIdentifier())

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		params = append(params, par.parseIdentifier())
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return make([]*IdentifierExpressionNode, 0)
	}
	return params
}

// parseBinaryExpression parses the right-hand side of an infix operator.
// The left operand has already been parsed; the right operand is parsed
// at the operator's own precedence, which makes equal-precedence runs
// left-associative.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	node := &BinaryExpressionNode{
		Token:    par.CurrToken,
		Left:     left,
		Operator: par.CurrToken.Literal,
	}
	precedence := getPrecedence(&par.CurrToken)
	par.advance()
	node.Right = par.parseExpression(precedence)
	if node.Right == nil {
		return nil
	}
	return node
}

// parseCallExpression parses a function application. The callee is the
// already-parsed left expression; the current token is the '(' of the
// argument list.
func (par *Parser) parseCallExpression(left ExpressionNode) ExpressionNode {
	node := &CallExpressionNode{
		Token: par.CurrToken,
		Func:  left,
	}
	args, ok := par.parseCallArgs()
	if !ok {
		return nil
	}
	node.Args = args
	return node
}

// parseCallArgs parses a comma-separated argument list. The current
// token is '(' on entry; on success the current token is the closing
// ')'.
//
// Returns:
//
//	The argument expressions and true, or nil and false when the
//	closing parenthesis is missing.
func (par *Parser) parseCallArgs() ([]ExpressionNode, bool) {
	args := make([]ExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return args, true
	}
	par.advance()

	for {
		if expr := par.parseExpression(LOWEST_PRIORITY); expr != nil {
			args = append(args, expr)
		}
		if par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance()
			par.advance()
		} else {
			break
		}
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil, false
	}
	return args, true
}
