/*
File    : magnet/parser/parser_precedence.go
*/
package parser

import "github.com/magnet-lang/magnet/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Base level for starting expression parsing
// 2. Equality operators
// 3. Relational and boolean operators
// 4. Additive operators
// 5. Multiplicative operators
// 6. Unary/Prefix operators
// 7. Call operator (postfix '(')
//
// Example: In "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "a + (b * c)" rather than "(a + b) * c".
// Equal-precedence runs associate to the left.
const (
	// Base priority for starting expression parsing; also the priority
	// of every token with no entry in the table
	LOWEST_PRIORITY = 1

	// Equality operators: == !=
	EQUALITY_PRIORITY = 2

	// Relational and boolean operators: < > <= >= && || ^
	RELATIONAL_PRIORITY = 3

	// Additive operators: + -
	PLUS_PRIORITY = 4

	// Multiplicative operators: * /
	MUL_PRIORITY = 5

	// Unary/Prefix operators: ! -
	PREFIX_PRIORITY = 6

	// Call operator: '(' following an expression
	CALL_PRIORITY = 7
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Parameters:
//
//	token - The token to get precedence for
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter
//	binding). Tokens without operator meaning sit at LOWEST_PRIORITY.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Relational and boolean: < > <= >= && || ^
	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP,
		lexer.AND_OP, lexer.OR_OP, lexer.XOR_OP:
		return RELATIONAL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Unary: !
	case lexer.NOT_OP:
		return PREFIX_PRIORITY

	// Call operator
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	default:
		return LOWEST_PRIORITY // Not an operator token
	}
}

// binaryParseFunction is a function type for parsing binary expressions.
// Binary expressions have a left operand, an operator, and a right
// operand.
//
// Parameters:
//
//	ExpressionNode - The already-parsed left operand
//
// Returns:
//
//	ExpressionNode - The complete binary expression node
//
// Example: For "a + b", when parsing "+", the left operand "a" is passed
// in, and the function parses "b" and returns the complete "a + b"
// expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing unary/prefix
// expressions and literals that begin an expression.
//
// Returns:
//
//	ExpressionNode - The parsed expression node
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a unary parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
//
// This allows one parsing function to handle multiple related token
// types. For example, parseUnaryExpression handles both ! and -.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
