/*
File    : magnet/parser/parser.go
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the magnet language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (binary, unary, literals, identifiers, conditionals)
- Statements (declarations, returns, expression statements)
- Function literals and calls
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection (doesn't panic on first error)
- Support for let, var, and const declarations
- Statements that fail to produce a recoverable node are dropped while
  their diagnostics stay on the error list
*/
package parser

import (
	"fmt"

	"github.com/magnet-lang/magnet/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse magnet source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       *lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token  // Current token being processed
	NextToken lexer.Token  // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The magnet source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The registrations establish the grammar of the magnet language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// Identifiers: variable names, function names.
	// The word forms of the boolean operators are lexed as keywords but
	// carry no operator semantics; in expression position they behave
	// like plain identifiers.
	par.registerUnaryFuncs(par.parseIdentifierExpression,
		lexer.IDENTIFIER_ID, lexer.AND_KEY, lexer.OR_KEY, lexer.XOR_KEY)

	// Integer literals: 42
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)

	// String literals: "hello", 'world'
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Unary operators: -, !
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.MINUS_OP, lexer.NOT_OP)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Conditionals. The else kind points at the same parse function, so a
	// stray else reports a missing '(' rather than a missing parser.
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY, lexer.ELSE_KEY)

	// Function literals: function name(params) { body }
	par.registerUnaryFuncs(par.parseFunctionExpression, lexer.FUNC_KEY)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison and boolean operators: ==, !=, <, >, <=, >=, &&, ||, ^
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP,
		lexer.AND_OP, lexer.OR_OP, lexer.XOR_OP)

	// '=' is registered but absent from the precedence table, so the
	// expression loop never hands control to it. A stray '=' surfaces as
	// a missing-parse-function diagnostic instead.
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.ASSIGN_OP)

	// '(' after an expression is the call operator
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a closing parenthesis
// next, and if it's there, move past it."
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches, false otherwise
//
// This function doesn't advance the parser, it only checks.
// Use expectAdvance() if you want to check and advance in one step.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("Expected token: %s but the token inserted is: %s",
			expected, par.NextToken)
		par.addError(msg)
		return false
	}
	return true
}

// addError adds an error message to the parser's error list.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing to determine if the parse was
// successful.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
// This allows the caller to display all errors to the user.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse is the main parsing function that converts source code into an
// AST. It repeatedly parses statements until reaching the end of the
// token stream, building up a RootNode that contains all the parsed
// statements. Statements that fail to parse are dropped; their
// diagnostics remain on the error list.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse statements until we reach the end of file
	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	return root
}
