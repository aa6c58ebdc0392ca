/*
File    : magnet/lexer/token.go
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the magnet language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the language,
// such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the magnet language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "ILLEGAL"

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition operator
	MINUS_OP TokenType = "-" // Subtraction operator
	MUL_OP   TokenType = "*" // Multiplication operator
	DIV_OP   TokenType = "/" // Division operator

	// Logical/Comparison Operators
	GT_OP     TokenType = ">"  // Greater than
	LT_OP     TokenType = "<"  // Less than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LE_OP     TokenType = "<=" // Less than or equal to
	EQ_OP     TokenType = "==" // Equality comparison
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	NOT_OP    TokenType = "!"  // Logical NOT operator

	// Boolean Operators
	AND_OP TokenType = "&&" // Logical AND
	OR_OP  TokenType = "||" // Logical OR
	XOR_OP TokenType = "^"  // Logical XOR

	// Single-character forms of & and |.
	// Reserved for bitwise intent; the parser never dispatches on them.
	BIT_AND_OP TokenType = "&" // Intersection
	BIT_OR_OP  TokenType = "|" // Union

	// Keywords
	// Language keywords for declarations and control flow
	LET_KEY    TokenType = "let"      // Variable declaration
	VAR_KEY    TokenType = "var"      // Variable declaration (alias of let)
	CONST_KEY  TokenType = "const"    // Variable declaration (alias of let)
	FUNC_KEY   TokenType = "function" // Function literal keyword
	IF_KEY     TokenType = "if"       // Conditional if keyword
	ELSE_KEY   TokenType = "else"     // Conditional else keyword
	RETURN_KEY TokenType = "return"   // Return statement keyword
	TRUE_KEY   TokenType = "true"     // Boolean true literal
	FALSE_KEY  TokenType = "false"    // Boolean false literal

	// Word forms of the boolean operators. The lexer recognizes them as
	// keywords, but the parser treats them like plain identifiers in
	// expression position.
	AND_KEY TokenType = "and"
	OR_KEY  TokenType = "or"
	XOR_KEY TokenType = "xor"

	// Identifiers and Literals
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined identifier
	INT_LIT       TokenType = "IntLiteral"    // Integer literal (e.g. 42)
	STRING_LIT    TokenType = "StringLiteral" // String literal (e.g. "hello")

	// Delimiters
	COMMA_DELIM     TokenType = "," // Comma - separates parameters and call arguments
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator

	// Structural Tokens
	LEFT_PAREN  TokenType = "(" // Left parenthesis - grouping, calls
	RIGHT_PAREN TokenType = ")" // Right parenthesis
	LEFT_BRACE  TokenType = "{" // Left brace - code blocks
	RIGHT_BRACE TokenType = "}" // Right brace
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers (user-defined names).
//
// Usage:
//
//	When the lexer encounters an identifier-like token, it checks this map
//	to determine if it's a keyword or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"let":      LET_KEY,    // Variable declaration
	"var":      VAR_KEY,    // Variable declaration
	"const":    CONST_KEY,  // Variable declaration
	"function": FUNC_KEY,   // Function literal
	"if":       IF_KEY,     // Conditional if
	"else":     ELSE_KEY,   // Conditional else
	"return":   RETURN_KEY, // Return from function
	"true":     TRUE_KEY,   // Boolean true
	"false":    FALSE_KEY,  // Boolean false
	"and":      AND_KEY,    // Word form of &&
	"or":       OR_KEY,     // Word form of ||
	"xor":      XOR_KEY,    // Word form of ^
}

// Token represents a single lexical token in magnet source code.
// It contains the token's type and its literal string representation
// from the source.
//
// Fields:
//   - Type: The category of the token (e.g., operator, keyword, literal)
//   - Literal: The actual string from the source code that this token represents
//
// Example:
//
//	For the source code "let x = 123":
//	Token{Type: LET_KEY, Literal: "let"}
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
}

// NewToken creates a new Token with the specified type and literal value.
//
// Parameters:
//   - tokenType: The type of token to create
//   - literal: The string representation of the token from source code
//
// Returns:
//   - Token: A new token with the specified type and literal
//
// Example:
//
//	token := NewToken(PLUS_OP, "+")
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// String returns a human-readable representation of the token.
// The format shows both the classification and the actual text, and is
// the rendering embedded in parser diagnostics.
//
// Example output:
//
//	For Token{Type: PLUS_OP, Literal: "+"}:
//	"Type: +, Literal: +"
func (tok Token) String() string {
	return fmt.Sprintf("Type: %s, Literal: %s", tok.Type, tok.Literal)
}

// lookupIdent determines the token type for an identifier string.
// It checks if the identifier is a reserved keyword by looking it up in
// KEYWORDS_MAP. If found, it returns the corresponding keyword token type;
// otherwise, it returns IDENTIFIER_ID to indicate a user-defined identifier.
//
// Parameters:
//   - ident: The identifier string to look up
//
// Returns:
//   - TokenType: The keyword token type if ident is a keyword, otherwise IDENTIFIER_ID
//
// Example:
//
//	lookupIdent("if")    -> IF_KEY
//	lookupIdent("myVar") -> IDENTIFIER_ID
func lookupIdent(ident string) TokenType {
	// Check if the identifier is a keyword
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	// Not a keyword, so it's a user-defined identifier
	return IDENTIFIER_ID
}
