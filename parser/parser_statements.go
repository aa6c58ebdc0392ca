/*
File    : magnet/parser/parser_statements.go
*/
package parser

import "github.com/magnet-lang/magnet/lexer"

// parseStatement dispatches on the current token to the appropriate
// statement parser:
//   - let/var/const -> declaration
//   - return        -> return statement
//   - anything else -> expression statement
//
// Returns:
//
//	The parsed statement, or nil when the statement could not be
//	recovered (diagnostics are on the error list).
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY, lexer.VAR_KEY, lexer.CONST_KEY:
		return par.parseDeclarativeStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseDeclarativeStatement parses a variable declaration:
//
//	let <name> = <expression>;
//
// var and const are accepted as aliases of let. The trailing semicolon
// is optional.
func (par *Parser) parseDeclarativeStatement() StatementNode {
	stmt := &DeclarativeStatementNode{Token: par.CurrToken}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	stmt.Name = par.parseIdentifier()

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}
	par.advance()

	stmt.Value = par.parseExpression(LOWEST_PRIORITY)
	if stmt.Value == nil {
		return nil
	}

	// Optional trailing semicolon
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}
	return stmt
}

// parseReturnStatement parses a return statement:
//
//	return <expression>;
//
// The trailing semicolon is optional.
func (par *Parser) parseReturnStatement() StatementNode {
	stmt := &ReturnStatementNode{Token: par.CurrToken}
	par.advance()

	stmt.Value = par.parseExpression(LOWEST_PRIORITY)
	if stmt.Value == nil {
		return nil
	}

	// Optional trailing semicolon
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression in statement
// position. Expression nodes satisfy the statement interface, so the
// expression is appended to the program directly.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(LOWEST_PRIORITY)
	if expr == nil {
		return nil
	}

	// Optional trailing semicolon
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}
	return expr
}

// parseBlock parses a braced statement sequence. The current token is
// '{' on entry; parsing stops at the matching '}' or at end of input.
// Unrecoverable statements are dropped.
func (par *Parser) parseBlock() *BlockStatementNode {
	block := &BlockStatementNode{
		Token:      par.CurrToken,
		Statements: make([]StatementNode, 0),
	}
	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}
	return block
}
