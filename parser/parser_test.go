/*
File    : magnet/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse_OneNumberExpression(t *testing.T) {

	src := `12`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "12", exp.Literal())
	assert.Equal(t, int64(12), exp.Value)
}

func TestParser_Parse_AddExpression(t *testing.T) {

	src := `12 + 13`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	exp, can := root.Statements[0].(*BinaryExpressionNode)
	assert.True(t, can)
	left, can := exp.Left.(*IntegerLiteralExpressionNode)
	assert.True(t, can)
	right, can := exp.Right.(*IntegerLiteralExpressionNode)
	assert.True(t, can)

	assert.Equal(t, int64(12), left.Value)
	assert.Equal(t, int64(13), right.Value)
	assert.Equal(t, "+", exp.Operator)
	assert.Equal(t, "(12 + 13)", exp.Literal())
}

// TestParser_Parse_Precedence checks operator precedence through the
// parenthesized rendering of the parsed tree. Rendering a tree built
// from an already fully parenthesized source reproduces the source.
func TestParser_Parse_Precedence(t *testing.T) {

	tests := []struct {
		Input    string
		Expected string
	}{
		{`1 + 2 * 3`, `(1 + (2 * 3))`},
		{`(1 + 2) * 3`, `((1 + 2) * 3)`},
		{`((1 + 2) * 3)`, `((1 + 2) * 3)`},
		{`50 / 2 * 3 - 5`, `(((50 / 2) * 3) - 5)`},
		{`a + b + c`, `((a + b) + c)`},
		{`a + b - c`, `((a + b) - c)`},
		{`a * b / c`, `((a * b) / c)`},
		{`a + b * c + d / e - f`, `(((a + (b * c)) + (d / e)) - f)`},
		{`-a * b`, `((- a) * b)`},
		{`!true == false`, `((! true) == false)`},
		{`--5`, `(- (- 5))`},
		{`1 < 2 == true`, `((1 < 2) == true)`},
		{`3 > 5 == false`, `((3 > 5) == false)`},
		{`1 <= 2 && 3 >= 2`, `(((1 <= 2) && 3) >= 2)`},
		{`a || b ^ c`, `((a || b) ^ c)`},
		{`2 / (5 + 10)`, `(2 / (5 + 10))`},
		{`-(5 + 5)`, `(- (5 + 5))`},
		{`add(1, 2 * 3, 4 + 5)`, `add(1, (2 * 3), (4 + 5))`},
		{`a + add(b * c) + d`, `((a + add((b * c))) + d)`},
		{`add(a, b)(c)`, `add(a, b)(c)`},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s, errors: %v", test.Input, par.GetErrors())
		assert.Equal(t, test.Expected, root.Literal(), "input: %s", test.Input)
	}
}

func TestParser_Parse_DeclarativeStatements(t *testing.T) {

	src := `let x = 5;
	var y = 10
	const z = x + 1;`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 3, len(root.Statements))

	expectedNames := []string{"x", "y", "z"}
	expectedKeywords := []string{"let", "var", "const"}
	for i, stmt := range root.Statements {
		decl, can := stmt.(*DeclarativeStatementNode)
		assert.True(t, can)
		// every successful declaration carries its name
		assert.NotNil(t, decl.Name)
		assert.Equal(t, expectedNames[i], decl.Name.Name)
		assert.Equal(t, expectedKeywords[i], decl.TokenLiteral())
	}

	assert.Equal(t, "let x = 5;", root.Statements[0].Literal())
	assert.Equal(t, "const z = (x + 1);", root.Statements[2].Literal())
}

func TestParser_Parse_ReturnStatements(t *testing.T) {

	src := `return 5; return a + b;`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 2, len(root.Statements))

	first, can := root.Statements[0].(*ReturnStatementNode)
	assert.True(t, can)
	assert.Equal(t, "return 5", first.Literal())

	second, can := root.Statements[1].(*ReturnStatementNode)
	assert.True(t, can)
	assert.Equal(t, "return (a + b)", second.Literal())
}

func TestParser_Parse_IfExpression(t *testing.T) {

	src := `if (x < y) { x } else { y }`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	node, can := root.Statements[0].(*IfExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "(x < y)", node.Condition.Literal())
	assert.NotNil(t, node.Consequence)
	assert.NotNil(t, node.Alternative)
	assert.Equal(t, "if (x < y) {x} else {y}", node.Literal())

	// The else branch is optional
	par = NewParser(`if (x) { 1 }`)
	root = par.Parse()
	assert.False(t, par.HasErrors())
	node, can = root.Statements[0].(*IfExpressionNode)
	assert.True(t, can)
	assert.Nil(t, node.Alternative)
	assert.Equal(t, "if x {1}", node.Literal())
}

func TestParser_Parse_FunctionExpression(t *testing.T) {

	src := `function (x, y) { return x + y; }`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	node, can := root.Statements[0].(*FunctionExpressionNode)
	assert.True(t, can)
	assert.Nil(t, node.Name)
	assert.Equal(t, 2, len(node.Params))
	assert.Equal(t, "x", node.Params[0].Name)
	assert.Equal(t, "y", node.Params[1].Name)
	assert.Equal(t, "function (x, y) {\n    return (x + y)\n}", node.Literal())
}

func TestParser_Parse_NamedFunctionExpression(t *testing.T) {

	src := `function add(a, b) { a + b }`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	node, can := root.Statements[0].(*FunctionExpressionNode)
	assert.True(t, can)
	assert.NotNil(t, node.Name)
	assert.Equal(t, "add", node.Name.Name)
	assert.Equal(t, "function add (a, b) {\n    (a + b)\n}", node.Literal())
}

func TestParser_Parse_FunctionParams(t *testing.T) {

	tests := []struct {
		Input          string
		ExpectedParams []string
	}{
		{`function () {}`, []string{}},
		{`function (x) {}`, []string{"x"}},
		{`function (x, y, z) {}`, []string{"x", "y", "z"}},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s", test.Input)

		node, can := root.Statements[0].(*FunctionExpressionNode)
		assert.True(t, can)
		assert.Equal(t, len(test.ExpectedParams), len(node.Params))
		for i, name := range test.ExpectedParams {
			assert.Equal(t, name, node.Params[i].Name)
		}
	}
}

func TestParser_Parse_CallExpression(t *testing.T) {

	src := `greet('David')`
	par := NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	node, can := root.Statements[0].(*CallExpressionNode)
	assert.True(t, can)
	callee, can := node.Func.(*IdentifierExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "greet", callee.Name)
	assert.Equal(t, 1, len(node.Args))
	assert.Equal(t, "greet(David)", node.Literal())

	// Empty argument list
	par = NewParser(`f()`)
	root = par.Parse()
	assert.False(t, par.HasErrors())
	node, can = root.Statements[0].(*CallExpressionNode)
	assert.True(t, can)
	assert.Equal(t, 0, len(node.Args))
}

func TestParser_Parse_StringLiteral(t *testing.T) {

	par := NewParser(`"hello world"`)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	node, can := root.Statements[0].(*StringLiteralExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "hello world", node.Value)
}

// TestParser_Parse_WordOperatorsAreIdentifiers pins the latent behavior
// of the and/or/xor keywords: the lexer knows them, but in expression
// position the parser treats them like identifiers.
func TestParser_Parse_WordOperatorsAreIdentifiers(t *testing.T) {

	for _, word := range []string{"and", "or", "xor"} {
		par := NewParser(word)
		root := par.Parse()
		assert.False(t, par.HasErrors(), "input: %s", word)
		assert.Equal(t, 1, len(root.Statements))

		node, can := root.Statements[0].(*IdentifierExpressionNode)
		assert.True(t, can)
		assert.Equal(t, word, node.Name)
	}
}

func TestParser_Parse_Errors(t *testing.T) {

	tests := []struct {
		Input         string
		ExpectedError string
	}{
		{`let = 5`, "Expected token: Identifier but the token inserted is: Type: =, Literal: ="},
		{`let x 5`, "Expected token: = but the token inserted is: Type: IntLiteral, Literal: 5"},
		{`+5`, "No function found to parse: +"},
		{`= x`, "No function found to parse: ="},
		{`}`, "No function found to parse: }"},
		{`9999999999999999999999`, "Is not an integer: Type: IntLiteral, Literal: 9999999999999999999999"},
		{`if x { 1 }`, "Expected token: ( but the token inserted is: Type: Identifier, Literal: x"},
		{`else`, "Expected token: ( but the token inserted is: Type: EOF, Literal: "},
		{`(1 + 2`, "Expected token: ) but the token inserted is: Type: EOF, Literal: "},
	}

	for _, test := range tests {
		par := NewParser(test.Input)
		par.Parse()
		assert.True(t, par.HasErrors(), "input: %s", test.Input)
		assert.Contains(t, par.GetErrors(), test.ExpectedError, "input: %s", test.Input)
	}
}

// TestParser_Parse_PartialPrograms verifies that statements that fail to
// parse are dropped while the rest of the program survives.
func TestParser_Parse_PartialPrograms(t *testing.T) {

	// The broken declaration is dropped; its right-hand side then parses
	// as a bare expression statement of its own
	par := NewParser(`let x = 5; let = 6; x`)
	root := par.Parse()
	assert.True(t, par.HasErrors())
	assert.NotNil(t, root)
	assert.Equal(t, 2, len(par.GetErrors()))
	assert.Equal(t, 3, len(root.Statements))
	assert.Equal(t, "let x = 5;", root.Statements[0].Literal())
	assert.Equal(t, "6", root.Statements[1].Literal())
	assert.Equal(t, "x", root.Statements[2].Literal())
}

// TestParser_Parse_OptionalSemicolon verifies that a trailing semicolon
// never changes the parse.
func TestParser_Parse_OptionalSemicolon(t *testing.T) {

	for _, src := range []string{`5`, `5;`} {
		par := NewParser(src)
		root := par.Parse()
		assert.False(t, par.HasErrors())
		assert.Equal(t, 1, len(root.Statements))
	}
}
