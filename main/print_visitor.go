/*
File    : magnet/main/print_visitor.go
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/magnet-lang/magnet/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a NodeVisitor that renders the syntax tree as an
// indented outline, one node per line. It backs the --ast flag of the
// run command.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Root Node (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIntegerLiteralExpressionNode visits an integer literal
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Integer Node [%s] (%d)\n", node.Literal(), node.Value))
}

// VisitBooleanLiteralExpressionNode visits a boolean literal
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Boolean Node [%s] (%t)\n", node.Literal(), node.Value))
}

// VisitStringLiteralExpressionNode visits a string literal
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("String Node [%s]\n", node.Value))
}

// VisitIdentifierExpressionNode visits an identifier
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Identifier Node [%s]\n", node.Name))
}

// VisitUnaryExpressionNode visits a prefix operation
func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Unary Node [%s] (%s)\n", node.Operator, node.Literal()))
	p.Indent += INDENT_SIZE
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBinaryExpressionNode visits an infix operation
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Binary Node [%s] (%s)\n", node.Operator, node.Literal()))
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitIfExpressionNode visits a conditional
func (p *PrintingVisitor) VisitIfExpressionNode(node parser.IfExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("If Node (%s)\n", node.Condition.Literal()))
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.Consequence.Accept(p)
	if node.Alternative != nil {
		node.Alternative.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitFunctionExpressionNode visits a function literal
func (p *PrintingVisitor) VisitFunctionExpressionNode(node parser.FunctionExpressionNode) {
	p.indent()
	name := ""
	if node.Name != nil {
		name = node.Name.Name
	}
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Name
	}
	p.Buf.WriteString(fmt.Sprintf("Function Node [%s] (%s)\n", name, params))
	p.Indent += INDENT_SIZE
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits a function application
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Call Node (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	node.Func.Accept(p)
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitDeclarativeStatementNode visits a variable declaration
func (p *PrintingVisitor) VisitDeclarativeStatementNode(node parser.DeclarativeStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Declarative Statement Node [%s %s]\n", node.TokenLiteral(), node.Name.Name))
	p.Indent += INDENT_SIZE
	node.Value.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits a return statement
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Return Statement Node (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	node.Value.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBlockStatementNode visits a block
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString("Block Statement Node\n")
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// String returns the rendered tree
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
