/*
File    : magnet/main/main_test.go
*/
package main

import (
	"strings"
	"testing"

	"github.com/magnet-lang/magnet/parser"
)

// TestMain_PrintingVisitor renders a few programs and checks the outline
func TestMain_PrintingVisitor(t *testing.T) {

	// binary expression with operator precedence
	root := parser.NewParser(`1 + 2 * 3`).Parse()
	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	out := visitor.String()
	if !strings.Contains(out, "Binary Node [+] ((1 + (2 * 3)))") {
		t.Errorf("missing outer binary node in:\n%s", out)
	}
	if !strings.Contains(out, "Integer Node [1] (1)") {
		t.Errorf("missing integer leaf in:\n%s", out)
	}

	// declaration with a function literal
	root = parser.NewParser(`let add = function (a, b) { return a + b; }`).Parse()
	visitor = &PrintingVisitor{}
	root.Accept(visitor)
	out = visitor.String()
	if !strings.Contains(out, "Declarative Statement Node [let add]") {
		t.Errorf("missing declaration in:\n%s", out)
	}
	if !strings.Contains(out, "Function Node [] (a, b)") {
		t.Errorf("missing function node in:\n%s", out)
	}
	if !strings.Contains(out, "Return Statement Node (return (a + b))") {
		t.Errorf("missing return node in:\n%s", out)
	}

	// conditional with both branches
	root = parser.NewParser(`if (x < y) { x } else { y }`).Parse()
	visitor = &PrintingVisitor{}
	root.Accept(visitor)
	out = visitor.String()
	if !strings.Contains(out, "If Node ((x < y))") {
		t.Errorf("missing if node in:\n%s", out)
	}
	if strings.Count(out, "Block Statement Node") != 2 {
		t.Errorf("expected both branch blocks in:\n%s", out)
	}
}
