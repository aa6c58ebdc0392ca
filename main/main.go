/*
File    : magnet/main/main.go

Package main is the entry point for the magnet interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute magnet source files from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process magnet
code.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/magnet-lang/magnet/eval"
	"github.com/magnet-lang/magnet/objects"
	"github.com/magnet-lang/magnet/parser"
	"github.com/magnet-lang/magnet/repl"
	"github.com/magnet-lang/magnet/scope"
)

// VERSION represents the current version of the magnet interpreter
var VERSION = "v1.0.0"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = ">> "

// BANNER is the logo displayed when starting the REPL
var BANNER = `                                   _
 _ __ ___   __ _  __ _ _ __   ___| |_
| '_ ` + "`" + ` _ \ / _` + "`" + ` |/ _` + "`" + ` | '_ \ / _ \ __|
| | | | | | (_| | (_| | | | |  __/ |_
|_| |_| |_|\__,_|\__, |_| |_|\___|\__|
                 |___/
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// showAST makes `run` print the parsed syntax tree instead of
// evaluating the program
var showAST bool

// rootCmd starts the interactive REPL when magnet is invoked with no
// subcommand.
var rootCmd = &cobra.Command{
	Use:     "magnet",
	Short:   "The magnet programming language interpreter",
	Long:    "magnet is a small expression-oriented scripting language with first-class functions and lexical closures.",
	Version: VERSION,
	Run: func(cmd *cobra.Command, args []string) {
		repler := repl.NewRepl(BANNER, VERSION, LINE, PROMPT)
		repler.Start(os.Stdout)
	},
}

// runCmd executes a magnet source file.
var runCmd = &cobra.Command{
	Use:   "run <path-to-file>",
	Short: "Execute a magnet source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFile(args[0])
	},
}

func init() {
	runCmd.Flags().BoolVar(&showAST, "ast", false,
		"print the parsed syntax tree instead of evaluating")
	rootCmd.AddCommand(runCmd)
}

// main parses the command line and dispatches to the REPL or the file
// runner.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFile reads and executes a magnet source file:
// 1. Read the file from disk
// 2. Parse it, reporting parse errors one per line
// 3. Evaluate the program (or dump the AST with --ast)
//
// File read errors and failed programs exit with code 1.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery handles parsing and evaluation with panic
// recovery:
// 1. Sets up panic recovery to catch runtime failures
// 2. Parses the source code into an AST
// 3. Checks for parsing errors
// 4. Dumps the AST (--ast) or evaluates it
// 5. Displays results or errors
//
// Error Handling:
//   - Panics: Caught by defer/recover, displayed as runtime errors
//   - Parse errors: Collected and displayed, then exit
//   - Error results: Displayed in red, then exit
//   - Success: Non-null result displayed in yellow
func executeFileWithRecovery(source string) {
	// Recover from any panics during parsing or evaluation to keep
	// failures user-readable
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	root := par.Parse()

	// The parser collects errors instead of panicking, allowing multiple
	// errors to be reported
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		}
		os.Exit(1)
	}

	if showAST {
		visitor := &PrintingVisitor{}
		root.Accept(visitor)
		os.Stdout.WriteString(visitor.String())
		return
	}

	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(root, scope.NewScope(nil))

	if result != nil {
		if result.GetType() == objects.ERROR_TYPE {
			redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
			os.Exit(1)
		}
		if result.GetType() != objects.NULL_TYPE {
			yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
		}
	}
}
