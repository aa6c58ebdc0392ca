/*
File    : magnet/repl/repl.go

Package repl implements the Read-Eval-Print Loop for the magnet
interpreter. The REPL provides an interactive environment where users
can:
- Enter magnet code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

Accepted lines accumulate into the session: every prompt re-parses and
re-evaluates the joined session source against a fresh environment, so
earlier bindings reappear through replay. Lines that fail to parse or
that evaluate to an error are dropped from the session again.
*/
package repl

import (
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/magnet-lang/magnet/eval"
	"github.com/magnet-lang/magnet/objects"
	"github.com/magnet-lang/magnet/parser"
	"github.com/magnet-lang/magnet/scope"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates the configuration of an interactive session plus the
// session itself: the accepted source lines.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	Prompt  string // Command prompt shown to the user

	scanned []string // Accepted source lines of this session
}

// NewRepl creates and initializes a new REPL instance.
//
// Parameters:
//
//	banner  - Logo to display at startup
//	version - Version string of the interpreter
//	line    - Separator line for formatting
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, line string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions:
// the logo, the version, and the session meta-commands.
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	yellowColor.Fprintln(writer, "magnet "+r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'clean()' to clear the screen, 'show()' to list the session, 'exit()' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates an evaluator instance
// 4. Processes user input until exit() or EOF
//
// Parameters:
//
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	// This provides command history, cursor movement, etc.
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Create the evaluator used for the whole session
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	// Main REPL loop - continues until user exits or input ends
	for {
		// Read a line of input; blocks until the user presses Enter
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Meta-commands are handled before the pipeline sees the input
		if line == "exit()" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == "clean()" {
			r.cleanConsole(writer)
			continue
		}
		if line == "show()" {
			cyanColor.Fprintf(writer, "%q\n", r.scanned)
			continue
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Accept the line into the session; it is dropped again if it
		// fails to parse or evaluates to an error
		r.scanned = append(r.scanned, line)

		r.executeWithRecovery(writer, evaluator)
	}
}

// executeWithRecovery runs the accumulated session source through the
// pipeline with panic recovery. Unlike file execution, the REPL survives
// every failure:
//   - Panics (e.g. division by zero) are displayed as runtime errors
//   - Parse errors are displayed one per line
//   - Error results are displayed via their inspect string
//
// In each failure case the newest line is dropped from the session so
// the replayed source stays evaluable.
func (r *Repl) executeWithRecovery(writer io.Writer, evaluator *eval.Evaluator) {
	// Recover from any panics during parsing or evaluation; display the
	// failure and keep the loop alive
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
			r.dropNewest()
		}
	}()

	// Replay the whole session so earlier bindings stay visible
	source := strings.Join(r.scanned, " ")
	par := parser.NewParser(source)
	root := par.Parse()

	// The parser collects errors instead of panicking
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", err)
		}
		r.dropNewest()
		return
	}

	// Each prompt evaluates against a fresh environment
	result := evaluator.Eval(root, scope.NewScope(nil))

	if result != nil {
		if result.GetType() == objects.ERROR_TYPE {
			redColor.Fprintf(writer, "Inspect: %s\n", result.Inspect())
			r.dropNewest()
		} else {
			yellowColor.Fprintf(writer, "Inspect: %s\n", result.Inspect())
		}
	} else {
		cyanColor.Fprintf(writer, "%s\n", "Not implemented yet!")
	}
}

// dropNewest removes the newest accepted line from the session.
func (r *Repl) dropNewest() {
	if len(r.scanned) > 0 {
		r.scanned = r.scanned[:len(r.scanned)-1]
	}
}

// cleanConsole clears the terminal: cls on Windows, clear elsewhere.
func (r *Repl) cleanConsole(writer io.Writer) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = writer
	cmd.Run()
}
