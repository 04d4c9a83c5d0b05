package compiler_errors

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type CompilerError interface {
	GetMessage() string
	GetLine() int
	GetWhere() string
}

// ErrorHandler collects diagnostics for a single run. Lexer and parser
// report through it; the caller checks HadError before trusting output.
type ErrorHandler interface {
	Report(line int, where string, message string)
	AddError(err CompilerError)
	HadError() bool
	Errors() []CompilerError
	// Reset clears collected errors for callers that reuse one handler
	// across runs.
	Reset()
}

type ReportedError struct {
	Line    int
	Where   string
	Message string
}

func (e *ReportedError) GetMessage() string { return e.Message }
func (e *ReportedError) GetLine() int       { return e.Line }
func (e *ReportedError) GetWhere() string   { return e.Where }

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer

	lineColor *color.Color
}

func NewErrorHandler(outputWriter io.Writer) *CompilerErrorHandler {
	lineColor := color.New(color.FgRed, color.Bold)
	lineColor.DisableColor()

	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,

		lineColor: lineColor,
	}
}

// WithColor highlights line numbers when enabled and the handler's writer
// is a terminal. NO_COLOR in the environment turns it off.
func (eh *CompilerErrorHandler) WithColor(enabled bool) *CompilerErrorHandler {
	if enabled && os.Getenv("NO_COLOR") == "" && isTerminal(eh.writer) {
		eh.lineColor.EnableColor()
	} else {
		eh.lineColor.DisableColor()
	}
	return eh
}

func (eh *CompilerErrorHandler) Report(line int, where string, message string) {
	eh.AddError(&ReportedError{
		Line:    line,
		Where:   where,
		Message: message,
	})
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)

	if eh.writer == nil {
		return
	}
	fmt.Fprintf(eh.writer, "%s Error%s: %s\n",
		eh.lineColor.Sprintf("[line %d]", err.GetLine()),
		err.GetWhere(),
		err.GetMessage())
}

func (eh *CompilerErrorHandler) HadError() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

func (eh *CompilerErrorHandler) Reset() {
	eh.errors = make([]CompilerError, 0)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
