package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"golang.org/x/term"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/config"
	"github.com/kievzenit/ylox/internal/lexer"
	"github.com/kievzenit/ylox/internal/parser"
)

var ErrHadDiagnostics = errors.New("source contains errors")

const exitCommand = "exit"

// Result is the outcome of scanning and parsing one source text. Expr is
// nil whenever Diagnostics is non-empty.
type Result struct {
	Tokens      []lexer.Token
	Expr        ast.Expr
	Diagnostics []compiler_errors.CompilerError
}

func (r *Result) HadError() bool {
	return len(r.Diagnostics) > 0
}

type Runner struct {
	cfg *config.Config

	out    io.Writer
	errOut io.Writer
}

func NewRunner(cfg *config.Config, out io.Writer, errOut io.Writer) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Runner{
		cfg: cfg,

		out:    out,
		errOut: errOut,
	}
}

// Run scans and parses source with its own error state, reporting
// diagnostics to the runner's error writer as they occur.
func (r *Runner) Run(source string) *Result {
	eh := compiler_errors.NewErrorHandler(r.errOut).WithColor(r.cfg.Color)

	l := lexer.NewLexer([]byte(source), eh)
	tokens := l.Tokenize()

	p := parser.NewParser(lexer.NewTokenScanner(tokens), eh)
	expr, err := p.Parse()

	result := &Result{
		Tokens:      tokens,
		Diagnostics: eh.Errors(),
	}
	if err == nil && !eh.HadError() {
		result.Expr = expr
	}

	return result
}

func (r *Runner) RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	result := r.Run(string(source))
	if result.HadError() {
		return ErrHadDiagnostics
	}

	r.Print(result)
	return nil
}

// RunPrompt runs every line read from in as its own source text until
// EOF, an "exit" line, or ctx is done. Errors on one line do not affect
// the next. Lines are read on a separate goroutine so a cancelled ctx
// returns even while the read is blocked.
func (r *Runner) RunPrompt(ctx context.Context, in io.Reader) error {
	interactive := isTerminal(in)
	lines := make(chan string)
	readErr := make(chan error, 1)
	next := make(chan struct{})
	done := make(chan struct{})

	go readLines(in, lines, readErr, next, done)
	defer close(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if interactive {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return errors.Wrap(err, "failed to read prompt input")
		case line = <-lines:
		}

		if strings.TrimSpace(line) == exitCommand {
			return nil
		}

		result := r.Run(line)
		if !result.HadError() {
			r.Print(result)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case next <- struct{}{}:
		}
	}
}

// readLines sends one line at a time and waits on next before reading the
// following one, so nothing is consumed from in ahead of the prompt. A nil
// error on readErr means EOF. A read blocked in Scan ends when in does.
func readLines(
	in io.Reader,
	lines chan<- string,
	readErr chan<- error,
	next <-chan struct{},
	done <-chan struct{},
) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}

		select {
		case <-next:
		case <-done:
			return
		}
	}

	select {
	case readErr <- scanner.Err():
	case <-done:
	}
}

// Print writes the debug output enabled in the config for a successful run.
func (r *Runner) Print(result *Result) {
	if r.cfg.PrintTokens {
		for _, token := range result.Tokens {
			fmt.Fprintln(r.out, token.String())
		}
	}

	if result.Expr == nil {
		return
	}

	if r.cfg.PrintAst {
		fmt.Fprintln(r.out, ast.Print(result.Expr))
	}

	if r.cfg.DumpAst {
		fmt.Fprintln(r.out, dumpOptions.Sdump(result.Expr))
	}
}

var dumpOptions = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
