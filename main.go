package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

type cli struct {
	Expr    []string `arg:"" optional:"" help:"Expressions to evaluate. Without any, lines are read from stdin."`
	Prompt  string   `default:"> " help:"Prompt shown when stdin is a terminal."`
	Format  string   `default:"%g" help:"Format verb for results."`
	AST     bool     `name:"ast" help:"Print the parenthesized tree before each result."`
	Debug   bool     `help:"Log tokens and trees to stderr."`
	NoColor bool     `help:"Disable colored error output."`
}

// Validate is called by kong after parsing flags.
func (args *cli) Validate() error {
	return checkFormat(args.Format)
}

// checkFormat makes sure format consumes exactly one float64.
func checkFormat(format string) error {
	if out := fmt.Sprintf(format, 1.5); strings.Contains(out, "%!") {
		return fmt.Errorf("invalid --format %q: must hold exactly one number verb, got %q", format, out)
	}
	return nil
}

type calculator struct {
	format  string
	showAST bool

	log      *logrus.Logger
	errColor *color.Color

	stdout io.Writer
	stderr io.Writer
}

// tokens lexes line up to EOF or the first error, for debug logging.
func tokens(line string) []lexer.Token {
	var toks []lexer.Token
	lex := lexer.New(line)
	for {
		tok, err := lex.NextToken()
		toks = append(toks, tok)
		if err != nil || tok.Type == lexer.TokEOF {
			return toks
		}
	}
}

// evalLine runs one expression through a fresh pipeline and reports the
// outcome. Failures are printed, never returned.
func (c *calculator) evalLine(line string) bool {
	entry := c.log.WithField("input", line)
	if c.log.IsLevelEnabled(logrus.DebugLevel) {
		entry.Debugf("tokens: %s", pretty.Sprint(tokens(line)))
	}

	tree, err := parser.Parse(lexer.New(line))
	if err == nil {
		entry.WithField("ast", tree.Dump()).Debug("parsed")
		if c.showAST {
			fmt.Fprintln(c.stdout, tree.Dump())
		}
		var result float64
		if result, err = evaluator.Evaluate(tree); err == nil {
			fmt.Fprintln(c.stdout, fmt.Sprintf(c.format, result))
			return true
		}
	}

	entry.WithError(err).Debug("evaluation failed")
	c.errColor.Fprintf(c.stderr, "gocalc: %s\n", err)
	return false
}

// loop evaluates each non-blank line of in.
func (c *calculator) loop(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.stdout, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.evalLine(line)
	}
	if prompt != "" {
		fmt.Fprintln(c.stdout)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return nil
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("gocalc"),
		kong.Description("Evaluate arithmetic expressions with + - * / and parentheses."),
		kong.UsageOnError(),
	)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if args.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	errColor := color.New(color.FgRed)
	if args.NoColor {
		errColor.DisableColor()
	}

	c := &calculator{
		format:   args.Format,
		showAST:  args.AST,
		log:      logger,
		errColor: errColor,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	// Expression errors are reported but never change the exit status.
	if len(args.Expr) > 0 {
		for _, expr := range args.Expr {
			c.evalLine(expr)
		}
		return
	}

	prompt := ""
	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = args.Prompt
	}
	kctx.FatalIfErrorf(c.loop(os.Stdin, prompt))
}
