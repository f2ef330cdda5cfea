package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cthi/json-parse/internal/ast"
	"github.com/cthi/json-parse/internal/config"
	"github.com/cthi/json-parse/internal/errors"
	"github.com/cthi/json-parse/internal/lexer"
	"github.com/cthi/json-parse/internal/parser"
	"github.com/cthi/json-parse/internal/printer"
	"github.com/cthi/json-parse/internal/token"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Format  string `help:"Output format: tree or debug. Overrides the config file." short:"f"`
	Config  string `help:"Path to a config file. If not specified, searches for .jsonparse.yml upwards." short:"c" type:"path"`
	Strict  bool   `help:"Reject integers with leading zeros." short:"s"`
	Debug   bool   `help:"Enable debug logging." short:"d"`
	Version bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("jsonparse"),
		kong.Description("A tool to parse a JSON document into an order-preserving parse tree"),
		kong.UsageOnError(),
	)

	if _, err := kongParser.Parse(os.Args[1:]); err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonparse version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonparse --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: an explicit -c path, a
// discovered config file, or defaults, with CLI flags layered on top.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	} else {
		cfg = config.NewConfig()
	}

	if CLI.Format != "" {
		cfg.Output.Format = CLI.Format
	}
	if CLI.Strict {
		cfg.Lexer.RejectLeadingZeros = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid options", err)
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Read the input text
	input, err := readInput()
	if err != nil {
		return err
	}

	// 2. Tokenize
	lex := lexer.NewWithOptions(input, lexer.Options{
		RejectLeadingZeros: ctx.Config.Lexer.RejectLeadingZeros,
	})
	toks, err := lex.Tokenize()
	if err != nil {
		return err
	}
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "tokenized %d tokens\n", len(toks))
	}

	// 3. Parse the whitespace-free token sequence as a top-level object
	obj, err := parser.ParseTokens(token.StripWhitespace(toks))
	if err != nil {
		return err
	}

	// 4. Render and write the tree
	return writeOutput(render(ctx.Config, obj))
}

// render produces the configured textual form of the tree
func render(cfg *config.Config, obj ast.Object) string {
	p := printer.NewPrinterWithIndent(cfg.Output.Indent)
	if cfg.Output.Format == config.FormatDebug {
		return p.Debug(obj)
	}
	return p.Tree(obj)
}

// readInput reads the JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", CLI.Input), err)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", CLI.Input),
				errors.ErrFileEmpty,
			)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive, nothing was piped
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

// writeOutput writes the rendered tree to file or stdout
func writeOutput(rendered string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(rendered), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Parse tree written to %s\n", CLI.Output)
		return nil
	}

	if _, err := fmt.Print(rendered); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
