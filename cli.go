package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (c *cli) showUsage() {
	fmt.Fprintf(c.stderr, `wlp4sema - semantic analyzer for WLP4 derivation trees

Usage:
    wlp4sema <command> [arguments]

Commands:
    check [file]      Check a derivation tree (stdin if no file or -)
    symbols [file]    Check a tree and print its procedure table
    help              Show this help message

Examples:
    wlp4sema check program.wlp4i
    wlp4sema check -v - < program.wlp4i
    wlp4sema check -symbols yaml -o table.yaml program.wlp4i
    wlp4sema symbols program.wlp4i

Use "wlp4sema <command> -h" for more information about a command.
`)
}

func (c *cli) run(args []string) int {
	if len(args) < 1 {
		c.showUsage()
		return 1
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "check":
		return c.checkCommand(args)
	case "symbols":
		return c.symbolsCommand(args)
	case "help", "-h", "--help":
		c.showUsage()
		return 0
	default:
		fmt.Fprintf(c.stderr, "Unknown command: %s\n\n", command)
		c.showUsage()
		return 1
	}
}

func (c *cli) checkCommand(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	verbose := fs.Bool("v", false, "Show verbose analysis details")
	symbols := fs.String("symbols", "none", "Print the procedure table: none, sexpr or yaml")
	output := fs.String("o", "", "Write the procedure table to this file instead of stdout")
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, "Usage: wlp4sema check [-v] [-symbols none|sexpr|yaml] [-o file] [file|-]\n")
		fmt.Fprintf(c.stderr, "Check a WLP4 derivation tree\n\n")
		fmt.Fprintf(c.stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	format, err := parseSymbolsFormat(*symbols)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		fs.Usage()
		return 2
	}
	if *output != "" && format == symbolsNone {
		fmt.Fprintf(c.stderr, "Error: -o needs -symbols sexpr or -symbols yaml\n")
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(c.stderr, "Error: expected at most one file argument\n")
		fs.Usage()
		return 2
	}

	return c.check(fs.Arg(0), format, *output, *verbose)
}

func (c *cli) symbolsCommand(args []string) int {
	fs := flag.NewFlagSet("symbols", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, "Usage: wlp4sema symbols [file|-]\n")
		fmt.Fprintf(c.stderr, "Check a WLP4 derivation tree and print its procedure table\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(c.stderr, "Error: expected at most one file argument\n")
		fs.Usage()
		return 2
	}

	return c.check(fs.Arg(0), symbolsSexpr, "", false)
}

func (c *cli) check(input string, format symbolsFormat, output string, verbose bool) int {
	in, err := openInput(input, c.stdin)
	if err != nil {
		fmt.Fprintln(c.stderr, diagnostic(err))
		return 1
	}
	defer in.Close()

	var progress io.Writer
	if verbose {
		progress = c.stdout
	}

	result, err := checkProgram(in, progress)
	if err != nil {
		fmt.Fprintln(c.stderr, diagnostic(err))
		return 1
	}

	out := c.stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintln(c.stderr, diagnostic(err))
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := writeSymbols(out, result.Symbols, format); err != nil {
		fmt.Fprintln(c.stderr, diagnostic(err))
		return 1
	}
	return 0
}
