package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/strager/wlp4sema/sema"
	"github.com/strager/wlp4sema/tree"
)

// checkProgram reads one derivation tree from r and analyzes it. Progress
// lines go to verbose when it is non-nil.
func checkProgram(r io.Reader, verbose io.Writer) (*sema.Result, error) {
	root, err := tree.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}

	if verbose != nil {
		nodes := 0
		tree.Walk(root, func(*tree.Node) bool {
			nodes++
			return true
		})
		fmt.Fprintf(verbose, "read %d nodes\n", nodes)
	}

	result, err := sema.Analyze(root)
	if err != nil {
		return nil, err
	}

	if verbose != nil {
		fmt.Fprintf(verbose, "declared %d procedures\n", len(result.Symbols.Procedures))
		for _, p := range result.Symbols.Procedures {
			fmt.Fprintf(verbose, "  %s%s: %d variables\n", p.Name, p.Signature, len(p.Variables))
		}
		fmt.Fprintf(verbose, "inferred %d types\n", result.Inferences)
	}
	return result, nil
}

// openInput opens name for reading, with "" and "-" meaning stdin.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// diagnostic formats err as the single line reported to the user.
func diagnostic(err error) string {
	var semaErr *sema.Error
	if errors.As(err, &semaErr) {
		return semaErr.Error()
	}
	return "error: " + err.Error()
}

func main() {
	os.Exit(newCLI(os.Stdin, os.Stdout, os.Stderr).run(os.Args[1:]))
}
