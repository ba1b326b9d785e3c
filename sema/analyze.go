// Package sema performs semantic analysis of WLP4 derivation trees: it
// builds the procedure symbol table, checks that every name is declared
// exactly once before use, and enforces the typing rules for int and int*.
//
// Analysis stops at the first violation.
package sema

import "github.com/strager/wlp4sema/tree"

// Result is everything a later stage needs from a successful analysis.
// Every typed node of the analyzed tree also carries its Type.
type Result struct {
	Symbols *SymbolTable

	// Inferences counts the node types computed by the type pass.
	Inferences int
}

// Analyze runs the declaration pass and then the type pass over root. On
// failure the returned error wraps one of the Err* sentinels and neither
// the table nor the tree's types should be used.
func Analyze(root *tree.Node) (*Result, error) {
	st := NewSymbolTable()
	if err := Declare(root, st); err != nil {
		return nil, err
	}
	c := NewChecker(st)
	if err := c.Check(root); err != nil {
		return nil, err
	}
	return &Result{Symbols: st, Inferences: c.Inferences()}, nil
}
