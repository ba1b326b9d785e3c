package sema

import "github.com/strager/wlp4sema/tree"

// Checker infers a type for every typed subtree and enforces the typing
// rules. It trusts that Declare already succeeded on the same table.
type Checker struct {
	table *SymbolTable

	// inferences counts memo misses in TypeOf.
	inferences int
}

func NewChecker(st *SymbolTable) *Checker {
	return &Checker{table: st}
}

// Inferences returns how many nodes TypeOf has computed a type for.
func (c *Checker) Inferences() int {
	return c.inferences
}

// TypeOf returns the type of n, computing and caching it on first use.
// Identifiers are resolved in scope.
func (c *Checker) TypeOf(scope *Scope, n *tree.Node) (tree.Type, error) {
	if n.Type != tree.TypeUnset {
		return n.Type, nil
	}
	c.inferences++
	t, err := c.infer(scope, n)
	if err != nil {
		return tree.TypeUnset, err
	}
	n.Type = t
	return t, nil
}

func (c *Checker) infer(scope *Scope, n *tree.Node) (tree.Type, error) {
	switch n.Prod {
	case tree.Token:
		switch n.Kind {
		case "ID":
			return scope.VariableType(n.Lexeme)
		case "NUM":
			return tree.TypeInt, nil
		case "NULL":
			return tree.TypeIntPtr, nil
		}
		return tree.TypeNone, nil

	case tree.Dcl:
		return DeclaredType(n), nil

	case tree.FactorID, tree.FactorNUM, tree.FactorNULL, tree.LvalueID,
		tree.TermFactor, tree.ExprTerm:
		return c.TypeOf(scope, n.Children[0])

	case tree.FactorParen, tree.LvalueParen:
		return c.TypeOf(scope, n.Children[1])

	case tree.FactorAmp:
		if err := c.expect(scope, n.Children[1], tree.TypeInt, "operator & expects an int operand"); err != nil {
			return tree.TypeUnset, err
		}
		return tree.TypeIntPtr, nil

	case tree.FactorStar, tree.LvalueStar:
		if err := c.expect(scope, n.Children[1], tree.TypeIntPtr, "operator * expects an int* operand"); err != nil {
			return tree.TypeUnset, err
		}
		return tree.TypeInt, nil

	case tree.FactorNew:
		if err := c.expect(scope, n.Children[3], tree.TypeInt, "new int[] expects an int size"); err != nil {
			return tree.TypeUnset, err
		}
		return tree.TypeIntPtr, nil

	case tree.FactorCall, tree.FactorCallArgs:
		// Every procedure returns int.
		return tree.TypeInt, nil

	case tree.TermStar, tree.TermSlash, tree.TermPct:
		op := n.Children[1].Lexeme
		if err := c.expect(scope, n.Children[0], tree.TypeInt, "operator %s expects int operands", op); err != nil {
			return tree.TypeUnset, err
		}
		if err := c.expect(scope, n.Children[2], tree.TypeInt, "operator %s expects int operands", op); err != nil {
			return tree.TypeUnset, err
		}
		return tree.TypeInt, nil

	case tree.ExprPlus, tree.ExprMinus:
		left, err := c.TypeOf(scope, n.Children[0])
		if err != nil {
			return tree.TypeUnset, err
		}
		right, err := c.TypeOf(scope, n.Children[2])
		if err != nil {
			return tree.TypeUnset, err
		}
		if n.Prod == tree.ExprPlus {
			return additionType(left, right)
		}
		return subtractionType(left, right)
	}

	return tree.TypeNone, nil
}

func additionType(left, right tree.Type) (tree.Type, error) {
	switch {
	case left == tree.TypeInt && right == tree.TypeInt:
		return tree.TypeInt, nil
	case left == tree.TypeIntPtr && right == tree.TypeInt,
		left == tree.TypeInt && right == tree.TypeIntPtr:
		return tree.TypeIntPtr, nil
	}
	return tree.TypeUnset, errorf(ErrTypeMismatch, "invalid operands to +: %s and %s", left, right)
}

func subtractionType(left, right tree.Type) (tree.Type, error) {
	switch {
	case left == tree.TypeInt && right == tree.TypeInt,
		left == tree.TypeIntPtr && right == tree.TypeIntPtr:
		return tree.TypeInt, nil
	case left == tree.TypeIntPtr && right == tree.TypeInt:
		return tree.TypeIntPtr, nil
	}
	return tree.TypeUnset, errorf(ErrTypeMismatch, "invalid operands to -: %s and %s", left, right)
}

// expect fails with ErrTypeMismatch unless n has type want.
func (c *Checker) expect(scope *Scope, n *tree.Node, want tree.Type, format string, args ...any) error {
	got, err := c.TypeOf(scope, n)
	if err != nil {
		return err
	}
	if got != want {
		return errorf(ErrTypeMismatch, format+" (got %s)", append(args, got)...)
	}
	return nil
}

// same fails with ErrTypeMismatch unless a and b have the same type.
func (c *Checker) same(scope *Scope, a, b *tree.Node, what string) error {
	left, err := c.TypeOf(scope, a)
	if err != nil {
		return err
	}
	right, err := c.TypeOf(scope, b)
	if err != nil {
		return err
	}
	if left != right {
		return errorf(ErrTypeMismatch, "mismatched types in %s: %s and %s", what, left, right)
	}
	return nil
}

// Check walks root in pre-order and applies every statement-level rule,
// typing each expression and lvalue along the way.
func (c *Checker) Check(root *tree.Node) error {
	return c.check(nil, root)
}

func (c *Checker) check(scope *Scope, n *tree.Node) error {
	switch n.Prod {
	case tree.Procedure:
		s, err := c.table.Enter(n.Children[1].Lexeme)
		if err != nil {
			return err
		}
		scope = s
		if err := c.expect(scope, n.Children[9], tree.TypeInt, "procedure '%s' must return int", s.Procedure().Name); err != nil {
			return err
		}

	case tree.Main:
		s, err := c.table.Enter(n.Children[1].Lexeme)
		if err != nil {
			return err
		}
		scope = s
		if err := c.expect(scope, n.Children[5], tree.TypeInt, "second parameter of wain must be int"); err != nil {
			return err
		}
		if err := c.expect(scope, n.Children[11], tree.TypeInt, "wain must return int"); err != nil {
			return err
		}

	case tree.StatementAssign:
		if err := c.same(scope, n.Children[0], n.Children[2], "assignment"); err != nil {
			return err
		}

	case tree.StatementPrintln:
		if err := c.expect(scope, n.Children[2], tree.TypeInt, "println expects an int argument"); err != nil {
			return err
		}

	case tree.StatementDelete:
		if err := c.expect(scope, n.Children[3], tree.TypeIntPtr, "delete[] expects an int* argument"); err != nil {
			return err
		}

	case tree.TestEQ, tree.TestNE, tree.TestLT, tree.TestLE, tree.TestGE, tree.TestGT:
		if err := c.same(scope, n.Children[0], n.Children[2], "comparison"); err != nil {
			return err
		}

	case tree.DclsNum:
		if err := c.expect(scope, n.Children[1], tree.TypeInt, "'%s' initialized with a number must be int", dclName(n.Children[1])); err != nil {
			return err
		}

	case tree.DclsNull:
		if err := c.expect(scope, n.Children[1], tree.TypeIntPtr, "'%s' initialized with NULL must be int*", dclName(n.Children[1])); err != nil {
			return err
		}

	case tree.FactorCall, tree.FactorCallArgs:
		if err := c.checkCall(scope, n); err != nil {
			return err
		}
	}

	switch n.Kind {
	case "expr", "term", "factor", "lvalue":
		if _, err := c.TypeOf(scope, n); err != nil {
			return err
		}
	}

	for _, child := range n.Children {
		if err := c.check(scope, child); err != nil {
			return err
		}
	}
	return nil
}

// checkCall compares the argument types of a call against the callee's
// signature.
func (c *Checker) checkCall(scope *Scope, call *tree.Node) error {
	name := call.Children[0].Lexeme
	sig, err := c.table.ProcedureSignature(name)
	if err != nil {
		return err
	}

	args := Signature{}
	if call.Prod == tree.FactorCallArgs {
		list := call.Children[2]
		for {
			t, err := c.TypeOf(scope, list.Children[0])
			if err != nil {
				return err
			}
			args = append(args, t)
			if list.Prod != tree.ArglistMore {
				break
			}
			list = list.Children[2]
		}
	}

	if !args.Equal(sig) {
		return errorf(ErrSignatureMismatch, "procedure '%s' called with %s but declared with %s", name, args, sig)
	}
	return nil
}

func dclName(dcl *tree.Node) string {
	return dcl.Children[1].Lexeme
}
