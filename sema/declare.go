package sema

import "github.com/strager/wlp4sema/tree"

// DeclaredType returns the type written in a dcl node: "int" when its type
// child derives the single token INT, "int*" otherwise.
func DeclaredType(dcl *tree.Node) tree.Type {
	if len(dcl.Children[0].Children) == 1 {
		return tree.TypeInt
	}
	return tree.TypeIntPtr
}

// procedureSignature collects the parameter types of a procedure or main
// node in order.
func procedureSignature(n *tree.Node) Signature {
	if n.Prod == tree.Main {
		return Signature{DeclaredType(n.Children[3]), DeclaredType(n.Children[5])}
	}

	sig := Signature{}
	params := n.Children[3]
	if params.Prod == tree.ParamsEmpty {
		return sig
	}
	list := params.Children[0]
	for {
		sig = append(sig, DeclaredType(list.Children[0]))
		if list.Prod != tree.ParamlistMore {
			return sig
		}
		list = list.Children[2]
	}
}

// Declare fills st from a single pre-order walk over root. Because the
// grammar puts every declaration of a procedure before its statements,
// each use is checked after the declarations it may refer to.
func Declare(root *tree.Node, st *SymbolTable) error {
	return declare(root, st, nil)
}

func declare(n *tree.Node, st *SymbolTable, scope *Scope) error {
	switch n.Prod {
	case tree.Procedure, tree.Main:
		// Children[1] is ID or WAIN.
		s, err := st.DeclareProcedure(n.Children[1].Lexeme, procedureSignature(n))
		if err != nil {
			return err
		}
		scope = s

	case tree.Dcl:
		if err := scope.DeclareVariable(n.Children[1].Lexeme, DeclaredType(n)); err != nil {
			return err
		}

	case tree.FactorID, tree.LvalueID:
		name := n.Children[0].Lexeme
		if !scope.VariableVisible(name) {
			return errorf(ErrUndeclaredVariable, "variable '%s' used before declaration in '%s'", name, scope.Procedure().Name)
		}

	case tree.FactorCall, tree.FactorCallArgs:
		name := n.Children[0].Lexeme
		if !scope.ProcedureVisible(name) {
			return errorf(ErrUndeclaredProcedure, "procedure '%s' is not visible in '%s'", name, scope.Procedure().Name)
		}
	}

	for _, child := range n.Children {
		if err := declare(child, st, scope); err != nil {
			return err
		}
	}
	return nil
}
