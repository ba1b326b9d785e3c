package sema

import (
	"strconv"

	"github.com/strager/wlp4sema/tree"
)

// Builders for derivation trees. Expression helpers accept any of expr,
// term or factor nodes and insert the unit rules (and parentheses) needed
// to fit the grammar.

var lexemes = map[string]string{
	"BOF": "BOF", "EOF": "EOF", "INT": "int", "WAIN": "wain", "LPAREN": "(", "RPAREN": ")",
	"LBRACE": "{", "RBRACE": "}", "RETURN": "return", "SEMI": ";", "COMMA": ",",
	"BECOMES": "=", "STAR": "*", "PLUS": "+", "MINUS": "-", "SLASH": "/", "PCT": "%",
	"AMP": "&", "NEW": "new", "LBRACK": "[", "RBRACK": "]", "NULL": "NULL",
	"PRINTLN": "println", "DELETE": "delete", "IF": "if", "ELSE": "else", "WHILE": "while",
	"EQ": "==", "NE": "!=", "LT": "<", "LE": "<=", "GE": ">=", "GT": ">",
}

func tok(kind string) *tree.Node {
	return tree.NewToken(kind, lexemes[kind])
}

func rule(p tree.Production, children ...*tree.Node) *tree.Node {
	return tree.NewRule(p, children...)
}

func intDcl(name string) *tree.Node {
	return rule(tree.Dcl, rule(tree.TypeINT, tok("INT")), tree.NewToken("ID", name))
}

func ptrDcl(name string) *tree.Node {
	return rule(tree.Dcl, rule(tree.TypeINTSTAR, tok("INT"), tok("STAR")), tree.NewToken("ID", name))
}

func asFactor(n *tree.Node) *tree.Node {
	if n.Kind == "factor" {
		return n
	}
	return rule(tree.FactorParen, tok("LPAREN"), asExpr(n), tok("RPAREN"))
}

func asTerm(n *tree.Node) *tree.Node {
	if n.Kind == "term" {
		return n
	}
	return rule(tree.TermFactor, asFactor(n))
}

func asExpr(n *tree.Node) *tree.Node {
	if n.Kind == "expr" {
		return n
	}
	return rule(tree.ExprTerm, asTerm(n))
}

func id(name string) *tree.Node {
	return rule(tree.FactorID, tree.NewToken("ID", name))
}

func num(v int) *tree.Node {
	return rule(tree.FactorNUM, tree.NewToken("NUM", strconv.Itoa(v)))
}

func null() *tree.Node {
	return rule(tree.FactorNULL, tok("NULL"))
}

func plus(a, b *tree.Node) *tree.Node {
	return rule(tree.ExprPlus, asExpr(a), tok("PLUS"), asTerm(b))
}

func minus(a, b *tree.Node) *tree.Node {
	return rule(tree.ExprMinus, asExpr(a), tok("MINUS"), asTerm(b))
}

func times(a, b *tree.Node) *tree.Node {
	return rule(tree.TermStar, asTerm(a), tok("STAR"), asFactor(b))
}

func divide(a, b *tree.Node) *tree.Node {
	return rule(tree.TermSlash, asTerm(a), tok("SLASH"), asFactor(b))
}

func mod(a, b *tree.Node) *tree.Node {
	return rule(tree.TermPct, asTerm(a), tok("PCT"), asFactor(b))
}

func addrOf(lvalue *tree.Node) *tree.Node {
	return rule(tree.FactorAmp, tok("AMP"), lvalue)
}

func deref(n *tree.Node) *tree.Node {
	return rule(tree.FactorStar, tok("STAR"), asFactor(n))
}

func newInt(size *tree.Node) *tree.Node {
	return rule(tree.FactorNew, tok("NEW"), tok("INT"), tok("LBRACK"), asExpr(size), tok("RBRACK"))
}

func call(name string, args ...*tree.Node) *tree.Node {
	if len(args) == 0 {
		return rule(tree.FactorCall, tree.NewToken("ID", name), tok("LPAREN"), tok("RPAREN"))
	}
	list := rule(tree.ArglistOne, asExpr(args[len(args)-1]))
	for i := len(args) - 2; i >= 0; i-- {
		list = rule(tree.ArglistMore, asExpr(args[i]), tok("COMMA"), list)
	}
	return rule(tree.FactorCallArgs, tree.NewToken("ID", name), tok("LPAREN"), list, tok("RPAREN"))
}

func lvID(name string) *tree.Node {
	return rule(tree.LvalueID, tree.NewToken("ID", name))
}

func lvDeref(n *tree.Node) *tree.Node {
	return rule(tree.LvalueStar, tok("STAR"), asFactor(n))
}

func lvParen(lvalue *tree.Node) *tree.Node {
	return rule(tree.LvalueParen, tok("LPAREN"), lvalue, tok("RPAREN"))
}

func assign(lvalue, value *tree.Node) *tree.Node {
	return rule(tree.StatementAssign, lvalue, tok("BECOMES"), asExpr(value), tok("SEMI"))
}

func printlnStmt(value *tree.Node) *tree.Node {
	return rule(tree.StatementPrintln, tok("PRINTLN"), tok("LPAREN"), asExpr(value), tok("RPAREN"), tok("SEMI"))
}

func deleteStmt(value *tree.Node) *tree.Node {
	return rule(tree.StatementDelete, tok("DELETE"), tok("LBRACK"), tok("RBRACK"), asExpr(value), tok("SEMI"))
}

var comparisonTokens = map[tree.Production]string{
	tree.TestEQ: "EQ", tree.TestNE: "NE", tree.TestLT: "LT",
	tree.TestLE: "LE", tree.TestGE: "GE", tree.TestGT: "GT",
}

func compare(a *tree.Node, p tree.Production, b *tree.Node) *tree.Node {
	return rule(p, asExpr(a), tok(comparisonTokens[p]), asExpr(b))
}

func whileStmt(test, body *tree.Node) *tree.Node {
	return rule(tree.StatementWhile, tok("WHILE"), tok("LPAREN"), test, tok("RPAREN"), tok("LBRACE"), body, tok("RBRACE"))
}

func ifStmt(test, then, otherwise *tree.Node) *tree.Node {
	return rule(tree.StatementIf, tok("IF"), tok("LPAREN"), test, tok("RPAREN"),
		tok("LBRACE"), then, tok("RBRACE"), tok("ELSE"), tok("LBRACE"), otherwise, tok("RBRACE"))
}

func stmts(list ...*tree.Node) *tree.Node {
	s := rule(tree.StatementsEmpty)
	for _, stmt := range list {
		s = rule(tree.StatementsMore, s, stmt)
	}
	return s
}

type initializer struct {
	dcl   *tree.Node
	value *tree.Node
}

func initNum(dcl *tree.Node, v int) initializer {
	return initializer{dcl: dcl, value: tree.NewToken("NUM", strconv.Itoa(v))}
}

func initNull(dcl *tree.Node) initializer {
	return initializer{dcl: dcl, value: tok("NULL")}
}

func dcls(inits ...initializer) *tree.Node {
	d := rule(tree.DclsEmpty)
	for _, in := range inits {
		p := tree.DclsNum
		if in.value.Kind == "NULL" {
			p = tree.DclsNull
		}
		d = rule(p, d, in.dcl, tok("BECOMES"), in.value, tok("SEMI"))
	}
	return d
}

func params(list ...*tree.Node) *tree.Node {
	if len(list) == 0 {
		return rule(tree.ParamsEmpty)
	}
	pl := rule(tree.ParamlistOne, list[len(list)-1])
	for i := len(list) - 2; i >= 0; i-- {
		pl = rule(tree.ParamlistMore, list[i], tok("COMMA"), pl)
	}
	return rule(tree.ParamsList, pl)
}

func procedure(name string, ps, ds, body, ret *tree.Node) *tree.Node {
	return rule(tree.Procedure, tok("INT"), tree.NewToken("ID", name), tok("LPAREN"), ps, tok("RPAREN"),
		tok("LBRACE"), ds, body, tok("RETURN"), asExpr(ret), tok("SEMI"), tok("RBRACE"))
}

func wain(a, b, ds, body, ret *tree.Node) *tree.Node {
	return rule(tree.Main, tok("INT"), tok("WAIN"), tok("LPAREN"), a, tok("COMMA"), b, tok("RPAREN"),
		tok("LBRACE"), ds, body, tok("RETURN"), asExpr(ret), tok("SEMI"), tok("RBRACE"))
}

func program(procs ...*tree.Node) *tree.Node {
	ps := rule(tree.ProceduresMain, procs[len(procs)-1])
	for i := len(procs) - 2; i >= 0; i-- {
		ps = rule(tree.ProceduresMore, procs[i], ps)
	}
	return rule(tree.Start, tok("BOF"), ps, tok("EOF"))
}
