package tree

import "strings"

// Production identifies one rule of the WLP4 grammar. Terminal nodes use
// Token; every other node carries the rule that derived it.
type Production int

const (
	Token Production = iota

	Start          // start → BOF procedures EOF
	ProceduresMore // procedures → procedure procedures
	ProceduresMain // procedures → main
	Procedure      // procedure → INT ID LPAREN params RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
	Main           // main → INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
	ParamsEmpty    // params →
	ParamsList     // params → paramlist
	ParamlistOne   // paramlist → dcl
	ParamlistMore  // paramlist → dcl COMMA paramlist
	TypeINT        // type → INT
	TypeINTSTAR    // type → INT STAR
	DclsEmpty      // dcls →
	DclsNum        // dcls → dcls dcl BECOMES NUM SEMI
	DclsNull       // dcls → dcls dcl BECOMES NULL SEMI
	Dcl            // dcl → type ID

	StatementsEmpty  // statements →
	StatementsMore   // statements → statements statement
	StatementAssign  // statement → lvalue BECOMES expr SEMI
	StatementIf      // statement → IF LPAREN test RPAREN LBRACE statements RBRACE ELSE LBRACE statements RBRACE
	StatementWhile   // statement → WHILE LPAREN test RPAREN LBRACE statements RBRACE
	StatementPrintln // statement → PRINTLN LPAREN expr RPAREN SEMI
	StatementDelete  // statement → DELETE LBRACK RBRACK expr SEMI

	TestEQ
	TestNE
	TestLT
	TestLE
	TestGE
	TestGT

	ExprTerm  // expr → term
	ExprPlus  // expr → expr PLUS term
	ExprMinus // expr → expr MINUS term
	TermFactor
	TermStar
	TermSlash
	TermPct

	FactorID
	FactorNUM
	FactorNULL
	FactorParen    // factor → LPAREN expr RPAREN
	FactorAmp      // factor → AMP lvalue
	FactorStar     // factor → STAR factor
	FactorNew      // factor → NEW INT LBRACK expr RBRACK
	FactorCall     // factor → ID LPAREN RPAREN
	FactorCallArgs // factor → ID LPAREN arglist RPAREN
	ArglistOne     // arglist → expr
	ArglistMore    // arglist → expr COMMA arglist

	LvalueID
	LvalueStar  // lvalue → STAR factor
	LvalueParen // lvalue → LPAREN lvalue RPAREN

	numProductions
)

type rule struct {
	lhs string
	rhs []string
}

var rules = [numProductions]rule{
	Start:          {"start", []string{"BOF", "procedures", "EOF"}},
	ProceduresMore: {"procedures", []string{"procedure", "procedures"}},
	ProceduresMain: {"procedures", []string{"main"}},
	Procedure: {"procedure", []string{"INT", "ID", "LPAREN", "params", "RPAREN", "LBRACE",
		"dcls", "statements", "RETURN", "expr", "SEMI", "RBRACE"}},
	Main: {"main", []string{"INT", "WAIN", "LPAREN", "dcl", "COMMA", "dcl", "RPAREN", "LBRACE",
		"dcls", "statements", "RETURN", "expr", "SEMI", "RBRACE"}},
	ParamsEmpty:   {"params", nil},
	ParamsList:    {"params", []string{"paramlist"}},
	ParamlistOne:  {"paramlist", []string{"dcl"}},
	ParamlistMore: {"paramlist", []string{"dcl", "COMMA", "paramlist"}},
	TypeINT:       {"type", []string{"INT"}},
	TypeINTSTAR:   {"type", []string{"INT", "STAR"}},
	DclsEmpty:     {"dcls", nil},
	DclsNum:       {"dcls", []string{"dcls", "dcl", "BECOMES", "NUM", "SEMI"}},
	DclsNull:      {"dcls", []string{"dcls", "dcl", "BECOMES", "NULL", "SEMI"}},
	Dcl:           {"dcl", []string{"type", "ID"}},

	StatementsEmpty: {"statements", nil},
	StatementsMore:  {"statements", []string{"statements", "statement"}},
	StatementAssign: {"statement", []string{"lvalue", "BECOMES", "expr", "SEMI"}},
	StatementIf: {"statement", []string{"IF", "LPAREN", "test", "RPAREN", "LBRACE", "statements",
		"RBRACE", "ELSE", "LBRACE", "statements", "RBRACE"}},
	StatementWhile:   {"statement", []string{"WHILE", "LPAREN", "test", "RPAREN", "LBRACE", "statements", "RBRACE"}},
	StatementPrintln: {"statement", []string{"PRINTLN", "LPAREN", "expr", "RPAREN", "SEMI"}},
	StatementDelete:  {"statement", []string{"DELETE", "LBRACK", "RBRACK", "expr", "SEMI"}},

	TestEQ: {"test", []string{"expr", "EQ", "expr"}},
	TestNE: {"test", []string{"expr", "NE", "expr"}},
	TestLT: {"test", []string{"expr", "LT", "expr"}},
	TestLE: {"test", []string{"expr", "LE", "expr"}},
	TestGE: {"test", []string{"expr", "GE", "expr"}},
	TestGT: {"test", []string{"expr", "GT", "expr"}},

	ExprTerm:   {"expr", []string{"term"}},
	ExprPlus:   {"expr", []string{"expr", "PLUS", "term"}},
	ExprMinus:  {"expr", []string{"expr", "MINUS", "term"}},
	TermFactor: {"term", []string{"factor"}},
	TermStar:   {"term", []string{"term", "STAR", "factor"}},
	TermSlash:  {"term", []string{"term", "SLASH", "factor"}},
	TermPct:    {"term", []string{"term", "PCT", "factor"}},

	FactorID:       {"factor", []string{"ID"}},
	FactorNUM:      {"factor", []string{"NUM"}},
	FactorNULL:     {"factor", []string{"NULL"}},
	FactorParen:    {"factor", []string{"LPAREN", "expr", "RPAREN"}},
	FactorAmp:      {"factor", []string{"AMP", "lvalue"}},
	FactorStar:     {"factor", []string{"STAR", "factor"}},
	FactorNew:      {"factor", []string{"NEW", "INT", "LBRACK", "expr", "RBRACK"}},
	FactorCall:     {"factor", []string{"ID", "LPAREN", "RPAREN"}},
	FactorCallArgs: {"factor", []string{"ID", "LPAREN", "arglist", "RPAREN"}},
	ArglistOne:     {"arglist", []string{"expr"}},
	ArglistMore:    {"arglist", []string{"expr", "COMMA", "arglist"}},

	LvalueID:    {"lvalue", []string{"ID"}},
	LvalueStar:  {"lvalue", []string{"STAR", "factor"}},
	LvalueParen: {"lvalue", []string{"LPAREN", "lvalue", "RPAREN"}},
}

// Terminals lists every token kind the scanner can produce.
var Terminals = map[string]bool{
	"BOF": true, "EOF": true, "ID": true, "NUM": true, "LPAREN": true, "RPAREN": true,
	"LBRACE": true, "RBRACE": true, "RETURN": true, "IF": true, "ELSE": true, "WHILE": true,
	"PRINTLN": true, "WAIN": true, "BECOMES": true, "INT": true, "EQ": true, "NE": true,
	"LT": true, "GT": true, "LE": true, "GE": true, "PLUS": true, "MINUS": true, "STAR": true,
	"SLASH": true, "PCT": true, "COMMA": true, "SEMI": true, "NEW": true, "DELETE": true,
	"LBRACK": true, "RBRACK": true, "AMP": true, "NULL": true,
}

var byText = func() map[string]Production {
	m := make(map[string]Production, numProductions)
	for p := Start; p < numProductions; p++ {
		m[p.String()] = p
	}
	return m
}()

// LookupProduction resolves the textual form of a rule.
func LookupProduction(lhs string, rhs []string) (Production, bool) {
	p, ok := byText[ruleText(lhs, rhs)]
	return p, ok
}

// LHS returns the rule's left-hand symbol.
func (p Production) LHS() string {
	if p <= Token || p >= numProductions {
		return ""
	}
	return rules[p].lhs
}

// RHS returns the rule's right-hand symbols. The slice must not be modified.
func (p Production) RHS() []string {
	if p <= Token || p >= numProductions {
		return nil
	}
	return rules[p].rhs
}

func (p Production) String() string {
	if p == Token {
		return "token"
	}
	if p < Token || p >= numProductions {
		return "unknown"
	}
	return ruleText(rules[p].lhs, rules[p].rhs)
}

func ruleText(lhs string, rhs []string) string {
	if len(rhs) == 0 {
		return lhs
	}
	return lhs + " " + strings.Join(rhs, " ")
}
