package tree

import "fmt"

// Type is the value type of a typed subtree. The zero value means the
// checker has not visited the node yet.
type Type int

const (
	TypeUnset Type = iota
	TypeNone       // the node has no value type
	TypeInt
	TypeIntPtr
)

func (t Type) String() string {
	switch t {
	case TypeUnset:
		return "unset"
	case TypeNone:
		return "none"
	case TypeInt:
		return "int"
	case TypeIntPtr:
		return "int*"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Node is one derivation step. Terminal nodes have Prod == Token, a Kind
// naming the token and a Lexeme. Non-terminal nodes have exactly
// len(Prod.RHS()) children.
type Node struct {
	Prod     Production
	Kind     string // token kind, or the rule's left-hand symbol
	Lexeme   string
	Children []*Node

	// Type is written once by the type checker.
	Type Type
}

// NewToken returns a terminal node.
func NewToken(kind, lexeme string) *Node {
	return &Node{Prod: Token, Kind: kind, Lexeme: lexeme}
}

// NewRule returns a non-terminal node derived by p. It panics if the
// children do not match the rule's right-hand side.
func NewRule(p Production, children ...*Node) *Node {
	rhs := p.RHS()
	if p == Token || len(rhs) != len(children) {
		panic(fmt.Sprintf("rule %q expects %d children, got %d", p, len(rhs), len(children)))
	}
	for i, child := range children {
		if child.Kind != rhs[i] {
			panic(fmt.Sprintf("rule %q: child %d is %s, want %s", p, i, child.Kind, rhs[i]))
		}
	}
	return &Node{Prod: p, Kind: p.LHS(), Children: children}
}

func (n *Node) IsToken() bool {
	return n.Prod == Token
}

// Walk visits n and its descendants in pre-order, left to right. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

func (n *Node) String() string {
	if n.IsToken() {
		return n.Kind + " " + n.Lexeme
	}
	return n.Prod.String()
}
