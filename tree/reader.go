package tree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrUnknownRule   = errors.New("unknown production")
	ErrMissingLexeme = errors.New("token without lexeme")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrTrailingInput = errors.New("trailing input after tree")
	ErrEmptyInput    = errors.New("empty input")
)

type reader struct {
	scanner *bufio.Scanner
	line    int
}

// Read reads one derivation tree in pre-order form: one node per line,
// either "KIND lexeme" for a token or "lhs rhs..." for a rule, with a
// rule's children following it in order.
func Read(r io.Reader) (*Node, error) {
	rd := &reader{scanner: bufio.NewScanner(r)}
	fields, ok, err := rd.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}
	root, err := rd.readNode(fields)
	if err != nil {
		return nil, err
	}

	if _, ok, err := rd.next(); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("line %d: %w", rd.line, ErrTrailingInput)
	}
	return root, nil
}

// next returns the fields of the next non-blank line.
func (rd *reader) next() ([]string, bool, error) {
	for rd.scanner.Scan() {
		rd.line++
		fields := strings.Fields(rd.scanner.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err := rd.scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("line %d: %w", rd.line, err)
	}
	return nil, false, nil
}

func (rd *reader) readNode(fields []string) (*Node, error) {
	if Terminals[fields[0]] {
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: %s", rd.line, ErrMissingLexeme, strings.Join(fields, " "))
		}
		return NewToken(fields[0], fields[1]), nil
	}

	prod, ok := LookupProduction(fields[0], fields[1:])
	if !ok {
		return nil, fmt.Errorf("line %d: %w: %s", rd.line, ErrUnknownRule, strings.Join(fields, " "))
	}

	node := &Node{Prod: prod, Kind: prod.LHS()}
	for i, want := range prod.RHS() {
		childFields, ok, err := rd.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("line %d: %w: %s needs child %d (%s)", rd.line, ErrUnexpectedEOF, prod, i+1, want)
		}
		child, err := rd.readNode(childFields)
		if err != nil {
			return nil, err
		}
		if child.Kind != want {
			return nil, fmt.Errorf("line %d: %w: %s where %s expected", rd.line, ErrUnknownRule, child, want)
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// Write prints n in the form accepted by Read.
func Write(w io.Writer, n *Node) error {
	var err error
	Walk(n, func(n *Node) bool {
		if err == nil {
			_, err = fmt.Fprintln(w, n.String())
		}
		return err == nil
	})
	return err
}
