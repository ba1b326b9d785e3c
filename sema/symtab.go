package sema

import (
	"strings"

	"github.com/strager/wlp4sema/tree"
)

// Signature is the ordered list of a procedure's parameter types.
type Signature []tree.Type

func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Variable is a parameter or local of one procedure.
type Variable struct {
	Name string
	Type tree.Type
}

// ProcedureInfo is one entry of the procedure table. Variables holds
// parameters and locals in declaration order; the language has no nested
// scopes, so the list is flat.
type ProcedureInfo struct {
	Name      string
	Signature Signature
	Variables []Variable

	index map[string]int
}

// LookupVariable returns the declared type of name, or false if the
// procedure has no such variable.
func (p *ProcedureInfo) LookupVariable(name string) (tree.Type, bool) {
	i, ok := p.index[name]
	if !ok {
		return tree.TypeUnset, false
	}
	return p.Variables[i].Type, true
}

// SymbolTable maps procedure names to their signature and variables. It is
// append-only.
type SymbolTable struct {
	Procedures []*ProcedureInfo

	index map[string]*ProcedureInfo
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]*ProcedureInfo)}
}

// LookupProcedure returns nil if name was never declared.
func (st *SymbolTable) LookupProcedure(name string) *ProcedureInfo {
	return st.index[name]
}

// ProcedureSignature must only be called for a procedure that passed a
// visibility check.
func (st *SymbolTable) ProcedureSignature(name string) (Signature, error) {
	proc := st.index[name]
	if proc == nil {
		return nil, errorf(ErrUnknownSymbol, "procedure '%s' is not in the symbol table", name)
	}
	return proc.Signature, nil
}

// DeclareProcedure adds a procedure and returns the scope in which its
// parameters and locals are declared.
func (st *SymbolTable) DeclareProcedure(name string, sig Signature) (*Scope, error) {
	if _, exists := st.index[name]; exists {
		return nil, errorf(ErrDuplicateProcedure, "procedure '%s' declared more than once", name)
	}
	proc := &ProcedureInfo{
		Name:      name,
		Signature: sig,
		index:     make(map[string]int),
	}
	st.index[name] = proc
	st.Procedures = append(st.Procedures, proc)
	return &Scope{table: st, proc: proc}, nil
}

// Enter returns the scope of an already declared procedure.
func (st *SymbolTable) Enter(name string) (*Scope, error) {
	proc := st.index[name]
	if proc == nil {
		return nil, errorf(ErrUnknownSymbol, "procedure '%s' is not in the symbol table", name)
	}
	return &Scope{table: st, proc: proc}, nil
}

// Scope is the active procedure during a traversal. Lookups and variable
// declarations made through a Scope apply to that procedure only.
type Scope struct {
	table *SymbolTable
	proc  *ProcedureInfo
}

func (s *Scope) Procedure() *ProcedureInfo {
	return s.proc
}

func (s *Scope) DeclareVariable(name string, t tree.Type) error {
	if _, exists := s.proc.index[name]; exists {
		return errorf(ErrDuplicateVariable, "variable '%s' declared more than once in procedure '%s'", name, s.proc.Name)
	}
	s.proc.index[name] = len(s.proc.Variables)
	s.proc.Variables = append(s.proc.Variables, Variable{Name: name, Type: t})
	return nil
}

func (s *Scope) VariableVisible(name string) bool {
	_, ok := s.proc.index[name]
	return ok
}

// ProcedureVisible reports whether name can be called from this scope. A
// local variable with the same name hides the procedure.
func (s *Scope) ProcedureVisible(name string) bool {
	if s.table.index[name] == nil {
		return false
	}
	return !s.VariableVisible(name)
}

// VariableType must only be called for a variable that passed a
// visibility check.
func (s *Scope) VariableType(name string) (tree.Type, error) {
	t, ok := s.proc.LookupVariable(name)
	if !ok {
		return tree.TypeUnset, errorf(ErrUnknownSymbol, "variable '%s' is not in the symbol table of '%s'", name, s.proc.Name)
	}
	return t, nil
}
