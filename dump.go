package main

import (
	"fmt"
	"io"

	"github.com/strager/wlp4sema/sema"
	"github.com/strager/wlp4sema/sexy"
	"gopkg.in/yaml.v3"
)

type symbolsFormat string

const (
	symbolsNone  symbolsFormat = "none"
	symbolsSexpr symbolsFormat = "sexpr"
	symbolsYAML  symbolsFormat = "yaml"
)

func parseSymbolsFormat(s string) (symbolsFormat, error) {
	switch f := symbolsFormat(s); f {
	case symbolsNone, symbolsSexpr, symbolsYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown symbols format %q (want none, sexpr or yaml)", s)
	}
}

// SymbolsToSexpr renders the procedure table as
// (procedures (procedure "f" (signature int int*) (variables (a int) (p int*))) ...).
func SymbolsToSexpr(st *sema.SymbolTable) *sexy.Node {
	procs := []*sexy.Node{sexy.NewSymbol("procedures")}
	for _, p := range st.Procedures {
		sig := []*sexy.Node{sexy.NewSymbol("signature")}
		for _, t := range p.Signature {
			sig = append(sig, sexy.NewSymbol(t.String()))
		}
		vars := []*sexy.Node{sexy.NewSymbol("variables")}
		for _, v := range p.Variables {
			vars = append(vars, sexy.NewList(sexy.NewSymbol(v.Name), sexy.NewSymbol(v.Type.String())))
		}
		procs = append(procs, sexy.NewList(
			sexy.NewSymbol("procedure"),
			sexy.NewString(p.Name),
			sexy.NewList(sig...),
			sexy.NewList(vars...),
		))
	}
	return sexy.NewList(procs...)
}

type yamlVariable struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type yamlProcedure struct {
	Name      string         `yaml:"name"`
	Signature []string       `yaml:"signature,flow"`
	Variables []yamlVariable `yaml:"variables"`
}

type yamlSymbols struct {
	Procedures []yamlProcedure `yaml:"procedures"`
}

func symbolsToYAML(st *sema.SymbolTable) yamlSymbols {
	out := yamlSymbols{Procedures: []yamlProcedure{}}
	for _, p := range st.Procedures {
		yp := yamlProcedure{Name: p.Name, Signature: []string{}, Variables: []yamlVariable{}}
		for _, t := range p.Signature {
			yp.Signature = append(yp.Signature, t.String())
		}
		for _, v := range p.Variables {
			yp.Variables = append(yp.Variables, yamlVariable{Name: v.Name, Type: v.Type.String()})
		}
		out.Procedures = append(out.Procedures, yp)
	}
	return out
}

func writeSymbols(w io.Writer, st *sema.SymbolTable, format symbolsFormat) error {
	switch format {
	case symbolsSexpr:
		_, err := fmt.Fprintln(w, SymbolsToSexpr(st).Pretty())
		return err
	case symbolsYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(symbolsToYAML(st)); err != nil {
			return fmt.Errorf("encode symbols: %w", err)
		}
		return enc.Close()
	}
	return nil
}
