package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/nalgeon/be"
	"github.com/strager/wlp4sema/sexy"
	"gopkg.in/yaml.v3"
)

// loadTree returns the wlp4i input of the named test in a markdown suite.
func loadTree(t *testing.T, file, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("test", file))
	be.Err(t, err, nil)
	testCases, err := sexy.ExtractTestCases(string(content))
	be.Err(t, err, nil)
	for _, tc := range testCases {
		if tc.Name == name {
			return tc.Input + "\n"
		}
	}
	t.Fatalf("no test %q in %s", name, file)
	return ""
}

type cliRun struct {
	code   int
	stdout string
	stderr string
}

func runCLI(stdin string, args ...string) cliRun {
	var stdout, stderr bytes.Buffer
	code := newCLI(strings.NewReader(stdin), &stdout, &stderr).run(args)
	return cliRun{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestCheckAcceptsValidProgram(t *testing.T) {
	input := loadTree(t, "procedures_test.md", "wain only")

	res := runCLI(input, "check")
	be.Equal(t, res.code, 0)
	be.Equal(t, res.stdout, "")
	be.Equal(t, res.stderr, "")

	res = runCLI(input, "check", "-")
	be.Equal(t, res.code, 0)
}

func TestCheckReportsFirstError(t *testing.T) {
	input := loadTree(t, "declarations_test.md", "undeclared variable")

	res := runCLI(input, "check")
	be.Equal(t, res.code, 1)
	be.Equal(t, res.stdout, "")
	be.Equal(t, res.stderr, "error: variable 'y' used before declaration in 'wain'\n")
}

func TestCheckReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sum.wlp4i")
	be.Err(t, os.WriteFile(path, []byte(loadTree(t, "procedures_test.md", "recursion")), 0644), nil)

	res := runCLI("", "check", path)
	be.Equal(t, res.code, 0)
	be.Equal(t, res.stderr, "")
}

func TestCheckMissingFile(t *testing.T) {
	res := runCLI("", "check", filepath.Join(t.TempDir(), "missing.wlp4i"))
	be.Equal(t, res.code, 1)
	be.True(t, strings.HasPrefix(res.stderr, "error: open "))
}

func TestCheckMalformedTree(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
	}{
		{name: "empty", input: "", prefix: "error: reading tree: empty input"},
		{name: "unknown rule", input: "start BOF EOF\n", prefix: "error: reading tree: line 1: unknown production"},
		{name: "truncated", input: "start BOF procedures EOF\nBOF BOF\n", prefix: "error: reading tree: line 2: unexpected end of input"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := runCLI(test.input, "check")
			be.Equal(t, res.code, 1)
			be.True(t, strings.HasPrefix(res.stderr, test.prefix))
		})
	}
}

func TestCheckVerbose(t *testing.T) {
	input := loadTree(t, "procedures_test.md", "helper procedures in declaration order")

	res := runCLI(input, "check", "-v")
	be.Equal(t, res.code, 0)
	be.True(t, strings.HasPrefix(res.stdout, "read "))
	be.True(t, strings.Contains(res.stdout, "declared 3 procedures\n"))
	be.True(t, strings.Contains(res.stdout, "  sum3(int, int, int): 3 variables\n"))
	be.True(t, strings.Contains(res.stdout, "  zero(): 0 variables\n"))
	be.True(t, strings.Contains(res.stdout, "inferred "))
}

func TestSymbolsCommand(t *testing.T) {
	input := loadTree(t, "procedures_test.md", "wain only")

	expected := `(procedures
  (procedure "wain"
    (signature int int)
    (variables (a int) (b int))))
`
	res := runCLI(input, "symbols")
	be.Equal(t, res.code, 0)
	be.Equal(t, res.stdout, expected)

	res = runCLI(input, "check", "-symbols", "sexpr")
	be.Equal(t, res.code, 0)
	be.Equal(t, res.stdout, expected)
}

func TestSymbolsCommandOnError(t *testing.T) {
	res := runCLI(loadTree(t, "types_test.md", "too many arguments"), "symbols")
	be.Equal(t, res.code, 1)
	be.Equal(t, res.stdout, "")
	be.Equal(t, res.stderr, "error: procedure 'f' called with (int, int) but declared with (int)\n")
}

func TestCheckSymbolsYAML(t *testing.T) {
	input := loadTree(t, "procedures_test.md", "pointer parameter and locals")

	res := runCLI(input, "check", "-symbols", "yaml")
	be.Equal(t, res.code, 0)
	be.True(t, strings.Contains(res.stdout, "signature: [int*, int]"))

	var got yamlSymbols
	be.Err(t, yaml.Unmarshal([]byte(res.stdout), &got), nil)
	want := yamlSymbols{Procedures: []yamlProcedure{{
		Name:      "wain",
		Signature: []string{"int*", "int"},
		Variables: []yamlVariable{
			{Name: "a", Type: "int*"},
			{Name: "n", Type: "int"},
			{Name: "p", Type: "int*"},
			{Name: "i", Type: "int"},
		},
	}}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestCheckSymbolsToFile(t *testing.T) {
	input := loadTree(t, "procedures_test.md", "wain only")
	path := filepath.Join(t.TempDir(), "table.sexpr")

	res := runCLI(input, "check", "-symbols", "sexpr", "-o", path)
	be.Equal(t, res.code, 0)
	be.Equal(t, res.stdout, "")

	content, err := os.ReadFile(path)
	be.Err(t, err, nil)
	parsed, err := sexy.Parse(string(content))
	be.Err(t, err, nil)
	be.Equal(t, parsed.String(), `(procedures (procedure "wain" (signature int int) (variables (a int) (b int))))`)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "no command", args: nil, code: 1},
		{name: "unknown command", args: []string{"build"}, code: 1},
		{name: "help", args: []string{"help"}, code: 0},
		{name: "check help", args: []string{"check", "-h"}, code: 0},
		{name: "unknown flag", args: []string{"check", "-x"}, code: 2},
		{name: "bad symbols format", args: []string{"check", "-symbols", "json"}, code: 2},
		{name: "output without symbols", args: []string{"check", "-o", "out.txt"}, code: 2},
		{name: "two files", args: []string{"check", "a", "b"}, code: 2},
		{name: "symbols with two files", args: []string{"symbols", "a", "b"}, code: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := runCLI("", test.args...)
			be.Equal(t, res.code, test.code)
			be.Equal(t, res.stdout, "")
			if test.code != 0 {
				be.True(t, res.stderr != "")
			}
		})
	}
}
