package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sergev/ablescript/parser"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-yaml", "prog.able"})
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}
	if !opts.yaml || opts.script != "prog.able" {
		t.Fatalf("expected yaml output for prog.able, got %+v", opts)
	}
	if opts, _ := parseArgs([]string{"-"}); opts.script != "-" {
		t.Fatalf("expected stdin script, got %+v", opts)
	}
	if _, err := parseArgs([]string{"-verbose"}); err == nil {
		t.Fatalf("expected unknown flag error")
	}
	if _, err := parseArgs([]string{"a", "b"}); err == nil {
		t.Fatalf("expected error for two scripts")
	}
}

func TestRunScriptRendersStatements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.able")
	if err := os.WriteFile(path, []byte("var x = 1 + 2 * 3;\nx print;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var out bytes.Buffer
	if err := runScript(options{script: path}, &out); err != nil {
		t.Fatalf("runScript returned error: %v", err)
	}
	if got, want := out.String(), "var x = 1 + 2 * 3;\nx print;\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRunScriptReportsLineAndColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.able")
	if err := os.WriteFile(path, []byte("var x = 1;\nif (x { }\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := runScript(options{script: path}, &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), path+":2:7:") {
		t.Fatalf("expected position 2:7 in %q", err)
	}
}

func TestDumpYAML(t *testing.T) {
	stmts, err := parser.Parse("functio f(a) { a + 1 print; } f(sometimes);")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := dumpYAML(stmts)
	if err != nil {
		t.Fatalf("dumpYAML returned error: %v", err)
	}

	var nodes []map[string]any
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		t.Fatalf("dump is not valid YAML: %v\n%s", err, data)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0]["stmt"] != "functio" || nodes[0]["name"] != "f" {
		t.Fatalf("expected functio f, got %v", nodes[0])
	}
	body, ok := nodes[0]["body"].([]any)
	if !ok || len(body) != 1 {
		t.Fatalf("expected one body statement, got %v", nodes[0]["body"])
	}
	printed := body[0].(map[string]any)["expr"].(map[string]any)
	if printed["expr"] != "binop" || printed["op"] != "+" {
		t.Fatalf("expected binop +, got %v", printed)
	}
	call := nodes[1]
	args := call["args"].([]any)
	arg := args[0].(map[string]any)
	if call["stmt"] != "call" || arg["type"] != "abool" || arg["value"] != "sometimes" {
		t.Fatalf("expected call with sometimes literal, got %v", call)
	}
}

func TestBufferedREPLContinuesIncompleteInput(t *testing.T) {
	input := "loop {\n  break;\n}\nx print;\nif (x { }\n\"after\" print;\n"
	var out, errOut bytes.Buffer
	runBufferedREPL(options{}, bufio.NewReader(strings.NewReader(input)), &out, &errOut)

	want := "loop { break; }\nx print;\n\"after\" print;\n"
	if out.String() != want {
		t.Fatalf("expected output %q, got %q", want, out.String())
	}
	if !strings.Contains(errOut.String(), "parse error: <stdin>:1:7:") {
		t.Fatalf("expected one positioned parse error, got %q", errOut.String())
	}
}

func TestBufferedREPLReportsTruncatedInput(t *testing.T) {
	var out, errOut bytes.Buffer
	runBufferedREPL(options{}, bufio.NewReader(strings.NewReader("loop {")), &out, &errOut)
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "unexpected end of input") {
		t.Fatalf("expected end of input error, got %q", errOut.String())
	}
}

func TestBufferedREPLContinuesMultilineString(t *testing.T) {
	var out, errOut bytes.Buffer
	runBufferedREPL(options{}, bufio.NewReader(strings.NewReader("\"two\nlines\" print;\n")), &out, &errOut)
	if errOut.Len() != 0 {
		t.Fatalf("expected no errors, got %q", errOut.String())
	}
	if got, want := out.String(), "\"two\\nlines\" print;\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
