package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseStringPropagatesSyntaxErrors(t *testing.T) {
	if _, err := Parse("var = 1;"); err == nil || !strings.Contains(err.Error(), "unexpected token =") {
		t.Fatalf("expected syntax error for malformed var declaration, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestParseReaderHandlesIOReturns(t *testing.T) {
	if _, err := ParseReader(failingReader{}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected underlying IO error, got %v", err)
	}

	reader := strings.NewReader("var value = 5; value print;")
	stmts, err := ParseReader(reader)
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected two statements from reader, got %d", len(stmts))
	}
}

func TestParseFileKeepsOffsetsPastShebang(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.able")
	content := "#!/usr/bin/env ablescript\n\"hi\" print;\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	stmts, src, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	if len(src) != len(content) {
		t.Fatalf("expected source length %d, got %d", len(content), len(src))
	}
	if got := content[stmts[0].Span.Start:stmts[0].Span.End]; got != `"hi" print;` {
		t.Fatalf("expected span to point into the file, got %q", got)
	}
}

func TestParseFileReportsPathAndKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.able")
	if err := os.WriteFile(path, []byte("loop {"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, _, err := ParseFile(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error mentioning %s, got %v", path, err)
	}
	if !IsIncomplete(err) {
		t.Fatalf("expected wrapped error to stay incomplete, got %v", err)
	}

	if _, _, err := ParseFile(filepath.Join(dir, "missing.able")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLineColumn(t *testing.T) {
	src := "a\nbc\n€d"
	cases := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 2, 1},
		{4, 2, 3},
		{5, 3, 1},
		{8, 3, 2},
		{100, 3, 3},
		{-4, 1, 1},
	}
	for _, tc := range cases {
		line, col := LineColumn(src, tc.offset)
		if line != tc.line || col != tc.column {
			t.Errorf("offset %d: expected %d:%d, got %d:%d", tc.offset, tc.line, tc.column, line, col)
		}
	}
}
