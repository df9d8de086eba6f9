package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sergev/ablescript/lang"
)

// Parse translates source text into a list of statements.
func Parse(src string) ([]lang.Stmt, error) {
	return New(NewLexer(src)).Init()
}

// ParseReader consumes source from an io.Reader and parses it.
func ParseReader(r io.Reader) ([]lang.Stmt, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseFile loads and parses a script, allowing a #! first line. The
// returned source is what spans refer to.
func ParseFile(path string) ([]lang.Stmt, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	src := string(blankShebang(data))
	stmts, err := Parse(src)
	if err != nil {
		return nil, src, fmt.Errorf("%s: %w", path, err)
	}
	return stmts, src, nil
}

// blankShebang overwrites a leading #! line with spaces so that byte
// offsets still match the file.
func blankShebang(data []byte) []byte {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return data
	}
	end := bytes.IndexByte(data, '\n')
	if end < 0 {
		end = len(data)
	}
	out := bytes.Clone(data)
	for i := 0; i < end; i++ {
		out[i] = ' '
	}
	return out
}
