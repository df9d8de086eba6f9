package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sergev/ablescript/lang"
	"github.com/sergev/ablescript/parser"
)

type options struct {
	yaml   bool
	script string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ablescript: %v\n", err)
		fmt.Fprintln(os.Stderr, "usage: ablescript [-yaml] [script | -]")
		os.Exit(2)
	}
	if opts.script == "" {
		runREPL(opts)
		return
	}
	if err := runScript(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ablescript: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	for _, arg := range args {
		switch {
		case arg == "-yaml":
			opts.yaml = true
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			if opts.script != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.script = arg
		default:
			return opts, fmt.Errorf("unknown flag %s", arg)
		}
	}
	return opts, nil
}

func runScript(opts options, out io.Writer) error {
	var (
		stmts []lang.Stmt
		src   string
		name  = opts.script
		err   error
	)
	if opts.script == "-" {
		name = "<stdin>"
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return readErr
		}
		src = string(data)
		stmts, err = parser.Parse(src)
	} else {
		stmts, src, err = parser.ParseFile(opts.script)
	}
	if err != nil {
		return describeError(name, src, err)
	}
	return writeStmts(out, stmts, opts.yaml)
}

func writeStmts(out io.Writer, stmts []lang.Stmt, asYAML bool) error {
	if asYAML {
		data, err := dumpYAML(stmts)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	for _, stmt := range stmts {
		if _, err := fmt.Fprintln(out, stmt.String()); err != nil {
			return err
		}
	}
	return nil
}

// describeError prefixes parse errors with a line and column in src.
func describeError(name, src string, err error) error {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return err
	}
	line, col := parser.LineColumn(src, perr.Span.Start)
	return fmt.Errorf("%s:%d:%d: %w", name, line, col, perr)
}

func runREPL(opts options) {
	if !isInteractive() {
		runBufferedREPL(opts, bufio.NewReader(os.Stdin), os.Stdout, os.Stderr)
		return
	}
	runInteractiveREPL(opts)
}

func runBufferedREPL(opts options, reader *bufio.Reader, out, errOut io.Writer) {
	var buffer strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if buffer.Len() == 0 && line == "" {
					return
				}
			} else {
				fmt.Fprintf(errOut, "read error: %v\n", err)
				return
			}
		}
		buffer.WriteString(line)
		src := buffer.String()
		stmts, parseErr := parser.Parse(src)
		if parseErr != nil {
			if parser.IsIncomplete(parseErr) && !errors.Is(err, io.EOF) {
				continue
			}
			fmt.Fprintf(errOut, "parse error: %v\n", describeError("<stdin>", src, parseErr))
			buffer.Reset()
			if errors.Is(err, io.EOF) {
				return
			}
			continue
		}
		buffer.Reset()
		if writeErr := writeStmts(out, stmts, opts.yaml); writeErr != nil {
			fmt.Fprintf(errOut, "error: %v\n", writeErr)
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func runInteractiveREPL(opts options) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var buffer strings.Builder

	for {
		prompt := "able> "
		if buffer.Len() > 0 {
			prompt = ".... "
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		buffer.WriteString(input)
		buffer.WriteString("\n")

		src := buffer.String()
		stmts, parseErr := parser.Parse(src)
		if parseErr != nil {
			if parser.IsIncomplete(parseErr) {
				continue
			}
			fmt.Fprintf(os.Stderr, "parse error: %v\n", describeError("<repl>", src, parseErr))
			buffer.Reset()
			continue
		}

		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		if err := writeStmts(os.Stdout, stmts, opts.yaml); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".ablescript_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
