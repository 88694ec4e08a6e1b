// Package loader reads machine specifications into structured objects,
// decoupled from the engine: the engine receives the parsed definition as a
// constructor argument and never touches the input stream.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/turingtools/tapir/pkg/domain"
)

// Spec is a fully parsed machine specification: the immutable definition plus
// the raw test-case tapes to evaluate against it.
type Spec struct {
	Machine *domain.Machine
	Cases   []string
}

// LoadFile loads a specification from disk, selecting the format by file
// extension: .yaml/.yml use the YAML format, anything else the line-oriented
// text format.
func LoadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open specification: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return Load(f)
	}
}

// Load parses the line-oriented text format:
//
//	line 1: nstates nsymbols
//	line 2: nsymbols whitespace-separated symbol tokens (index 0 = blank)
//	next nstates*nsymbols lines: from read write move to  (move in {d,i,q}, to = -1 halts)
//	next line: ncases
//	next ncases lines: one raw tape per case
//
// Any count or shape mismatch is a *domain.SpecError and aborts the whole
// load; no partial machine is returned.
func Load(r io.Reader) (*Spec, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	header, ok := next()
	if !ok {
		return nil, &domain.SpecError{Line: 1, Reason: "missing header line"}
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, &domain.SpecError{Line: line, Reason: "header must be 'nstates nsymbols'"}
	}
	nstates, err := parseCount(fields[0], "nstates", line)
	if err != nil {
		return nil, err
	}
	nsymbols, err := parseCount(fields[1], "nsymbols", line)
	if err != nil {
		return nil, err
	}

	symbolLine, ok := next()
	if !ok {
		return nil, &domain.SpecError{Line: line + 1, Reason: "missing symbol line"}
	}
	tokens := strings.Fields(symbolLine)
	if len(tokens) != nsymbols {
		return nil, &domain.SpecError{Line: line, Reason: fmt.Sprintf("expected %d symbols, got %d", nsymbols, len(tokens))}
	}
	alphabet, err := domain.NewAlphabet(tokens)
	if err != nil {
		return nil, lineError(err, line)
	}

	table := domain.NewTable(nstates, alphabet)
	for i := 0; i < nstates*nsymbols; i++ {
		raw, ok := next()
		if !ok {
			return nil, &domain.SpecError{Line: line + 1, Reason: fmt.Sprintf("expected %d rule lines, got %d", nstates*nsymbols, i)}
		}
		rule, err := parseRule(raw, line)
		if err != nil {
			return nil, err
		}
		if err := table.Insert(rule); err != nil {
			return nil, lineError(err, line)
		}
	}

	machine, err := domain.NewMachine(alphabet, table)
	if err != nil {
		return nil, err
	}

	countLine, ok := next()
	if !ok {
		return nil, &domain.SpecError{Line: line + 1, Reason: "missing test case count"}
	}
	ncases, err := parseCount(strings.TrimSpace(countLine), "ncases", line)
	if err != nil {
		return nil, err
	}

	cases := make([]string, 0, ncases)
	for i := 0; i < ncases; i++ {
		raw, ok := next()
		if !ok {
			return nil, &domain.SpecError{Line: line + 1, Reason: fmt.Sprintf("expected %d test cases, got %d", ncases, i)}
		}
		cases = append(cases, raw)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read specification: %w", err)
	}
	return &Spec{Machine: machine, Cases: cases}, nil
}

// parseRule parses a 5-tuple line: fromState readSymbol writeSymbol move nextState.
func parseRule(raw string, line int) (domain.Rule, error) {
	fields := strings.Fields(raw)
	if len(fields) != 5 {
		return domain.Rule{}, &domain.SpecError{Line: line, Reason: fmt.Sprintf("rule line has %d fields, want 5", len(fields))}
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Rule{}, &domain.SpecError{Line: line, Reason: "invalid from state '" + fields[0] + "'"}
	}
	read, err := parseSymbolToken(fields[1], line)
	if err != nil {
		return domain.Rule{}, err
	}
	write, err := parseSymbolToken(fields[2], line)
	if err != nil {
		return domain.Rule{}, err
	}
	move, err := domain.ParseMove(fields[3])
	if err != nil {
		return domain.Rule{}, lineError(err, line)
	}
	toWire, err := strconv.Atoi(fields[4])
	if err != nil {
		return domain.Rule{}, &domain.SpecError{Line: line, Reason: "invalid next state '" + fields[4] + "'"}
	}
	to, err := domain.ParseNext(toWire)
	if err != nil {
		return domain.Rule{}, lineError(err, line)
	}

	return domain.Rule{From: from, Read: read, Write: write, Move: move, Next: to}, nil
}

func parseSymbolToken(tok string, line int) (domain.Symbol, error) {
	runes := []rune(tok)
	if len(runes) != 1 {
		return 0, &domain.SpecError{Line: line, Reason: "symbol token must be a single character, got '" + tok + "'"}
	}
	return domain.Symbol(runes[0]), nil
}

func parseCount(tok, name string, line int) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, &domain.SpecError{Line: line, Reason: "invalid " + name + " '" + tok + "'"}
	}
	return n, nil
}

// lineError attaches a line number to a *domain.SpecError that was produced
// below the loader; other errors pass through untouched.
func lineError(err error, line int) error {
	if specErr, ok := err.(*domain.SpecError); ok && specErr.Line == 0 {
		return &domain.SpecError{Line: line, Reason: specErr.Reason}
	}
	return err
}
