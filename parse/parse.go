package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlegraph/core"
	"github.com/katalvlaran/puzzlegraph/gridgraph"
	"github.com/katalvlaran/puzzlegraph/label"
	"github.com/katalvlaran/puzzlegraph/polygon"
)

var (
	// ErrSyntax indicates a malformed line.
	ErrSyntax = errors.New("parse: syntax error")
	// ErrEmptyInput indicates an input without any non-blank line.
	ErrEmptyInput = errors.New("parse: empty input")
)

// LineError attaches a 1-based line number to a parse failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// lines calls fn for every non-blank, space-trimmed line of r.
func lines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n, seen := 0, false
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		seen = true
		if err := fn(n, line); err != nil {
			return &LineError{Line: n, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if !seen {
		return ErrEmptyInput
	}

	return nil
}

// Outline reads "x,y" vertices in order.
func Outline(r io.Reader) (polygon.Outline, error) {
	var o polygon.Outline
	err := lines(r, func(_ int, line string) error {
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return fmt.Errorf("%w: want x,y, got %q", ErrSyntax, line)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: x: %v", ErrSyntax, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: y: %v", ErrSyntax, err)
		}
		o = append(o, polygon.Point{X: x, Y: y})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

// Graph reads "name: succ succ …" lines. A name defined twice is an error
// (core.ErrDuplicateNode); successors need not be defined.
func Graph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	err := lines(r, func(_ int, line string) error {
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: want name: successors, got %q", ErrSyntax, line)
		}
		id, err := label.Encode(name)
		if err != nil {
			return err
		}
		fields := strings.Fields(rest)
		succ := make([]core.NodeID, len(fields))
		for i, f := range fields {
			if succ[i], err = label.Encode(f); err != nil {
				return err
			}
		}
		if err := g.AddNode(id, succ...); err != nil {
			return fmt.Errorf("%s: %w", strings.TrimSpace(name), err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Grid reads a character map into a GridGraph.
func Grid(r io.Reader) (*gridgraph.GridGraph, error) {
	var rows [][]int
	err := lines(r, func(_ int, line string) error {
		row := make([]int, 0, len(line))
		for _, c := range line {
			v, err := gridgraph.CellValue(c)
			if err != nil {
				return err
			}
			row = append(row, v)
		}
		rows = append(rows, row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return gridgraph.NewGridGraph(rows)
}

// File opens path and applies fn to its contents.
func File[T any](path string, fn func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := fn(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
