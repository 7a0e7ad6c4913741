// Package parser reads move scripts: one move per line, written either as two
// column,row pairs ("4,6 4,4") or as two algebraic squares ("e2 e4").
// Blank lines and lines starting with '#' are skipped. Every script starts
// from the standard array.
package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/errors"
)

// Move is one scripted move and the line it was read from.
type Move struct {
	From chess.Coordinate
	To   chess.Coordinate
	Line int
}

// Script is a parsed move script.
type Script struct {
	Name  string
	Moves []Move
}

// ParseScript reads a whole script from r. name labels errors and reports.
func ParseScript(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		move, err := parseMove(line, name, lineNo)
		if err != nil {
			return nil, err
		}
		s.Moves = append(s.Moves, move)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

// parseMove parses "src dest".
func parseMove(line, name string, lineNo int) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Move{}, &errors.ParseError{
			Err: errors.ErrParseFailure, File: name, Line: lineNo,
			Expected: "two squares", Got: strconv.Quote(line),
		}
	}

	var squares [2]chess.Coordinate
	for i, field := range fields {
		c, err := parseSquare(field)
		if err != nil {
			return Move{}, &errors.ParseError{
				Err: err, File: name, Line: lineNo,
				Column: strings.Index(line, field) + 1,
				Expected: "square", Got: strconv.Quote(field),
			}
		}
		squares[i] = c
	}
	return Move{From: squares[0], To: squares[1], Line: lineNo}, nil
}

// parseSquare accepts "col,row" or an algebraic name.
func parseSquare(field string) (chess.Coordinate, error) {
	colText, rowText, ok := strings.Cut(field, ",")
	if !ok {
		return chess.ParseAlgebraic(field)
	}
	col, err1 := strconv.Atoi(colText)
	row, err2 := strconv.Atoi(rowText)
	c := chess.Coord(col, row)
	if err1 != nil || err2 != nil || !c.Valid() {
		return chess.Coordinate{}, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", field)
	}
	return c, nil
}
