// Package output formats replay reports as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/arkoted-go/internal/game"
)

// MoveLine pairs an outcome with the script line it came from.
type MoveLine struct {
	Line    int
	Outcome game.Outcome
}

// Report is the result of replaying one script.
type Report struct {
	Name     string
	GameID   string
	Moves    []MoveLine
	Accepted int
	Rejected int
	Board    string // final diagram
	Err      error  // parse failure or strict-mode rejection
}

// writeText prints one report in the plain text layout.
func writeText(w io.Writer, r *Report, showBoard bool) error {
	ew := &errWriter{w: w}
	ew.printf("== %s\n", r.Name)
	if r.GameID != "" {
		ew.printf("game %s\n", r.GameID)
		for _, m := range r.Moves {
			ew.printf("%4d  %v\n", m.Line, m.Outcome)
		}
		ew.printf("accepted %d, rejected %d\n", r.Accepted, r.Rejected)
		if showBoard {
			ew.printf("%s\n", r.Board)
		}
	}
	if r.Err != nil {
		ew.printf("error: %v\n", r.Err)
	}
	return ew.err
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
