package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/arkoted-go/internal/chess"
)

// JSONReport represents a replay report in JSON format.
type JSONReport struct {
	Name     string     `json:"name"`
	GameID   string     `json:"gameId,omitempty"`
	Moves    []JSONMove `json:"moves,omitempty"`
	Accepted int        `json:"accepted"`
	Rejected int        `json:"rejected"`
	Board    []string   `json:"board,omitempty"` // one string per row, row 0 first
	Error    string     `json:"error,omitempty"`
}

// JSONMove represents one applied or rejected move in JSON format.
type JSONMove struct {
	Line      int    `json:"line"`
	From      string `json:"from"`
	To        string `json:"to"`
	Accepted  bool   `json:"accepted"`
	Reason    string `json:"reason,omitempty"`
	Color     string `json:"color,omitempty"`
	Piece     string `json:"piece,omitempty"`
	Captured  string `json:"captured,omitempty"`
	CaptureAt string `json:"captureAt,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Castled   string `json:"castled,omitempty"`
	Check     bool   `json:"check,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Scripts []*JSONReport `json:"scripts"`
}

// ReportToJSON converts a report to JSON format. The board is included only
// when withBoard is set.
func ReportToJSON(r *Report, withBoard bool) *JSONReport {
	jr := &JSONReport{
		Name:     r.Name,
		GameID:   r.GameID,
		Accepted: r.Accepted,
		Rejected: r.Rejected,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	if withBoard && r.Board != "" {
		jr.Board = boardRows(r.Board)
	}
	for _, m := range r.Moves {
		jr.Moves = append(jr.Moves, convertMove(m))
	}
	return jr
}

// convertMove converts a single outcome to JSON format.
func convertMove(m MoveLine) JSONMove {
	o := m.Outcome
	jm := JSONMove{
		Line:     m.Line,
		From:     o.From.Algebraic(),
		To:       o.To.Algebraic(),
		Accepted: o.Accepted,
	}
	if !o.Accepted {
		jm.Reason = o.Reason.String()
	}
	if o.Piece != chess.NoPiece {
		jm.Color = colorName(o.Colour)
		jm.Piece = pieceTypeName(o.Piece)
	}
	if o.Captured != nil {
		jm.Captured = pieceTypeName(o.Captured.Piece)
		jm.CaptureAt = o.Captured.Coord.Algebraic()
	}
	jm.EnPassant = o.EnPassant
	if o.Castled != chess.NoCastling {
		jm.Castled = o.Castled.String()
	}
	jm.Check = o.Check
	return jm
}

// boardRows splits a diagram into its eight rows.
func boardRows(diagram string) []string {
	var rows []string
	start := 0
	for i := 0; i < len(diagram) && len(rows) < chess.BoardSize; i++ {
		if diagram[i] == '\n' {
			rows = append(rows, diagram[start:i])
			start = i + 1
		}
	}
	return rows
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase name of a piece kind.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}

// encodeJSON writes v indented.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
