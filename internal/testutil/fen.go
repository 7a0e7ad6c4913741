package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a test fixture described by a FEN string: the board, the side
// to move and both players' castling and en-passant state. Move clocks are
// ignored.
type Position struct {
	Board   *chess.Board
	ToMove  chess.Colour
	Players [chess.NumColours]chess.PlayerState
}

// MustParseFEN parses fen or fails the test.
func MustParseFEN(t testing.TB, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// ParseFEN builds a fixture from a FEN string. Only the placement field is
// required; missing trailing fields take their initial-position defaults.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrParseFailure)
	}

	pos := &Position{
		Board:  chess.NewBoard(),
		ToMove: chess.White,
		Players: [chess.NumColours]chess.PlayerState{
			chess.NewPlayerState(chess.Black),
			chess.NewPlayerState(chess.White),
		},
	}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	return pos, nil
}

// pieceFromFEN converts a FEN character to a piece kind.
func pieceFromFEN(c rune) chess.Piece {
	if c > unicode.MaxASCII {
		return chess.NoPiece
	}
	return pieceLetters[byte(c)|0x20]
}

// parsePiecePositions parses the piece placement field. FEN lists rank 8
// first, which is row 0.
func parsePiecePositions(board *chess.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("placement has %d ranks: %w", len(rows), errors.ErrParseFailure)
	}

	for row, rank := range rows {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := pieceFromFEN(c)
			if piece == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrParseFailure)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrParseFailure)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.SetPiece(chess.Coord(col, row), chess.Encode(colour, piece))
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrParseFailure)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrParseFailure)
	}
	return nil
}

// parseCastlingRights parses the castling availability field into each
// player's king and rook flags.
func parseCastlingRights(pos *Position, parts []string) error {
	if len(parts) < 3 {
		return nil
	}

	var rights [chess.NumColours][3]bool
	if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				rights[chess.White][chess.ShortSide] = true
			case 'Q':
				rights[chess.White][chess.LongSide] = true
			case 'k':
				rights[chess.Black][chess.ShortSide] = true
			case 'q':
				rights[chess.Black][chess.LongSide] = true
			default:
				return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrParseFailure)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		p := &pos.Players[colour]
		long, short := rights[colour][chess.LongSide], rights[colour][chess.ShortSide]
		p.CastlingPossible = long || short
		p.RookMoved[chess.LongSide] = !long
		p.RookMoved[chess.ShortSide] = !short
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square named
// is the one the double-stepping pawn passed over; the side to move is armed
// only when one of its pawns stands beside that pawn.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseAlgebraic(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %v: %w", err, errors.ErrParseFailure)
	}

	opponent := pos.ToMove.Opposite()
	victim := target.Offset(0, chess.Forward(opponent))
	if !victim.Valid() || !pos.Board.SquareAt(victim).Is(opponent, chess.Pawn) {
		return nil
	}
	for _, dc := range []int{-1, 1} {
		c := victim.Offset(dc, 0)
		if c.Valid() && pos.Board.SquareAt(c).Is(pos.ToMove, chess.Pawn) {
			pos.Players[pos.ToMove].ArmEnPassant(victim)
			break
		}
	}
	return nil
}

// PlacementFEN returns the piece placement field for board.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			code := board.Code(chess.Coord(col, row))
			if code == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteString(code.String())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
