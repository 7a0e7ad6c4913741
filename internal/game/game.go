// Package game coordinates a chess session: it owns the board and both
// players' state, asks the rule book about each proposed move and applies the
// accepted ones, including the rook half of castling and the pawn removed en
// passant.
//
// A Game is created and owned by its caller; there is no process-wide game.
// A Game is not safe for concurrent use.
package game

import (
	"fmt"

	"github.com/apex/log"
	"github.com/google/uuid"

	"github.com/lgbarn/arkoted-go/internal/chess"
	"github.com/lgbarn/arkoted-go/internal/config"
	"github.com/lgbarn/arkoted-go/internal/engine"
	"github.com/lgbarn/arkoted-go/internal/errors"
)

// Game is one chess session.
type Game struct {
	id      uuid.UUID
	rules   config.RulesConfig
	log     log.Interface
	board   *chess.Board
	players [chess.NumColours]chess.PlayerState
	toMove  chess.Colour
	ply     int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Entries carry the game and ply fields.
func WithLogger(l log.Interface) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithID sets the game identifier instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New creates a game in the standard starting position with White to move.
// A nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) *Game {
	g := newGame(cfg, opts)
	g.board = chess.NewStandardBoard()
	return g
}

// NewFromBoard creates a game on a copy of board with toMove on move. A player
// keeps castling rights only for a king on its home square and a rook of its
// colour in the corner. The board must hold exactly one king per colour.
func NewFromBoard(cfg *config.Config, board *chess.Board, toMove chess.Colour, opts ...Option) (*Game, error) {
	if !toMove.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownColour, "side to move %d", int(toMove))
	}
	if err := board.Verify(); err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Occupied(colour, chess.King).Len(); n != 1 {
			return nil, errors.Wrapf(errors.ErrNoKingFound, "%v has %d kings", colour, n)
		}
	}

	g := newGame(cfg, opts)
	g.board = board.Copy()
	g.toMove = toMove
	for i := range g.players {
		p := &g.players[i]
		deriveCastlingRights(g.board, p)
		p.KingInCheck = engine.KingInCheck(g.board, p.Colour)
	}
	return g, nil
}

// deriveCastlingRights withdraws the rights the placement cannot support.
func deriveCastlingRights(board *chess.Board, p *chess.PlayerState) {
	row := chess.BackRow(p.Colour)
	if !board.SquareAt(chess.Coord(4, row)).Is(p.Colour, chess.King) {
		p.CastlingPossible = false
	}
	for _, side := range []chess.CastlingSide{chess.LongSide, chess.ShortSide} {
		corner := chess.Coord(side.RookHomeCol(), row)
		if !board.SquareAt(corner).Is(p.Colour, chess.Rook) {
			p.NoteRookLeft(corner)
		}
	}
}

func newGame(cfg *config.Config, opts []Option) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	rules := config.NewRulesConfig()
	if cfg.Rules != nil {
		rules = cfg.Rules
	}
	g := &Game{
		id:     uuid.New(),
		rules:  *rules,
		toMove: chess.White,
		players: [chess.NumColours]chess.PlayerState{
			chess.NewPlayerState(chess.Black),
			chess.NewPlayerState(chess.White),
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = cfg.Logger()
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// ToMove returns the colour on move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Ply returns the number of accepted moves.
func (g *Game) Ply() int {
	return g.ply
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Player returns a copy of colour's state.
func (g *Game) Player(colour chess.Colour) (chess.PlayerState, error) {
	if !colour.Valid() {
		return chess.PlayerState{}, errors.Wrapf(errors.ErrUnknownColour, "colour %d", int(colour))
	}
	return g.players[colour], nil
}

// SquareAt returns the occupant of c.
func (g *Game) SquareAt(c chess.Coordinate) (chess.Square, error) {
	if !c.Valid() {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidCoordinate, "%v", c)
	}
	return g.board.SquareAt(c), nil
}

// IsLegalMove reports whether the piece on src may move to dest under the
// rules of chess. Turn order is not considered.
func (g *Game) IsLegalMove(src, dest chess.Coordinate) bool {
	if !src.Valid() || !dest.Valid() {
		return false
	}
	from := g.board.SquareAt(src)
	if from.Empty {
		return false
	}
	return engine.IsLegalMove(g.board, from, g.board.SquareAt(dest), &g.players[from.Colour])
}

// LegalDestinations lists every square the piece on src may move to.
func (g *Game) LegalDestinations(src chess.Coordinate) []chess.Coordinate {
	if !src.Valid() {
		return nil
	}
	from := g.board.SquareAt(src)
	if from.Empty {
		return nil
	}
	return engine.LegalDestinations(g.board, from, &g.players[from.Colour])
}

// Reset restores the standard starting position and both players' initial state.
func (g *Game) Reset() {
	g.board.InitStandardPosition()
	for i := range g.players {
		g.players[i].Reset()
	}
	g.toMove = chess.White
	g.ply = 0
	g.entry().Info("game reset")
}

// String renders the board diagram followed by the side to move.
func (g *Game) String() string {
	return fmt.Sprintf("%s%v to move", g.board, g.toMove)
}

// entry returns a log entry carrying the game's context.
func (g *Game) entry() *log.Entry {
	return g.log.WithFields(log.Fields{
		"game": g.id.String(),
		"ply":  g.ply,
	})
}
