package chess

// journalEntry records the code a square held before a transactional write.
type journalEntry struct {
	coord Coordinate
	prev  PieceCode
}

// Transaction journals writes to a board so they can be undone.
// Undo restores the board, position index included, to its state at Begin.
type Transaction struct {
	board   *Board
	journal []journalEntry
}

// Begin starts a transaction on b. Callers should defer Rollback.
func (b *Board) Begin() *Transaction {
	return &Transaction{board: b, journal: make([]journalEntry, 0, 4)}
}

// SetPiece writes code to c, journalling the previous occupant.
func (tx *Transaction) SetPiece(c Coordinate, code PieceCode) {
	tx.journal = append(tx.journal, journalEntry{coord: c, prev: tx.board.Code(c)})
	tx.board.SetPiece(c, code)
}

// MovePiece moves the occupant of src to dest, journalling both squares.
func (tx *Transaction) MovePiece(src, dest Coordinate) {
	code := tx.board.Code(src)
	tx.SetPiece(src, Empty)
	tx.SetPiece(dest, code)
}

// Rollback undoes every journalled write in reverse order. It is safe to call
// more than once.
func (tx *Transaction) Rollback() {
	for i := len(tx.journal) - 1; i >= 0; i-- {
		e := tx.journal[i]
		tx.board.SetPiece(e.coord, e.prev)
	}
	tx.journal = tx.journal[:0]
}

// Simulate applies a move inside a transaction, evaluates fn on the resulting
// board and restores the board before returning, including when fn panics.
// Each square in vacate is emptied after the move.
func (b *Board) Simulate(src, dest Coordinate, vacate []Coordinate, fn func(*Board) bool) bool {
	tx := b.Begin()
	defer tx.Rollback()

	tx.MovePiece(src, dest)
	for _, c := range vacate {
		tx.SetPiece(c, Empty)
	}
	return fn(b)
}
