package tower

// PieceTemplate describes a piece before it exists in a tower
type PieceTemplate struct {
	Side  Side
	Bonus bool
}

// Piece is one plate of the tower. Pieces are values and are never mutated
// after creation; chopping removes them from the tower
type Piece struct {
	ID    uint64
	Side  Side
	Bonus bool
}

// NewPiece builds a piece from a template
func NewPiece(id uint64, tpl PieceTemplate) Piece {
	return Piece{
		ID:    id,
		Side:  tpl.Side,
		Bonus: tpl.Bonus,
	}
}

// Color returns the tint the piece was created with
func (p Piece) Color() Color {
	if p.Bonus {
		return ColorBonus
	}
	return ColorPlain
}

// Template returns the descriptor the piece was built from
func (p Piece) Template() PieceTemplate {
	return PieceTemplate{Side: p.Side, Bonus: p.Bonus}
}
