package tower

import (
	"errors"

	"github.com/lixenwraith/neko-tower/constants"
)

// ErrEmptyTower is returned when the front of an empty tower is requested.
// With one replenish per chop this never happens in a running game
var ErrEmptyTower = errors.New("tower is empty")

// Rand is the random source used by the generation policy
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// Placer receives the effects of adding pieces
type Placer interface {
	PlacePiece(p Piece)
	ColorizePiece(p Piece, c Color)
}

// Option configures a Tower
type Option func(*Tower)

// WithSideChances sets the probabilities of Left and Right for a free slot.
// The remainder goes to None
func WithSideChances(left, right float64) Option {
	return func(t *Tower) {
		t.leftChance = left
		t.rightChance = right
	}
}

// WithBonusChance sets the probability a new piece is a bonus piece
func WithBonusChance(p float64) Option {
	return func(t *Tower) {
		t.bonusChance = p
	}
}

// Tower is the ordered stack of pieces. The front (index 0) is the piece
// next to the character; new pieces go to the back
type Tower struct {
	pieces []Piece
	nextID uint64

	rng    Rand
	placer Placer

	leftChance  float64
	rightChance float64
	bonusChance float64
}

// New creates an empty tower
func New(rng Rand, placer Placer, opts ...Option) *Tower {
	t := &Tower{
		pieces:      make([]Piece, 0, constants.SeedPieces+2),
		nextID:      1,
		rng:         rng,
		placer:      placer,
		leftChance:  constants.LeftChance,
		rightChance: constants.RightChance,
		bonusChance: constants.BonusChance,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of pieces in the tower
func (t *Tower) Len() int {
	return len(t.pieces)
}

// Pieces returns a copy of the tower, front first
func (t *Tower) Pieces() []Piece {
	out := make([]Piece, len(t.pieces))
	copy(out, t.pieces)
	return out
}

// Back returns the most recently added piece
func (t *Tower) Back() (Piece, bool) {
	if len(t.pieces) == 0 {
		return Piece{}, false
	}
	return t.pieces[len(t.pieces)-1], true
}

// PushPiece appends a piece with the given side. The bonus tag is drawn once here
func (t *Tower) PushPiece(side Side) Piece {
	tpl := PieceTemplate{
		Side:  side,
		Bonus: t.rng.Float64() < t.bonusChance,
	}
	p := NewPiece(t.nextID, tpl)
	t.nextID++
	t.pieces = append(t.pieces, p)

	if t.placer != nil {
		t.placer.PlacePiece(p)
		if p.Bonus {
			t.placer.ColorizePiece(p, ColorBonus)
		}
	}
	return p
}

// PushRandomPieces adds count pieces following the generation policy:
// a piece behind one with chopsticks is always empty, so the character
// always has a safe side
func (t *Tower) PushRandomPieces(count int) {
	for i := 0; i < count; i++ {
		t.PushPiece(t.nextSide())
	}
}

func (t *Tower) nextSide() Side {
	last, ok := t.Back()
	if !ok || last.Side != None {
		return None
	}

	r := t.rng.Float64()
	switch {
	case r < t.leftChance:
		return Left
	case r < t.leftChance+t.rightChance:
		return Right
	default:
		return None
	}
}

// PopTop removes and returns the front piece
func (t *Tower) PopTop() (Piece, error) {
	if len(t.pieces) == 0 {
		return Piece{}, ErrEmptyTower
	}
	p := t.pieces[0]
	copy(t.pieces, t.pieces[1:])
	t.pieces = t.pieces[:len(t.pieces)-1]
	return p, nil
}

// PeekTop returns the front piece without removing it
func (t *Tower) PeekTop() (Piece, error) {
	if len(t.pieces) == 0 {
		return Piece{}, ErrEmptyTower
	}
	return t.pieces[0], nil
}

// Reset removes all pieces. IDs keep counting so a presenter never sees one reused
func (t *Tower) Reset() {
	t.pieces = t.pieces[:0]
}

// Seed rebuilds the opening tower: an empty plate, a right plate, then
// count random pieces
func (t *Tower) Seed(count int) {
	t.Reset()
	t.PushPiece(None)
	t.PushPiece(Right)
	t.PushRandomPieces(count)
}
