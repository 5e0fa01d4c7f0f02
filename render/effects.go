package render

import (
	"time"

	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/tower"
)

// flight is a chopped piece sliding off the tower
type flight struct {
	piece tower.Piece
	color tower.Color
	side  tower.Side // Side the character struck from; the piece travels away from it
	start time.Time
}

// effectState holds transient presentation state between frames
// Persistent game state is pulled from engine.Snapshot each frame
type effectState struct {
	fieldVisible bool
	titleVisible bool

	pieceColors     map[uint64]tower.Color
	characterFailed bool

	punchAt time.Time
	dropAt  time.Time
	shakeAt time.Time
	flights []flight
}

func newEffectState() effectState {
	return effectState{pieceColors: make(map[uint64]tower.Color)}
}

// PresentationPort implementation. Effects only record timestamps and tags;
// RenderFrame turns them into cells

func (r *TerminalRenderer) RevealPlayField() {
	r.fx.fieldVisible = true
	r.fx.characterFailed = false
}

func (r *TerminalRenderer) HidePlayField() {
	r.fx.fieldVisible = false
}

func (r *TerminalRenderer) FlipCharacter(tower.Side) {
	r.fx.punchAt = r.clock.Now()
}

func (r *TerminalRenderer) FlipPiece(p tower.Piece, side tower.Side) {
	r.fx.flights = append(r.fx.flights, flight{
		piece: p,
		color: r.pieceColor(p),
		side:  side,
		start: r.clock.Now(),
	})
	delete(r.fx.pieceColors, p.ID)
}

func (r *TerminalRenderer) PlacePiece(p tower.Piece) {
	r.fx.pieceColors[p.ID] = tower.ColorPlain
}

func (r *TerminalRenderer) ColorizePiece(p tower.Piece, c tower.Color) {
	r.fx.pieceColors[p.ID] = c
}

func (r *TerminalRenderer) DropTower() {
	r.fx.dropAt = r.clock.Now()
}

func (r *TerminalRenderer) ShakeAll() {
	r.fx.shakeAt = r.clock.Now()
}

func (r *TerminalRenderer) ColorizeFailure(target engine.Target) {
	if target == engine.TargetCharacter {
		r.fx.characterFailed = true
	}
}

func (r *TerminalRenderer) ShowTitleLabel() {
	r.fx.titleVisible = true
}

func (r *TerminalRenderer) HideTitleLabel() {
	r.fx.titleVisible = false
}

// pieceColor resolves the color tag last applied to p
func (r *TerminalRenderer) pieceColor(p tower.Piece) tower.Color {
	if c, ok := r.fx.pieceColors[p.ID]; ok {
		return c
	}
	return p.Color()
}

// active reports whether an effect started at start is still running at now
func active(start, now time.Time, d time.Duration) bool {
	if start.IsZero() {
		return false
	}
	elapsed := now.Sub(start)
	return elapsed >= 0 && elapsed < d
}

// pruneFlights drops flights that have left the screen
func (r *TerminalRenderer) pruneFlights(now time.Time) {
	kept := r.fx.flights[:0]
	for _, f := range r.fx.flights {
		if active(f.start, now, constants.FlipDuration) {
			kept = append(kept, f)
		}
	}
	r.fx.flights = kept
}

// shakeOffset returns the horizontal jitter while the shake effect runs
func (r *TerminalRenderer) shakeOffset(now time.Time) int {
	if !active(r.fx.shakeAt, now, constants.ShakeDuration) {
		return 0
	}
	step := now.Sub(r.fx.shakeAt) / (40 * time.Millisecond)
	if step%2 == 0 {
		return 1
	}
	return -1
}

// dropOffset returns how many rows above rest the tower is drawn while settling
func (r *TerminalRenderer) dropOffset(now time.Time) int {
	if active(r.fx.dropAt, now, constants.DropDuration) {
		return 1
	}
	return 0
}
