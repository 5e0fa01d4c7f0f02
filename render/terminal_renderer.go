package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/tower"
)

// TerminalRenderer draws the game into a tcell screen and implements
// engine.PresentationPort for transient effects
type TerminalRenderer struct {
	screen tcell.Screen
	clock  engine.TimeProvider
	fx     effectState
	paused bool

	width  int
	height int
}

// Compile-time check
var _ engine.PresentationPort = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a new terminal renderer. A nil clock uses monotonic time
func NewTerminalRenderer(screen tcell.Screen, clock engine.TimeProvider) *TerminalRenderer {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &TerminalRenderer{
		screen: screen,
		clock:  clock,
		fx:     newEffectState(),
	}
}

// layout holds per-frame screen coordinates
type layout struct {
	centerX    int
	baseY      int // Row of the front piece at rest
	plateLeft  int
	plateRight int
}

func (r *TerminalRenderer) computeLayout() layout {
	centerX := r.width / 2
	plateLeft := centerX - constants.PieceWidth/2
	return layout{
		centerX:    centerX,
		baseY:      r.height - 3,
		plateLeft:  plateLeft,
		plateRight: plateLeft + constants.PieceWidth - 1,
	}
}

// RenderFrame renders the entire game frame from a snapshot
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	now := r.clock.Now()
	r.width, r.height = r.screen.Size()

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.pruneFlights(now)
	r.prunePieceColors(snap.Pieces)

	lay := r.computeLayout()

	if r.fx.fieldVisible {
		r.drawHealthBar(snap, lay, defaultStyle)
		r.drawGround(lay, defaultStyle)
		r.drawTower(snap, lay, now, defaultStyle)
		r.drawFlights(lay, now, defaultStyle)
		r.drawCharacter(snap, lay, now, defaultStyle)
	}

	if r.fx.titleVisible {
		r.drawTitle(snap, lay, defaultStyle)
	}

	if r.paused {
		r.drawCentered(lay.centerX, r.height/2, " PAUSED ", defaultStyle.Foreground(RgbStatusText).Background(RgbStatusBar).Bold(true))
	}

	r.drawStatusBar(snap, defaultStyle)

	r.screen.Show()
}

// SetPaused toggles the pause banner
func (r *TerminalRenderer) SetPaused(paused bool) {
	r.paused = paused
}

// prunePieceColors forgets tags for pieces no longer in the tower, which happens on reseed
func (r *TerminalRenderer) prunePieceColors(pieces []tower.Piece) {
	if len(r.fx.pieceColors) <= len(pieces) {
		return
	}
	present := make(map[uint64]struct{}, len(pieces))
	for _, p := range pieces {
		present[p.ID] = struct{}{}
	}
	for id := range r.fx.pieceColors {
		if _, ok := present[id]; !ok {
			delete(r.fx.pieceColors, id)
		}
	}
}

// drawHealthBar draws the health bar and score on the top row
func (r *TerminalRenderer) drawHealthBar(snap engine.Snapshot, lay layout, defaultStyle tcell.Style) {
	ratio := 0.0
	if snap.MaxHealth > 0 {
		ratio = math.Max(0, snap.Health/snap.MaxHealth)
	}
	filled := int(math.Round(ratio * constants.HealthBarWidth))

	fillStyle := defaultStyle.Foreground(GetHealthColor(ratio))
	emptyStyle := defaultStyle.Foreground(RgbHealthEmpty)

	startX := lay.centerX - constants.HealthBarWidth/2
	for i := 0; i < constants.HealthBarWidth; i++ {
		if i < filled {
			r.setCell(startX+i, 0, '█', fillStyle)
		} else {
			r.setCell(startX+i, 0, '░', emptyStyle)
		}
	}

	scoreText := fmt.Sprintf("%d", snap.Score)
	r.drawText(lay.centerX-len(scoreText)/2, 1, scoreText, defaultStyle.Foreground(RgbScore).Bold(true))
}

func (r *TerminalRenderer) drawGround(lay layout, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbGround)
	for x := 0; x < r.width; x++ {
		r.setCell(x, lay.baseY+1, '▔', style)
	}
}

// drawTower draws pieces from the front (bottom row) upward
func (r *TerminalRenderer) drawTower(snap engine.Snapshot, lay layout, now time.Time, defaultStyle tcell.Style) {
	shake := r.shakeOffset(now)
	drop := r.dropOffset(now)

	for i, p := range snap.Pieces {
		if i >= constants.MaxVisibleRows {
			break
		}
		y := lay.baseY - i - drop
		if y < 2 {
			break
		}
		r.drawPiece(lay.plateLeft+shake, y, p.Side, r.pieceColor(p), defaultStyle)
	}
}

// drawFlights draws chopped pieces sliding away from the character
func (r *TerminalRenderer) drawFlights(lay layout, now time.Time, defaultStyle tcell.Style) {
	for _, f := range r.fx.flights {
		progress := float64(now.Sub(f.start)) / float64(constants.FlipDuration)
		travel := int(progress * float64(r.width/2))
		dir := 1
		if f.side == tower.Right {
			dir = -1
		}
		r.drawPiece(lay.plateLeft+dir*travel, lay.baseY, f.piece.Side, f.color, defaultStyle)
	}
}

// drawPiece draws one plate at x with chopsticks on side
func (r *TerminalRenderer) drawPiece(x, y int, side tower.Side, c tower.Color, defaultStyle tcell.Style) {
	rimStyle := defaultStyle.Foreground(RgbPlateRim)
	plateStyle := defaultStyle.Foreground(GetPlateColor(c))
	stickStyle := defaultStyle.Foreground(RgbChopstick)

	r.setCell(x, y, '(', rimStyle)
	for dx := 1; dx < constants.PieceWidth-1; dx++ {
		r.setCell(x+dx, y, '█', plateStyle)
	}
	r.setCell(x+constants.PieceWidth-1, y, ')', rimStyle)

	switch side {
	case tower.Left:
		for dx := 1; dx <= constants.ChopstickWidth; dx++ {
			r.setCell(x-dx, y, '═', stickStyle)
		}
	case tower.Right:
		for dx := 0; dx < constants.ChopstickWidth; dx++ {
			r.setCell(x+constants.PieceWidth+dx, y, '═', stickStyle)
		}
	}
}

// characterX returns the character column for a side
func characterX(lay layout, side tower.Side) int {
	if side == tower.Right {
		return lay.plateRight + constants.ChopstickWidth + constants.CharacterOffset
	}
	return lay.plateLeft - constants.ChopstickWidth - constants.CharacterOffset
}

func (r *TerminalRenderer) drawCharacter(snap engine.Snapshot, lay layout, now time.Time, defaultStyle tcell.Style) {
	color := RgbCharacter
	if r.fx.characterFailed || snap.CharacterColor == tower.ColorFailure {
		color = RgbCharacterFailed
	}
	style := defaultStyle.Foreground(color).Bold(true)

	x := characterX(lay, snap.Side)
	r.setCell(x, lay.baseY, '@', style)

	if active(r.fx.punchAt, now, constants.PunchDuration) {
		if snap.Side == tower.Right {
			r.setCell(x-1, lay.baseY, '<', style)
		} else {
			r.setCell(x+1, lay.baseY, '>', style)
		}
	}
}

// drawTitle draws the title label, with the final score after a game over
func (r *TerminalRenderer) drawTitle(snap engine.Snapshot, lay layout, defaultStyle tcell.Style) {
	y := r.height / 3
	r.drawCentered(lay.centerX, y, "N E K O   T O W E R", defaultStyle.Foreground(RgbTitle).Bold(true))

	hint := "press space to start"
	if snap.State == engine.StateGameOver {
		r.drawCentered(lay.centerX, y+2, fmt.Sprintf("GAME OVER  score %d", snap.Score), defaultStyle.Foreground(RgbCharacterFailed).Bold(true))
		hint = "press r or space to restart"
	}
	r.drawCentered(lay.centerX, y+4, hint, defaultStyle.Foreground(RgbHint))
}

// drawStatusBar draws the state indicator and key hints on the bottom row
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, defaultStyle tcell.Style) {
	statusY := r.height - 1

	var hint string
	switch snap.State {
	case engine.StateTitle:
		hint = "space: start  q: quit"
	case engine.StateReady:
		hint = "←/→ h/l a/d: chop  q: quit"
	case engine.StatePlaying:
		hint = "←/→ h/l a/d: chop  p: pause  m: mute  q: quit"
	case engine.StateGameOver:
		hint = "r/space: restart  q: quit"
	}

	modeText := fmt.Sprintf(" %s ", snap.State)
	modeStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbStatusBar)
	r.drawText(0, statusY, modeText, modeStyle)
	r.drawText(len(modeText)+1, statusY, hint, defaultStyle.Foreground(RgbHint))

	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	r.drawText(r.width-len(scoreText), statusY, scoreText, defaultStyle.Foreground(RgbScore))
}

func (r *TerminalRenderer) drawCentered(centerX, y int, text string, style tcell.Style) {
	r.drawText(centerX-len([]rune(text))/2, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		r.setCell(x+i, y, ch, style)
		i++
	}
}

// setCell writes one cell, clipping to the screen
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
