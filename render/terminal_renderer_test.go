package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/tower"
)

// 80x24 layout: center 40, plate 36..44, front row 21
const (
	testWidth  = 80
	testHeight = 24
	plateLeft  = 36
	plateRight = 44
	baseY      = 21
)

func newTestRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(testWidth, testHeight)

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	return NewTerminalRenderer(screen, clock), screen, clock
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func cellAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	ch, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return ch, fg
}

func piece(id uint64, side tower.Side, bonus bool) tower.Piece {
	return tower.NewPiece(id, tower.PieceTemplate{Side: side, Bonus: bonus})
}

func playingSnapshot(pieces ...tower.Piece) engine.Snapshot {
	return engine.Snapshot{
		State:     engine.StatePlaying,
		Health:    1,
		MaxHealth: 1,
		Side:      tower.Left,
		Pieces:    pieces,
	}
}

func TestTitleHidesField(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.ShowTitleLabel()
	r.HidePlayField()

	r.RenderFrame(engine.Snapshot{State: engine.StateTitle, Pieces: []tower.Piece{piece(1, tower.None, false)}})

	assert.Contains(t, rowText(screen, testHeight/3), "N E K O   T O W E R")
	assert.NotContains(t, rowText(screen, 0), "█", "health bar hidden on title")
	assert.NotContains(t, rowText(screen, baseY), "(", "tower hidden on title")
	assert.Contains(t, rowText(screen, testHeight-1), " Title ")
}

func TestRevealDrawsField(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.HideTitleLabel()
	r.RevealPlayField()

	r.RenderFrame(playingSnapshot(piece(1, tower.None, false), piece(2, tower.Right, false), piece(3, tower.Left, false)))

	assert.Equal(t, constants.HealthBarWidth, strings.Count(rowText(screen, 0), "█"))
	assert.NotContains(t, rowText(screen, testHeight/3), "N E K O")

	// Front piece has no chopsticks
	ch, _ := cellAt(screen, plateLeft, baseY)
	assert.Equal(t, '(', ch)
	ch, _ = cellAt(screen, plateRight+1, baseY)
	assert.NotEqual(t, '═', ch)

	// Second piece sticks out right, third left
	ch, _ = cellAt(screen, plateRight+1, baseY-1)
	assert.Equal(t, '═', ch)
	ch, _ = cellAt(screen, plateLeft-1, baseY-2)
	assert.Equal(t, '═', ch)

	// Character stands left
	ch, fg := cellAt(screen, plateLeft-constants.ChopstickWidth-constants.CharacterOffset, baseY)
	assert.Equal(t, '@', ch)
	assert.Equal(t, RgbCharacter, fg)
}

func TestHealthBarFollowsSnapshot(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.RevealPlayField()

	snap := playingSnapshot(piece(1, tower.None, false))
	snap.Health = 0.5
	r.RenderFrame(snap)

	assert.Equal(t, constants.HealthBarWidth/2, strings.Count(rowText(screen, 0), "█"))
}

func TestColorizePiece(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.RevealPlayField()

	p1 := piece(1, tower.None, false)
	p2 := piece(2, tower.None, true)
	r.PlacePiece(p1)
	r.PlacePiece(p2)
	r.ColorizePiece(p2, tower.ColorBonus)

	r.RenderFrame(playingSnapshot(p1, p2))

	_, fg := cellAt(screen, plateLeft+1, baseY)
	assert.Equal(t, RgbPlate, fg)
	_, fg = cellAt(screen, plateLeft+1, baseY-1)
	assert.Equal(t, RgbPlateBonus, fg)

	r.ColorizePiece(p1, tower.ColorFailure)
	r.RenderFrame(playingSnapshot(p1, p2))
	_, fg = cellAt(screen, plateLeft+1, baseY)
	assert.Equal(t, RgbPlateFailed, fg)
}

func TestColorizeFailureTargets(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.RevealPlayField()
	second := piece(2, tower.None, true)
	snap := playingSnapshot(piece(1, tower.None, false), second)

	r.ColorizeFailure(engine.TargetCharacter)
	r.ColorizePiece(second, tower.ColorFailure)
	r.RenderFrame(snap)

	_, fg := cellAt(screen, plateLeft-constants.ChopstickWidth-constants.CharacterOffset, baseY)
	assert.Equal(t, RgbCharacterFailed, fg)
	_, fg = cellAt(screen, plateLeft+1, baseY-1)
	assert.Equal(t, RgbPlateFailed, fg)

	// A new reveal clears failure tint
	r.RevealPlayField()
	r.RenderFrame(snap)
	_, fg = cellAt(screen, plateLeft-constants.ChopstickWidth-constants.CharacterOffset, baseY)
	assert.Equal(t, RgbCharacter, fg)
}

func TestFlipPieceFlight(t *testing.T) {
	r, screen, clock := newTestRenderer(t)
	r.RevealPlayField()

	chopped := piece(1, tower.None, false)
	r.PlacePiece(chopped)
	r.FlipCharacter(tower.Left)
	r.FlipPiece(chopped, tower.Left)
	require.Len(t, r.fx.flights, 1)

	// Struck from the left, the piece travels right
	clock.Advance(constants.FlipDuration / 2)
	r.RenderFrame(playingSnapshot())
	travel := int(0.5 * float64(testWidth/2))
	ch, _ := cellAt(screen, plateLeft+travel, baseY)
	assert.Equal(t, '(', ch)

	clock.Advance(constants.FlipDuration)
	r.RenderFrame(playingSnapshot())
	assert.Empty(t, r.fx.flights)
	assert.Empty(t, r.fx.pieceColors)
}

func TestPunchIndicator(t *testing.T) {
	r, screen, clock := newTestRenderer(t)
	r.RevealPlayField()

	snap := playingSnapshot(piece(1, tower.None, false))
	snap.Side = tower.Right
	charX := plateRight + constants.ChopstickWidth + constants.CharacterOffset

	r.FlipCharacter(tower.Right)
	r.RenderFrame(snap)
	ch, _ := cellAt(screen, charX-1, baseY)
	assert.Equal(t, '<', ch)

	clock.Advance(constants.PunchDuration)
	r.RenderFrame(snap)
	ch, _ = cellAt(screen, charX-1, baseY)
	assert.NotEqual(t, '<', ch)
}

func TestDropAndShakeOffsets(t *testing.T) {
	r, _, clock := newTestRenderer(t)
	now := clock.Now()

	assert.Equal(t, 0, r.dropOffset(now))
	assert.Equal(t, 0, r.shakeOffset(now))

	r.DropTower()
	r.ShakeAll()
	assert.Equal(t, 1, r.dropOffset(now))
	assert.Equal(t, 1, r.shakeOffset(now))
	assert.Equal(t, -1, r.shakeOffset(now.Add(40*time.Millisecond)))

	later := now.Add(constants.ShakeDuration)
	assert.Equal(t, 0, r.dropOffset(later))
	assert.Equal(t, 0, r.shakeOffset(later))
}

func TestGameOverTitle(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.HidePlayField()
	r.ShowTitleLabel()

	r.RenderFrame(engine.Snapshot{State: engine.StateGameOver, Score: 17})

	assert.Contains(t, rowText(screen, testHeight/3+2), "GAME OVER  score 17")
	assert.Contains(t, rowText(screen, testHeight-1), "Score: 17")
}

func TestPauseBanner(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.RevealPlayField()

	r.SetPaused(true)
	r.RenderFrame(playingSnapshot())
	assert.Contains(t, rowText(screen, testHeight/2), "PAUSED")

	r.SetPaused(false)
	r.RenderFrame(playingSnapshot())
	assert.NotContains(t, rowText(screen, testHeight/2), "PAUSED")
}

func TestPrunePieceColorsOnReseed(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	r.RevealPlayField()
	for id := uint64(1); id <= 5; id++ {
		r.PlacePiece(piece(id, tower.None, false))
	}

	r.RenderFrame(playingSnapshot(piece(6, tower.None, false)))
	assert.Empty(t, r.fx.pieceColors)
}

// TestRendererWithController drives the renderer through a real round
func TestRendererWithController(t *testing.T) {
	r, screen, _ := newTestRenderer(t)

	c, err := engine.NewRoundController(r, engine.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	r.RenderFrame(c.Snapshot())
	assert.Contains(t, rowText(screen, testHeight/3), "N E K O")

	_, err = c.PrimaryInput(tower.None)
	require.NoError(t, err)
	r.RenderFrame(c.Snapshot())
	assert.NotContains(t, rowText(screen, testHeight/3), "N E K O")
	assert.Equal(t, constants.HealthBarWidth, strings.Count(rowText(screen, 0), "█"))
	assert.Contains(t, rowText(screen, testHeight-1), " Ready ")
	assert.Len(t, r.fx.pieceColors, len(c.Snapshot().Pieces))
}

func TestGameOverShowsFailureOnField(t *testing.T) {
	r, screen, clock := newTestRenderer(t)

	c, err := engine.NewRoundController(r, engine.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	// Opening tower is [None, Right, ...]: the first chop from the right collides
	_, err = c.PrimaryInput(tower.None)
	require.NoError(t, err)
	_, err = c.PrimaryInput(tower.Right)
	require.NoError(t, err)
	require.Equal(t, engine.StateGameOver, c.State())

	// Past the drop, still inside the shake
	clock.Advance(constants.DropDuration)
	snap := c.Snapshot()
	r.RenderFrame(snap)

	shake := r.shakeOffset(clock.Now())
	require.NotZero(t, shake)

	ch, _ := cellAt(screen, plateLeft+shake, baseY)
	assert.Equal(t, '(', ch)
	for row := 0; row < 3; row++ {
		ch, fg := cellAt(screen, plateLeft+shake+1, baseY-row)
		assert.Equal(t, '█', ch, "row %d", row)
		assert.Equal(t, RgbPlateFailed, fg, "row %d", row)
	}

	ch, fg := cellAt(screen, plateRight+constants.ChopstickWidth+constants.CharacterOffset, baseY)
	assert.Equal(t, '@', ch)
	assert.Equal(t, RgbCharacterFailed, fg)

	assert.Contains(t, rowText(screen, baseY+1), "▔")
	assert.Contains(t, rowText(screen, testHeight/3+2), "GAME OVER")

	// Restart hides the field behind the title again
	require.True(t, c.Restart())
	r.RenderFrame(c.Snapshot())
	assert.NotContains(t, rowText(screen, baseY+1), "▔")
	assert.Contains(t, rowText(screen, testHeight/3), "N E K O")
}
