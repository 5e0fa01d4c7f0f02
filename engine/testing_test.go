package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neko-tower/tower"
)

// queueRand returns queued values first, then the fallback forever
type queueRand struct {
	queue    []float64
	fallback float64
}

func (q *queueRand) Float64() float64 {
	if len(q.queue) == 0 {
		return q.fallback
	}
	v := q.queue[0]
	q.queue = q.queue[1:]
	return v
}

// calmRand makes every free slot an empty plate and never draws a bonus
func calmRand() *queueRand {
	return &queueRand{fallback: 0.99}
}

// recordingPresenter logs every effect as a short string
type recordingPresenter struct {
	calls []string
}

func (r *recordingPresenter) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingPresenter) RevealPlayField() { r.add("RevealPlayField") }
func (r *recordingPresenter) HidePlayField()   { r.add("HidePlayField") }
func (r *recordingPresenter) FlipCharacter(side tower.Side) {
	r.add("FlipCharacter(%s)", side)
}
func (r *recordingPresenter) FlipPiece(p tower.Piece, side tower.Side) {
	r.add("FlipPiece(%d,%s)", p.ID, side)
}
func (r *recordingPresenter) PlacePiece(p tower.Piece) { r.add("PlacePiece(%d)", p.ID) }
func (r *recordingPresenter) ColorizePiece(p tower.Piece, c tower.Color) {
	r.add("ColorizePiece(%d,%s)", p.ID, c)
}
func (r *recordingPresenter) DropTower() { r.add("DropTower") }
func (r *recordingPresenter) ShakeAll()  { r.add("ShakeAll") }
func (r *recordingPresenter) ColorizeFailure(t Target) {
	r.add("ColorizeFailure(%d)", t)
}
func (r *recordingPresenter) ShowTitleLabel() { r.add("ShowTitleLabel") }
func (r *recordingPresenter) HideTitleLabel() { r.add("HideTitleLabel") }

func (r *recordingPresenter) reset() { r.calls = nil }

func (r *recordingPresenter) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// eventLog collects listener events
type eventLog struct {
	events []Event
}

func (l *eventLog) OnGameEvent(ev Event) { l.events = append(l.events, ev) }

func (l *eventLog) count(t EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// newTestController builds a controller with a calm random source
func newTestController(t *testing.T, opts ...Option) (*RoundController, *recordingPresenter, *eventLog) {
	t.Helper()

	port := &recordingPresenter{}
	events := &eventLog{}
	opts = append([]Option{WithRand(calmRand()), WithListener(events)}, opts...)

	c, err := NewRoundController(port, opts...)
	require.NoError(t, err)
	return c, port, events
}

// stackTower replaces the tower with exactly the given pieces, front first.
// Replenished pieces are empty plain plates
func stackTower(c *RoundController, tpls ...tower.PieceTemplate) {
	rng := calmRand()
	for _, tpl := range tpls {
		if tpl.Bonus {
			rng.queue = append(rng.queue, 0)
		} else {
			rng.queue = append(rng.queue, 0.99)
		}
	}

	c.tower = tower.New(rng, c.port)
	for _, tpl := range tpls {
		c.tower.PushPiece(tpl.Side)
	}
}

// toReady moves the controller from Title to Ready
func toReady(t *testing.T, c *RoundController) {
	t.Helper()
	handled, err := c.PrimaryInput(tower.None)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, StateReady, c.State())
}
