package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/neko-tower/engine/fsm"
	"github.com/lixenwraith/neko-tower/tower"
)

// newGameMachine builds the session lifecycle:
//
//	Title --primary--> Ready --primary(left|right)/chop--> Playing
//	Playing --primary(left|right)/chop, tick/decay--> Playing
//	Playing --fail--> GameOver --restart--> Title
func newGameMachine() *fsm.Machine[*RoundController] {
	m := fsm.NewMachine[*RoundController]()

	for _, s := range []GameState{StateTitle, StateReady, StatePlaying, StateGameOver} {
		m.AddState(s.id(), s.String())
		m.OnEnter(s.id(), announceState)
	}
	m.SetInitial(StateTitle.id())

	m.NameEvent(InputPrimary, "primary")
	m.NameEvent(InputTick, "tick")
	m.NameEvent(InputRestart, "restart")
	m.NameEvent(InputFail, "fail")

	m.OnEnter(StateTitle.id(), func(c *RoundController, _ any) {
		c.port.ShowTitleLabel()
		c.port.HidePlayField()
	})
	m.OnEnter(StateReady.id(), func(c *RoundController, _ any) {
		c.port.HideTitleLabel()
		c.port.RevealPlayField()
	})
	m.OnEnter(StateGameOver.id(), func(c *RoundController, arg any) {
		reason, _ := arg.(FailReason)
		c.gameOver(reason)
	})
	m.OnExit(StateGameOver.id(), func(c *RoundController, _ any) {
		c.resetRound()
		c.emit(EventHealthChanged, ReasonNone)
	})

	m.AddTransition(StateTitle.id(), fsm.Transition[*RoundController]{
		Event:    InputPrimary,
		TargetID: StateReady.id(),
	})
	m.AddTransition(StateReady.id(), fsm.Transition[*RoundController]{
		Event:    InputPrimary,
		TargetID: StatePlaying.id(),
		Guard:    sideResolved,
		Action:   chop,
	})
	m.AddTransition(StatePlaying.id(), fsm.Transition[*RoundController]{
		Event:  InputPrimary,
		Guard:  sideResolved,
		Action: chop,
	})
	m.AddTransition(StatePlaying.id(), fsm.Transition[*RoundController]{
		Event: InputTick,
		Action: func(c *RoundController, arg any) {
			dt, _ := arg.(time.Duration)
			c.decay(dt)
		},
	})
	m.AddTransition(StatePlaying.id(), fsm.Transition[*RoundController]{
		Event:    InputFail,
		TargetID: StateGameOver.id(),
	})
	m.AddTransition(StateGameOver.id(), fsm.Transition[*RoundController]{
		Event:    InputRestart,
		TargetID: StateTitle.id(),
	})

	return m
}

func sideResolved(_ *RoundController, arg any) bool {
	side, ok := arg.(tower.Side)
	return ok && side.Resolved()
}

func chop(c *RoundController, arg any) {
	c.playRound(arg.(tower.Side))
}

func announceState(c *RoundController, _ any) {
	c.logger.Debug("state entered",
		zap.String("run", c.runID.String()),
		zap.Stringer("state", c.State()),
	)
	c.emit(EventStateChanged, ReasonNone)
}
