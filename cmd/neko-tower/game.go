package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/input"
	"github.com/lixenwraith/neko-tower/render"
	"github.com/lixenwraith/neko-tower/tower"
)

// muter is the part of the sound manager the loop toggles
type muter interface {
	ToggleMute() bool
}

// game serializes input events and ticks onto the controller
type game struct {
	screen     tcell.Screen
	controller *engine.RoundController
	renderer   *render.TerminalRenderer
	keys       *input.Machine
	clock      *engine.PausableClock
	frameClock *engine.FrameClock
	sound      muter
	logger     *zap.Logger
}

// handleEvent applies one terminal event. Returns true when the player quits
func (g *game) handleEvent(ev tcell.Event) (bool, error) {
	width, _ := g.screen.Size()
	intent := g.keys.Process(ev, width)

	// Only system intents pass through a pause
	if g.clock.IsPaused() && (intent.Type == input.IntentPrimary || intent.Type == input.IntentRestart) {
		return false, nil
	}

	switch intent.Type {
	case input.IntentQuit:
		return true, nil

	case input.IntentToggleMute:
		if g.sound != nil {
			muted := g.sound.ToggleMute()
			g.logger.Debug("sound toggled", zap.Bool("muted", muted))
		}

	case input.IntentPause:
		// Pausing only makes sense mid-round; other states have no running clock
		if !g.clock.IsPaused() && g.controller.State() != engine.StatePlaying {
			return false, nil
		}
		paused := g.clock.Toggle()
		g.renderer.SetPaused(paused)
		g.logger.Debug("pause toggled", zap.Bool("paused", paused))

	case input.IntentResize:
		g.screen.Sync()

	case input.IntentRestart:
		g.controller.Restart()

	case input.IntentPrimary:
		// A neutral press restarts once game over re-armed the primary action
		if intent.Side == tower.None && g.controller.ArmedAction() == engine.ActionRestart {
			g.controller.Restart()
			break
		}
		if _, err := g.controller.PrimaryInput(intent.Side); err != nil {
			return false, fmt.Errorf("primary input: %w", err)
		}

	default:
		return false, nil
	}

	g.renderer.RenderFrame(g.controller.Snapshot())
	return false, nil
}

// tick advances the round by the game time elapsed since the last frame and redraws
func (g *game) tick() error {
	if g.clock.IsPaused() {
		g.renderer.RenderFrame(g.controller.Snapshot())
		return nil
	}
	if _, err := g.controller.Tick(g.frameClock.Delta()); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	g.renderer.RenderFrame(g.controller.Snapshot())
	return nil
}

// loop runs until quit, a closed event channel or a controller error
func (g *game) loop(events <-chan tcell.Event, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.renderer.RenderFrame(g.controller.Snapshot())

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := g.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case <-ticker.C:
			if err := g.tick(); err != nil {
				return err
			}
		}
	}
}
