package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/engine/fsm"
	"github.com/lixenwraith/neko-tower/tower"
)

// Option configures a RoundController
type Option func(*RoundController)

// WithSettings replaces the default tuning
func WithSettings(s Settings) Option {
	return func(c *RoundController) { c.settings = s }
}

// WithRand sets the random source of the tower generator
func WithRand(rng tower.Rand) Option {
	return func(c *RoundController) { c.rng = rng }
}

// WithLogger sets the structured logger
func WithLogger(l *zap.Logger) Option {
	return func(c *RoundController) { c.logger = l }
}

// WithListener subscribes l to game events
func WithListener(l Listener) Option {
	return func(c *RoundController) { c.listeners = append(c.listeners, l) }
}

// RoundController owns the tower and the round state and drives the game
// state machine. It is not safe for concurrent use: input events and ticks
// must be delivered from a single goroutine
type RoundController struct {
	port      PresentationPort
	listeners Listeners
	logger    *zap.Logger
	rng       tower.Rand
	settings  Settings

	tower   *tower.Tower
	machine *fsm.Machine[*RoundController]

	// Health in fixed-point units, see toUnits
	health       int
	maxHealth    int
	chopGain     int
	decayPerTick int
	// Fraction of a unit of scaled decay not yet applied
	decayCarry float64

	score int
	side  tower.Side
	color tower.Color
	armed PrimaryAction
	runID uuid.UUID

	// First error raised by an action during the current input, returned to the caller
	err error
}

// Snapshot is a read-only view of the round for pull-based rendering
type Snapshot struct {
	RunID          uuid.UUID
	State          GameState
	Health         float64
	MaxHealth      float64
	Score          int
	Side           tower.Side
	CharacterColor tower.Color
	Armed          PrimaryAction
	Pieces         []tower.Piece
}

// NewRoundController builds the tower, seeds it and enters the Title state
func NewRoundController(port PresentationPort, opts ...Option) (*RoundController, error) {
	if port == nil {
		port = NopPresenter{}
	}

	c := &RoundController{
		port:     port,
		logger:   zap.NewNop(),
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.maxHealth = toUnits(c.settings.MaxHealth)
	c.chopGain = toUnits(c.settings.ChopGain)
	c.decayPerTick = toUnits(c.settings.DecayPerTick)

	c.tower = tower.New(c.rng, c.port,
		tower.WithSideChances(c.settings.LeftChance, c.settings.RightChance),
		tower.WithBonusChance(c.settings.BonusChance),
	)
	c.resetRound()

	c.machine = newGameMachine()
	if err := c.machine.Init(c); err != nil {
		return nil, fmt.Errorf("state machine: %w", err)
	}
	return c, nil
}

// PrimaryInput delivers the primary button with the side resolved from the
// input position. It reports whether the current state handled the input
func (c *RoundController) PrimaryInput(side tower.Side) (bool, error) {
	return c.dispatch(InputPrimary, side)
}

// Tick advances the round by one frame
func (c *RoundController) Tick(dt time.Duration) (bool, error) {
	return c.dispatch(InputTick, dt)
}

// Restart starts a fresh session. Only GameOver handles it
func (c *RoundController) Restart() bool {
	handled, _ := c.dispatch(InputRestart, nil)
	return handled
}

func (c *RoundController) dispatch(ev fsm.EventType, arg any) (bool, error) {
	c.err = nil
	handled := c.machine.HandleEvent(c, ev, arg)
	if !handled && ev != InputTick {
		c.logger.Debug("input ignored",
			zap.String("input", c.machine.EventName(ev)),
			zap.Stringer("state", c.State()),
		)
	}
	err := c.err
	c.err = nil
	return handled, err
}

// State returns the current game state
func (c *RoundController) State() GameState {
	return GameState(c.machine.Current())
}

// Health returns the current health
func (c *RoundController) Health() float64 {
	return fromUnits(c.health)
}

// Score returns the number of successful chops this session
func (c *RoundController) Score() int {
	return c.score
}

// Side returns where the character stands
func (c *RoundController) Side() tower.Side {
	return c.side
}

// ArmedAction returns what the primary button does in the current state
func (c *RoundController) ArmedAction() PrimaryAction {
	return c.armed
}

// RunID identifies the current session
func (c *RoundController) RunID() uuid.UUID {
	return c.runID
}

// Snapshot returns the state a renderer needs for one frame
func (c *RoundController) Snapshot() Snapshot {
	return Snapshot{
		RunID:          c.runID,
		State:          c.State(),
		Health:         c.Health(),
		MaxHealth:      fromUnits(c.maxHealth),
		Score:          c.score,
		Side:           c.side,
		CharacterColor: c.color,
		Armed:          c.armed,
		Pieces:         c.tower.Pieces(),
	}
}

// playRound chops the front piece with the character on side
func (c *RoundController) playRound(side tower.Side) {
	c.side = side
	c.port.FlipCharacter(side)

	popped, err := c.tower.PopTop()
	if err != nil {
		c.fault(fmt.Errorf("chop: %w", err))
		return
	}
	c.port.FlipPiece(popped, side)

	c.tower.PushRandomPieces(1)
	c.port.DropTower()

	next, err := c.tower.PeekTop()
	if err != nil {
		c.fault(fmt.Errorf("collision check: %w", err))
		return
	}

	// None never equals a resolved side, so empty plates are always safe
	if c.side == next.Side {
		c.machine.HandleEvent(c, InputFail, ReasonCollision)
		return
	}

	if popped.Bonus {
		c.health = c.maxHealth
		c.emit(EventBonusConsumed, ReasonNone)
	} else {
		c.addHealth(c.chopGain)
	}
	c.emit(EventHealthChanged, ReasonNone)

	c.score++
	c.emit(EventRoundScored, ReasonNone)
}

// decay drains health for one tick and ends the game once it drops below zero
func (c *RoundController) decay(dt time.Duration) {
	amount := c.decayPerTick
	if c.settings.DecayMode == DecayScaled {
		exact := c.settings.DecayPerSecond*dt.Seconds()*constants.HealthScale + c.decayCarry
		whole := math.Floor(exact)
		c.decayCarry = exact - whole
		amount = int(whole)
	}
	c.health -= amount

	if c.health < 0 {
		c.machine.HandleEvent(c, InputFail, ReasonHealthDepleted)
	}
}

func (c *RoundController) addHealth(units int) {
	c.health += units
	if c.health > c.maxHealth {
		c.health = c.maxHealth
	}
}

// gameOver runs on entry to GameOver
func (c *RoundController) gameOver(reason FailReason) {
	c.port.ShakeAll()
	for _, p := range c.tower.Pieces() {
		c.port.ColorizePiece(p, tower.ColorFailure)
	}
	c.color = tower.ColorFailure
	c.port.ColorizeFailure(TargetCharacter)
	c.port.ShowTitleLabel()
	c.armed = ActionRestart

	c.logger.Info("game over",
		zap.String("run", c.runID.String()),
		zap.Stringer("reason", reason),
		zap.Int("score", c.score),
		zap.Float64("health", c.Health()),
	)
	c.emit(EventGameOver, reason)
}

// resetRound restores the opening configuration of a session
func (c *RoundController) resetRound() {
	c.tower.Seed(c.settings.SeedPieces)
	c.health = c.maxHealth
	c.decayCarry = 0
	c.score = 0
	c.side = tower.Left
	c.color = tower.ColorPlain
	c.armed = ActionPlay
	c.runID = uuid.New()

	c.logger.Info("round reset",
		zap.String("run", c.runID.String()),
		zap.Int("tower", c.tower.Len()),
	)
}

func (c *RoundController) fault(err error) {
	if c.err == nil {
		c.err = err
	}
	c.logger.Error("round aborted",
		zap.String("run", c.runID.String()),
		zap.Stringer("state", c.State()),
		zap.Error(err),
	)
}

func (c *RoundController) emit(t EventType, reason FailReason) {
	if len(c.listeners) == 0 {
		return
	}
	c.listeners.OnGameEvent(Event{
		Type:   t,
		RunID:  c.runID,
		State:  c.State(),
		Score:  c.score,
		Health: c.Health(),
		Side:   c.side,
		Reason: reason,
	})
}
