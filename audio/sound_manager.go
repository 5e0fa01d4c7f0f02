package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/tower"
)

// SoundManager plays game sounds through one mixer on the speaker.
// It listens to presentation effects, so it can sit in an engine.Presenters
// fan-out next to the renderer
type SoundManager struct {
	engine.NopPresenter

	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// lock guards mixer mutation while the speaker is streaming
	lock   func()
	unlock func()
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize sets up the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferSize)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.lock = speaker.Lock
	sm.unlock = speaker.Unlock
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()

	// beep has no speaker Close here; clearing the mixer ensures no artifacts
	sm.initialized = false
}

// Play queues a sound. Returns false when audio is off or the type is unknown
func (sm *SoundManager) Play(s SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return false
	}

	sm.lock()
	sm.mixer.Add(streamer)
	sm.unlock()
	return true
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		sm.lock()
		sm.mixer.Clear()
		sm.unlock()
	}
	return sm.muted
}

// IsMuted reports whether sounds are suppressed
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// FlipPiece knocks a piece off: a bell for bonus pieces, a chop otherwise
func (sm *SoundManager) FlipPiece(p tower.Piece, _ tower.Side) {
	if p.Bonus {
		sm.Play(SoundBell)
		return
	}
	sm.Play(SoundChop)
}

// ShakeAll accompanies game over
func (sm *SoundManager) ShakeAll() {
	sm.Play(SoundFail)
}
