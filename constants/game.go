package constants

import "time"

// Game Loop
const (
	// TickInterval is the frame ticker period of the main loop
	TickInterval = 16 * time.Millisecond

	// EventBufferSize is the capacity of the input event channel
	EventBufferSize = 256
)

// MaxFrameDelta caps the elapsed time fed to one Tick after a stall
const MaxFrameDelta = 250 * time.Millisecond

// ShutdownTimeout bounds the metrics server shutdown on exit
const ShutdownTimeout = 2 * time.Second
