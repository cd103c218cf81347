package parameter

import "time"

// Spectator websocket feed
const (
	SpectatePingInterval = 30 * time.Second
	SpectateWriteTimeout = 5 * time.Second
	SpectateClientBuffer = 8

	// SpectateEventBacklog caps events carried by one frame, extras are dropped
	SpectateEventBacklog = 256
)
