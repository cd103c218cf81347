package parameter

import "time"

// Audio output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond

	// AudioMaxCuesPerTurn limits how many cues a single turn may queue
	AudioMaxCuesPerTurn = 3
)

// Cue shapes
const (
	BirthFreq     = 660.0
	BirthDuration = 90 * time.Millisecond

	PredationFreq     = 110.0
	PredationDuration = 140 * time.Millisecond

	StarveDuration = 250 * time.Millisecond
)
