package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// CuePlayer mixes event cues onto the speaker
// Every method is a no-op until Initialize succeeds
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	limiter     turnLimiter
	initialized bool
	played      [3]int64
}

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer:   &beep.Mixer{},
		limiter: turnLimiter{max: parameter.AudioMaxCuesPerTurn, turn: -1},
	}
}

// Initialize opens the speaker, repeated calls are no-ops
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferLength)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops queued cues and detaches from the speaker
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// Observe is an engine.Observer: it plays the cue for ev within the per-turn limit
func (p *CuePlayer) Observe(ev engine.Event) {
	cue, ok := CueFor(ev)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.limiter.allow(ev.Turn) {
		return
	}
	p.enqueue(cue, ev.Turn+1)
}

// Play queues c outside the turn limit
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.enqueue(c, time.Now().UnixNano())
}

// Played returns how many times c reached the mixer
func (p *CuePlayer) Played(c Cue) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(c) >= len(p.played) {
		return 0
	}
	return p.played[c]
}

// Caller holds mu
func (p *CuePlayer) enqueue(c Cue, seed int64) {
	var s beep.Streamer
	switch c {
	case CueBirth:
		s = NewChirp(sampleRate, parameter.BirthFreq, parameter.BirthDuration)
	case CuePredation:
		s = NewThud(sampleRate, parameter.PredationFreq, parameter.PredationDuration)
	case CueStarve:
		s = NewDecay(sampleRate, parameter.StarveDuration, seed)
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played[c]++
}
