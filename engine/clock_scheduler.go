package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/parameter"
)

// ClockScheduler runs world turns on a fixed interval
// It owns all world access once started: read the board through Snapshot
type ClockScheduler struct {
	world *World
	mu    sync.Mutex // guards world

	tickInterval time.Duration
	limit        int64
	tickCount    atomic.Int64

	sinksMu sync.RWMutex
	sinks   []FrameSink

	isPaused atomic.Bool
	stepChan chan struct{}

	stopChan chan struct{}
	stopOnce sync.Once
	doneChan chan struct{}
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler, interval <= 0 uses the default
func NewClockScheduler(world *World, interval time.Duration) *ClockScheduler {
	if interval <= 0 {
		interval = parameter.TurnInterval
	}
	return &ClockScheduler{
		world:        world,
		tickInterval: interval,
		stepChan:     make(chan struct{}, 1),
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// SetLimit stops the loop after n turns, 0 runs until stopped
// Must be called before Start
func (cs *ClockScheduler) SetLimit(n int64) {
	cs.limit = n
}

// AddSink registers a frame consumer, the current frame is published to it immediately
func (cs *ClockScheduler) AddSink(s FrameSink) {
	cs.sinksMu.Lock()
	cs.sinks = append(cs.sinks, s)
	cs.sinksMu.Unlock()

	if err := s.Publish(cs.Snapshot()); err != nil {
		log.Printf("scheduler: initial publish failed: %v", err)
	}
}

// Start launches the loop, later calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the loop and waits for it to exit; idempotent
// Sinks run on the loop goroutine and must use RequestStop instead
func (cs *ClockScheduler) Stop() {
	cs.RequestStop()
	if cs.running.Load() {
		<-cs.doneChan
	}
}

// RequestStop asks the loop to exit after the current turn without waiting
// Safe to call from a sink's Publish; watch Done for the exit
func (cs *ClockScheduler) RequestStop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}

// Done is closed when the loop exits, by Stop or by reaching the limit
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.doneChan
}

// Run starts the loop and blocks until ctx ends or the limit is reached
func (cs *ClockScheduler) Run(ctx context.Context) error {
	cs.Start()
	select {
	case <-ctx.Done():
		cs.Stop()
		return ctx.Err()
	case <-cs.doneChan:
		return nil
	}
}

// Pause suspends ticking, Step still advances
func (cs *ClockScheduler) Pause() { cs.isPaused.Store(true) }

// Resume continues ticking
func (cs *ClockScheduler) Resume() { cs.isPaused.Store(false) }

// Toggle flips pause state and returns the new one
func (cs *ClockScheduler) Toggle() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused reports pause state
func (cs *ClockScheduler) IsPaused() bool { return cs.isPaused.Load() }

// Step requests a single turn, intended for use while paused
// Requests made while one is pending are merged
func (cs *ClockScheduler) Step() {
	select {
	case cs.stepChan <- struct{}{}:
	default:
	}
}

// TickCount returns turns run by this scheduler
func (cs *ClockScheduler) TickCount() int64 {
	return cs.tickCount.Load()
}

// Snapshot copies the current board under the world lock
func (cs *ClockScheduler) Snapshot() Frame {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.world.Frame()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer close(cs.doneChan)
	log.Printf("scheduler: started, interval=%s limit=%d", cs.tickInterval, cs.limit)

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		if cs.limit > 0 && cs.tickCount.Load() >= cs.limit {
			log.Printf("scheduler: turn limit %d reached", cs.limit)
			return
		}

		// A pending stop wins over a ready tick
		select {
		case <-cs.stopChan:
			log.Printf("scheduler: stopped after %d turns", cs.tickCount.Load())
			return
		default:
		}

		select {
		case <-cs.stopChan:
			log.Printf("scheduler: stopped after %d turns", cs.tickCount.Load())
			return
		case <-cs.stepChan:
			cs.processTick()
		case <-ticker.C:
			if cs.isPaused.Load() {
				continue
			}
			cs.processTick()
		}
	}
}

func (cs *ClockScheduler) processTick() {
	cs.mu.Lock()
	cs.world.Turn()
	frame := cs.world.Frame()
	cs.mu.Unlock()

	cs.tickCount.Add(1)

	cs.sinksMu.RLock()
	sinks := make([]FrameSink, len(cs.sinks))
	copy(sinks, cs.sinks)
	cs.sinksMu.RUnlock()

	for _, s := range sinks {
		if err := s.Publish(frame); err != nil {
			log.Printf("scheduler: publish turn %d: %v", frame.Turn, err)
		}
	}
}
