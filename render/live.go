package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/gosuri/uilive"

	"github.com/lixenwraith/vi-life/engine"
)

// Live redraws the latest frame in place, the previous one is erased
type Live struct {
	mu sync.Mutex
	w  *uilive.Writer
}

func NewLive(out io.Writer) *Live {
	w := uilive.New()
	w.Out = out
	return &Live{w: w}
}

func (l *Live) Publish(f engine.Frame) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintf(l.w, "%s%s\n", f.Text(), f.Summary()); err != nil {
		return fmt.Errorf("render: buffer frame: %w", err)
	}
	if err := l.w.Flush(); err != nil {
		return fmt.Errorf("render: flush frame: %w", err)
	}
	return nil
}
