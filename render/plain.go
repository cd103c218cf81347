package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/lixenwraith/vi-life/engine"
)

// Plain appends every frame to a writer: status line, board, blank line
type Plain struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Publish(f engine.Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := fmt.Fprintf(p.out, "%s\n%s\n", f.Summary(), f.Text()); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}
