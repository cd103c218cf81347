package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Frame is an immutable copy of the world after a turn
// Safe to hand to other goroutines
type Frame struct {
	Turn       int64        `json:"turn"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Rows       []string     `json:"rows"`
	Population map[rune]int `json:"-"`
	Energy     float64      `json:"energy"`
	Stats      []string     `json:"stats,omitempty"`
}

// FrameSink consumes frames published by the scheduler
type FrameSink interface {
	Publish(f Frame) error
}

// Summary is a one-line status: turn, population per glyph, total energy
// Walls and other inert glyphs are included, sorted by glyph
func (f Frame) Summary() string {
	glyphs := make([]rune, 0, len(f.Population))
	for g := range f.Population {
		glyphs = append(glyphs, g)
	}
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i] < glyphs[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "turn %d", f.Turn)
	for _, g := range glyphs {
		fmt.Fprintf(&b, "  %c:%d", g, f.Population[g])
	}
	fmt.Fprintf(&b, "  energy %.1f", f.Energy)
	return b.String()
}

// Text joins rows with newlines, each row terminated
func (f Frame) Text() string {
	var b strings.Builder
	for _, row := range f.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}
