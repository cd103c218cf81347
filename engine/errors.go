package engine

import "errors"

// Construction errors, a world that fails to build never runs
var (
	ErrEmptyMap     = errors.New("map has no rows")
	ErrRaggedMap    = errors.New("map rows differ in length")
	ErrUnknownGlyph = errors.New("glyph not in legend")
	ErrNilEntity    = errors.New("legend factory returned no entity")
)
