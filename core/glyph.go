package core

// Glyphs shared by map literals, views and rendering
const (
	GlyphEmpty        = ' '
	GlyphWall         = '#'
	GlyphPlant        = '*'
	GlyphPlantEater   = 'O'
	GlyphWallFollower = '~'

	// GlyphBoundary is what a view reports past the grid edge
	GlyphBoundary = GlyphWall
)
