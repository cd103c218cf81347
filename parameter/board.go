package parameter

// Board generation defaults
const (
	// GenerateWidth and GenerateHeight size a generated board, rounded down to odd
	GenerateWidth  = 41
	GenerateHeight = 21

	// GenerateBraiding is the chance a dead end gets opened into a loop
	GenerateBraiding = 0.6

	// GenerateOpenness is the fraction of interior walls knocked out after carving
	GenerateOpenness = 0.35

	// Population densities as a fraction of free cells
	GeneratePlantDensity  = 0.12
	GenerateEaterDensity  = 0.02
	GenerateFollowerCount = 1
)

// Valley is the classic starting board
var Valley = []string{
	"############################",
	"#####                 ######",
	"##   ***                **##",
	"#   *##**         **  O  *##",
	"#    ***     O    ##**    *#",
	"#       O         ##***    #",
	"#                 ##**     #",
	"#   O       #*             #",
	"#*          #**       O    #",
	"#***        ##**    O    **#",
	"##****     ###***       *###",
	"############################",
}
