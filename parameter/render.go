package parameter

// Render modes accepted by config and flags
const (
	RenderAuto  = "auto"
	RenderTcell = "tcell"
	RenderText  = "text"
	RenderNone  = "none"
)

// Terminal palette, RGB
var (
	ColorWall         = [3]int32{110, 110, 120}
	ColorPlant        = [3]int32{80, 200, 90}
	ColorPlantEater   = [3]int32{230, 170, 60}
	ColorWallFollower = [3]int32{90, 170, 230}
	ColorUnknown      = [3]int32{220, 80, 200}
	ColorStatusFg     = [3]int32{200, 200, 200}
	ColorStatusBg     = [3]int32{30, 30, 40}
)
