package parameter

// Energy economy of the lifelike rule set
const (
	// GrowGain is added by a successful Grow
	GrowGain = 0.5

	// MoveCost is paid per successful Move, a mover needs strictly more than this
	MoveCost = 1.0

	// ReproduceCostFactor multiplies offspring energy to get the parent's cost
	ReproduceCostFactor = 2.0

	// IdlePenalty is drained when an entity does nothing useful in a turn
	IdlePenalty = 0.2
)

// Rule set names accepted by config and flags
const (
	RulesLifelike = "lifelike"
	RulesBase     = "base"
)
