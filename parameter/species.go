package parameter

// Plant
const (
	// PlantEnergyMin is the floor of a plant's random starting energy
	PlantEnergyMin = 3.0

	// PlantEnergySpan is the width of the starting energy range, [min, min+span)
	PlantEnergySpan = 4.0

	// PlantReproduceAbove is the energy a plant must exceed to seed a neighbour
	PlantReproduceAbove = 15.0

	// PlantGrowBelow caps photosynthesis, at or above it a crowded plant idles
	PlantGrowBelow = 20.0
)

// PlantEater
const (
	// PlantEaterEnergy is a plant eater's fixed starting energy
	PlantEaterEnergy = 20.0

	// PlantEaterReproduceAbove is the energy an eater must exceed to reproduce
	PlantEaterReproduceAbove = 60.0
)

// WallFollower
const (
	// WallFollowerEnergy keeps followers alive for a while under metabolic rules
	WallFollowerEnergy = 20.0
)
