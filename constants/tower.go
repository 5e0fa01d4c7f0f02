package constants

// Tower Generation
const (
	// SeedPieces is the number of random pieces stacked on the opening pair
	SeedPieces = 10

	// LeftChance is the probability a free slot gets chopsticks on the left
	LeftChance = 0.45

	// RightChance is the probability a free slot gets chopsticks on the right
	RightChance = 0.45

	// BonusChance is the probability a new piece restores full health when chopped
	BonusChance = 0.05
)
