package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neko-tower/tower"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbPlate       = tcell.NewRGBColor(230, 230, 220) // Porcelain white
	RgbPlateRim    = tcell.NewRGBColor(150, 150, 140) // Plate edge
	RgbPlateBonus  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbPlateFailed = tcell.NewRGBColor(200, 50, 50)   // Dark red
	RgbChopstick   = tcell.NewRGBColor(160, 110, 60)  // Bamboo
	RgbGround      = tcell.NewRGBColor(80, 80, 90)

	RgbCharacter       = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbCharacterFailed = tcell.NewRGBColor(255, 0, 0)   // Error red

	RgbTitle      = tcell.NewRGBColor(255, 255, 255)
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScore      = tcell.NewRGBColor(0, 255, 255)

	RgbHealthEmpty = tcell.NewRGBColor(50, 50, 50)
)

// GetHealthColor returns the fill color for a health ratio in [0, 1]
// Red when nearly empty through yellow to green when full
func GetHealthColor(ratio float64) tcell.Color {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	if ratio < 0.5 { // Red to Yellow
		t := ratio / 0.5
		return tcell.NewRGBColor(220, int32(50+(215-50)*t), 50)
	}
	// Yellow to Green
	t := (ratio - 0.5) / 0.5
	return tcell.NewRGBColor(int32(220-(220-50)*t), int32(215-(215-200)*t), 50)
}

// GetPlateColor returns the plate color for a piece color tag
func GetPlateColor(c tower.Color) tcell.Color {
	switch c {
	case tower.ColorBonus:
		return RgbPlateBonus
	case tower.ColorFailure:
		return RgbPlateFailed
	default:
		return RgbPlate
	}
}
