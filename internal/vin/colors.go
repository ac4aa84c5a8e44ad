package vin

// Color is an RGB paint or trim sample.
type Color struct {
	R, G, B uint8
}

var (
	bodyColourSwatches = map[string]Color{
		"A": {64, 64, 64},
		"B": {240, 240, 240},
		"C": {210, 180, 140},
		"D": {80, 80, 80},
		"E": {0, 80, 200},
		"F": {255, 220, 40},
		"G": {10, 10, 60},
		"H": {180, 0, 0},
		"I": {120, 80, 40},
		"J": {200, 0, 0},
		"K": {0, 200, 80},
		"L": {255, 255, 255},
		"M": {120, 255, 120},
		"R": {160, 0, 160},
		"T": {255, 255, 0},
		"U": {120, 180, 255},
		"V": {255, 120, 0},
		"X": {0, 0, 120},
		"Y": {212, 175, 55}, // gold
	}

	vinylRoofSwatches = map[string]Color{
		"-": {200, 200, 200},
		"A": {20, 20, 20},
		"B": {255, 255, 255},
		"C": {210, 180, 140},
		"K": {0, 80, 200},
		"M": {80, 40, 20},
	}

	interiorTrimSwatches = map[string]Color{
		"N": {200, 0, 0},
		"A": {20, 20, 20},
		"K": {210, 180, 140},
		"F": {0, 80, 200},
		"Y": {212, 175, 55},
	}
)

// Swatch returns the sample colour for a colour-bearing field. A painted
// vinyl roof takes the body colour of r when r is given, and has no
// swatch when that body colour is unknown.
func Swatch(key, code string, r *Result) (Color, bool) {
	var table map[string]Color
	switch key {
	case KeyBodyColour:
		table = bodyColourSwatches
	case KeyVinylRoof:
		if code == NotFitted && r != nil {
			c, ok := bodyColourSwatches[r.Code(KeyBodyColour)]
			return c, ok
		}
		table = vinylRoofSwatches
	case KeyInteriorTrim:
		table = interiorTrimSwatches
	default:
		return Color{}, false
	}
	c, ok := table[code]
	return c, ok
}
