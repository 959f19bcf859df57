package axd

import "math"

// prefixMultipliers maps the single-character SI prefixes Analysis
// Studio emits to their magnitude multipliers.
var prefixMultipliers = map[string]float64{
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"m": 1e-3,
}

// PrefixMultiplier returns the SI magnitude multiplier for a unit
// prefix string. Unrecognized or empty prefixes yield 1.
func PrefixMultiplier(prefix string) float64 {
	if m, ok := prefixMultipliers[prefix]; ok {
		return m
	}
	return 1.0
}

// NormalizeScanAngle maps an angle in degrees into (-180, 180].
// Non-finite input yields 0.
func NormalizeScanAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
