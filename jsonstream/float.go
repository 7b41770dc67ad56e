package jsonstream

import (
	"math"
	"strconv"
)

// formatFloat renders f as a JSON number token: shortest round-trip
// decimal text, no surrounding quotes. Returns an error if f is NaN or
// infinite, diverging deliberately from implementations that encode
// those as JSON null.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", newErrorf("%v is not representable in strict JSON (NaN/Infinity rejected)", f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
