package report

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DoaneBins returns the number of histogram bins Doane's rule picks for x.
func DoaneBins(x []float64) int {
	n := float64(len(x))
	if len(x) < 3 {
		return 1
	}

	mean, std := stat.PopMeanStdDev(x, nil)
	if std == 0 {
		return 1
	}

	var m3 float64
	for _, v := range x {
		d := (v - mean) / std
		m3 += d * d * d
	}
	g1 := m3 / n
	sigmaG1 := math.Sqrt(6 * (n - 2) / ((n + 1) * (n + 3)))

	k := 1 + math.Log2(n) + math.Log2(1+math.Abs(g1)/sigmaG1)
	return int(math.Ceil(k))
}
