package repository

import "math"

func roundInt(v float64) int {
	return int(math.Round(v))
}
