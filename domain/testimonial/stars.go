package testimonial

import "math"

// MaxStars is the length of every star row.
const MaxStars = 5

// Stars derives the star row for a rating: MaxStars flags with the first
// round-half-up(rating) set, clamped to [0, MaxStars]. A nil rating yields nil
// and no row is rendered.
func Stars(rating *float64) []bool {
	if rating == nil {
		return nil
	}

	r := *rating
	if math.IsNaN(r) {
		r = 0
	}
	filled := int(math.Max(0, math.Min(MaxStars, math.Floor(r+0.5))))

	row := make([]bool, MaxStars)
	for i := 0; i < filled; i++ {
		row[i] = true
	}
	return row
}

// Filled counts the set flags in a star row.
func Filled(row []bool) int {
	n := 0
	for _, on := range row {
		if on {
			n++
		}
	}
	return n
}
