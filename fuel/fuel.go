// Package fuel computes the fuel needed to launch modules of a given mass.
package fuel

// Required returns the fuel needed to launch mass, ignoring the mass of
// the fuel itself. Masses too small to need fuel return 0.
func Required(mass int) int {
	return max(mass/3-2, 0)
}

// Total returns the fuel needed to launch mass, including the fuel
// needed to carry that fuel, and so on until no more fuel is needed.
func Total(mass int) int {
	total := 0
	for f := Required(mass); f > 0; f = Required(f) {
		total += f
	}
	return total
}

// Sum applies f to each mass and returns the sum.
func Sum(masses []int, f func(int) int) int {
	total := 0
	for _, m := range masses {
		total += f(m)
	}
	return total
}
