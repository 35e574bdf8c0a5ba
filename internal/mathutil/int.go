package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FloorDiv divides a by a positive b rounding toward negative infinity, so that
// world coordinates just left of the origin land on tile -1 instead of tile 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// WrapInt maps x into [0, n) for positive n (search: int-math).
func WrapInt(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}
