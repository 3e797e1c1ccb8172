package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// SwapNeighbor swaps items[i] with items[i+delta] when both indexes are in
// range and reports whether anything moved. delta is -1 (up) or +1 (down).
func SwapNeighbor[T any](items []T, i, delta int) bool {
	j := i + delta
	if i < 0 || i >= len(items) || j < 0 || j >= len(items) || i == j {
		return false
	}
	items[i], items[j] = items[j], items[i]
	return true
}
