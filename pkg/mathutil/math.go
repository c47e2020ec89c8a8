// Package mathutil provides small integer math helper functions.
package mathutil

// Min calculates the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Max calculates the maximum of two integers.
func Max(a, b int) int {
	if a < b {
		return b
	}

	return a
}

// CeilDiv divides a by b rounding up. b must be positive.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
