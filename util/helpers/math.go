package helpers

import "golang.org/x/exp/constraints"

// CeilDiv returns a / b rounded up. b must be positive.
func CeilDiv[T constraints.Integer](a, b T) T {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}
