package vars

// FirstNonZero returns the first non-zero value and its index. The index is -1 if all values are zero.
func FirstNonZero[T comparable](values ...T) (T, int) {
	var zero T
	for i, value := range values {
		if value != zero {
			return value, i
		}
	}
	return zero, -1
}
