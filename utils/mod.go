package utils

// FindIndexFunc returns the index of the first element satisfying match, or -1.
func FindIndexFunc[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}

// All reports whether every element satisfies pred. It is true for an empty
// slice.
func All[T any](slice []T, pred func(T) bool) bool {
	return FindIndexFunc(slice, func(v T) bool { return !pred(v) }) == -1
}
