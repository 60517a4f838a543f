package utils

// Reverses the list in-place
func Reverse[K interface{}](list []K) {
	last := len(list) - 1
	for i := 0; i < len(list)/2; i++ {
		list[i], list[last-i] = list[last-i], list[i]
	}
}

// CloneSlice creates a copy of the original slice
//
// A nil slice is returned as an empty, non-nil slice.
func CloneSlice[K interface{}](original []K) []K {
	cloned := make([]K, len(original))
	copy(cloned, original)
	return cloned
}
