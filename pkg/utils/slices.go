package utils

// DedupeBy removes elements whose key was already seen, keeping the first
// occurrence and the original order.
func DedupeBy[T any, K comparable](in []T, key func(T) K) []T {
	seen := make(map[K]bool)
	out := []T{}
	for _, v := range in {
		k := key(v)
		if _, ok := seen[k]; !ok {
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}
