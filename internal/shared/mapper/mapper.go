package mapper

// MapSlice applies fn to every element of in and returns the mapped slice.
func MapSlice[T any, D any](in []T, fn func(T) D) []D {
	if in == nil {
		return nil
	}

	out := make([]D, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}
