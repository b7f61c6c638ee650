package configs

// First returns the value at path in the first file defining it, or the zero value. Load and decode errors panic.
func First[T any](loader Loader, path string) T {
	for value, err := range All[T](loader, path) {
		if err != nil {
			panic(err)
		}
		return value
	}
	var zero T
	return zero
}
