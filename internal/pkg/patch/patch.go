package patch

// Apply calls set with the pointed-to value only when ptr is non-nil.
// Used for PATCH-style partial updates where nil means "leave unchanged".
func Apply[T any](ptr *T, set func(T) error) error {
	if ptr == nil {
		return nil
	}
	return set(*ptr)
}
