package strcoll

// Get returns the element of the slice at the given index or the empty string.
func Get(idx int, slice []string) string {
	if slice != nil && len(slice) > idx {
		return slice[idx]
	}
	return ""
}

// From returns the elements of the slice from the given index, or an empty slice.
func From(idx int, slice []string) []string {
	if slice != nil && len(slice) > idx {
		return slice[idx:]
	}
	return []string{}
}

// Contains returns true if s is contained in xs.
func Contains(s string, xs []string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
