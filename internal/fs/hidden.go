package fs

// IsHidden reports whether name follows the dot-file convention.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
