// Package path holds the action sequences carried by frontier entries.
package path

// Extend returns a new path made of prefix followed by action.
// The prefix is shared by sibling entries, so it is copied rather than appended to.
func Extend[A any](prefix []A, action A) []A {
	extended := make([]A, len(prefix)+1)
	copy(extended, prefix)
	extended[len(prefix)] = action
	return extended
}

// Clone copies a path so callers can keep it after the search state is gone.
func Clone[A any](actions []A) []A {
	if actions == nil {
		return nil
	}
	cloned := make([]A, len(actions))
	copy(cloned, actions)
	return cloned
}
