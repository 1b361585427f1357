package actionsheet

// ValidateActions checks that at most one action has the cancel style.
// Nil entries are ignored.
func ValidateActions(actions []*Action) error {
	count := 0
	for _, a := range actions {
		if a != nil && isCancel(a.style) {
			count++
		}
	}

	if count > 1 {
		return &MultipleCancelActionsError{Count: count}
	}
	return nil
}

// FilterActions returns the non-cancel actions in insertion order, dropping nil entries.
func FilterActions(actions []*Action) []*Action {
	filtered := make([]*Action, 0, len(actions))
	for _, a := range actions {
		if a != nil && !isCancel(a.style) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ResolveCancelAction returns the first cancel action in list order. When the
// list has none, it returns a new cancel action with the given title and no handler.
func ResolveCancelAction(actions []*Action, title string) *Action {
	for _, a := range actions {
		if a != nil && isCancel(a.style) {
			return a
		}
	}
	return NewAction(title, StyleCancel, nil)
}
