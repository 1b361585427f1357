package presentation

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
)

// StackEntry is one presented sheet.
type StackEntry struct {
	Sheet     *actionsheet.Controller
	Renderer  actionsheet.Renderer
	OnDismiss func()
}

// Stack holds presented sheets, topmost last.
type Stack struct {
	entries []*StackEntry
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*StackEntry, 0),
	}
}

// Push adds an entry on top.
func (s *Stack) Push(entry *StackEntry) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry
}

// Remove takes a specific entry out of the stack wherever it sits.
// Returns false if the entry is not on the stack.
func (s *Stack) Remove(entry *StackEntry) bool {
	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
