package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int32 { return p.Left + p.Right }

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int32 { return p.Top + p.Bottom }
