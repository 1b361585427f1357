package sdlsheet

import (
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
)

// outcome is the state an ActionSheet loop ended in.
type outcome struct {
	tapped   *actionsheet.Action // Last action handed to the controller
	cancel   *actionsheet.Action // The sheet's resolved cancel action
	outside  bool                // Dismissed by a click on the dimmed background
	finished bool                // The presenter dismissed the sheet
}

// result classifies the outcome. A loop that ended without a dismissal means the
// window was closed.
func (o outcome) result() (*Result, error) {
	switch {
	case !o.finished:
		return nil, ErrCancelled
	case o.outside:
		return &Result{Cancelled: true}, nil
	case o.tapped != nil && o.tapped == o.cancel:
		return &Result{Action: o.tapped, Cancelled: true}, nil
	default:
		return &Result{Action: o.tapped}, nil
	}
}
