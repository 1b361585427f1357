package presentation_test

import (
	"fmt"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/presentation"
	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/view"
)

// Example drives a sheet with virtual buttons through its confirmation step.
func Example() {
	p := presentation.New()
	model := view.New()

	actions := []*actionsheet.Action{
		actionsheet.NewAction("Delete", actionsheet.HasConfirmation("Delete Something", "Cannot be undone", "Delete"), func(*actionsheet.Action) {
			fmt.Println("deleted")
		}),
		actionsheet.NewAction("Cancel", actionsheet.StyleCancel, nil),
	}

	p.Present("Edit", "", actions, model, presentation.OnDismiss(func() { fmt.Println("closed") }))

	model.HandleButton(constants.VirtualButtonA)
	fmt.Println(model.Header().Title)
	for _, row := range model.Rows() {
		fmt.Println(row.Entry.Action.Title(), row.Focused)
	}

	model.HandleButton(constants.VirtualButtonLeft)
	model.HandleButton(constants.VirtualButtonA)
	fmt.Println("presented:", p.Len())

	// Output:
	// Delete Something
	// Delete false
	// Cancel true
	// deleted
	// closed
	// presented: 0
}
