// Package presentation is the host environment for action sheets.
//
// A Presenter keeps a stack of presented sheets. Each sheet gets a host bound to
// its own stack entry, so when the sheet asks to be dismissed exactly that sheet
// comes off the stack, even if another sheet was presented over it.
//
// # Basic Usage
//
//	p := presentation.New()
//	model := view.New()
//
//	sheet := p.Present("Which Mac Pro would you like to buy?", "", actions, model,
//	    presentation.OnDismiss(func() { fmt.Println("sheet closed") }),
//	)
//
//	// Input handling feeds the view model, which taps the controller.
//	model.HandleButton(constants.VirtualButtonA)
//
//	// A tap on the dimmed background.
//	p.DismissTop()
//
// The view model is bound to the controller automatically when it implements
// Bind(view.Tapper).
package presentation
