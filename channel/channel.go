// Package channel provides the output side of playback: anything that can be
// switched on and off.
//
// A channel is owned by the caller. Players and schedulers only invoke the
// two actions; they never configure or release the underlying resource.
package channel

import (
	"github.com/ezrec/keyer/fault"
)

type Channel interface {
	Activate()   // Drive the channel to its active level.
	Deactivate() // Return the channel to its idle level.
}

// Func adapts a pair of closures into a Channel.
type Func struct {
	On  func()
	Off func()
}

var _ Channel = (*Func)(nil)

func (fn *Func) Activate() {
	fn.On()
}

func (fn *Func) Deactivate() {
	fn.Off()
}

// Check verifies that both actions of ch can be invoked.
func Check(ch Channel) (err error) {
	switch ch := ch.(type) {
	case nil:
		err = fault.NoFunctionDefined("channel")
	case *Func:
		if ch == nil {
			err = fault.NoFunctionDefined("channel")
		} else {
			err = checkFunc(*ch)
		}
	}

	return
}

func checkFunc(fn Func) (err error) {
	if fn.On == nil {
		err = fault.NoFunctionDefined("activate")
		return
	}
	if fn.Off == nil {
		err = fault.NoFunctionDefined("deactivate")
		return
	}
	return
}
