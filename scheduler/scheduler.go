// Package scheduler plays many sequences at once on a single shared clock.
//
// Every compiled step lasts exactly one unit, so advancing every running
// sequence by one step per tick keeps each sequence's internal timing while
// letting any number of them share the same clock. Nothing runs in
// parallel: within a tick, sequences are stepped in registration order, then
// the scheduler sleeps for one unit.
//
// The scheduler's unit replaces the Unit of every sequence it plays.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ezrec/keyer/channel"
	"github.com/ezrec/keyer/player"
	"github.com/ezrec/keyer/sequence"
)

// entry is the playback state of one registered sequence.
type entry struct {
	seq   *sequence.Sequence
	ch    channel.Channel
	index int // Next step to execute.
}

// Scheduler state.
type Scheduler struct {
	Verbose bool                                             // If set, logs every executed step.
	Sleep   func(ctx context.Context, d time.Duration) error // Wait between ticks; nil uses player.Sleep.

	unit    time.Duration
	ticks   int
	active  []*entry
	pending []*entry
	errs    []error
}

// New creates a scheduler ticking at bps beats per second.
func New(bps float64) (sched *Scheduler, err error) {
	unit, err := sequence.UnitFromRate(bps)
	if err != nil {
		return
	}

	sched = &Scheduler{unit: unit}
	return
}

// Unit returns the length of one tick.
func (sched *Scheduler) Unit() time.Duration {
	return sched.unit
}

// Ticks returns the number of ticks since the last reset.
func (sched *Scheduler) Ticks() int {
	return sched.ticks
}

// Active returns the number of sequences that will run on the next tick.
func (sched *Scheduler) Active() int {
	return len(sched.active) + len(sched.pending)
}

// Errors returns the runtime errors collected since the last reset.
func (sched *Scheduler) Errors() []error {
	return sched.errs
}

// Reset forgets all registered sequences, errors and the tick count.
func (sched *Scheduler) Reset() {
	sched.ticks = 0
	sched.active = nil
	sched.pending = nil
	sched.errs = nil
}

// AddSequence registers seq on its bound channel, starting at step 0 on the
// next tick. A sequence may be added more than once; every registration
// plays independently.
func (sched *Scheduler) AddSequence(seq *sequence.Sequence) (err error) {
	err = channel.Check(seq.Channel)
	if err != nil {
		return
	}

	sched.pending = append(sched.pending, &entry{seq: seq, ch: seq.Channel})

	if sched.Verbose {
		log.Printf("scheduler: add %q, %d steps, loop %v", seq.Name, seq.Len(), seq.Loop)
	}

	return
}

// step executes the current step of e, recovering any panic from its channel.
func (sched *Scheduler) step(e *entry) (err error) {
	step := e.seq.Step(e.index)

	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok {
				perr = fmt.Errorf("%v", r)
			}
			err = &ErrRuntime{Name: e.seq.Name, Tick: sched.ticks, Step: e.index, Err: perr}
		}
	}()

	if sched.Verbose {
		log.Printf("scheduler: %d %q[%d] %v", sched.ticks, e.seq.Name, e.index, step)
	}

	switch step {
	case sequence.STEP_ACTIVATE:
		e.ch.Activate()
	case sequence.STEP_DEACTIVATE:
		e.ch.Deactivate()
	case sequence.STEP_HOLD:
	}

	return
}

// Tick performs a single tick: one step of every running sequence, then a
// one unit sleep. done is set, without ticking, once nothing is running.
// The returned error is only ever from the sleep; failures of individual
// sequences are collected in Errors.
func (sched *Scheduler) Tick(ctx context.Context) (done bool, err error) {
	var running []*entry
	for _, e := range append(sched.active, sched.pending...) {
		if e.seq.Len() == 0 {
			if sched.Verbose {
				log.Printf("scheduler: %d %q empty", sched.ticks, e.seq.Name)
			}
			continue
		}
		running = append(running, e)
	}
	sched.pending = nil

	if len(running) == 0 {
		sched.active = nil
		done = true
		return
	}

	var next []*entry
	for _, e := range running {
		serr := sched.step(e)
		if serr != nil {
			if sched.Verbose {
				log.Printf("scheduler: %v", serr)
			}
			sched.errs = append(sched.errs, serr)
			continue
		}

		e.index++
		if e.index >= e.seq.Len() {
			if !e.seq.Loop {
				if sched.Verbose {
					log.Printf("scheduler: %d %q done", sched.ticks, e.seq.Name)
				}
				continue
			}
			e.index %= e.seq.Len()
		}
		next = append(next, e)
	}
	sched.active = next

	sched.ticks++

	sleep := sched.Sleep
	if sleep == nil {
		sleep = player.Sleep
	}
	err = sleep(ctx, sched.unit)

	return
}

// Run ticks until every sequence is done or ctx is cancelled. Cancellation
// is only observed between ticks. The result joins the context error, if
// any, with the sequence failures of this run only.
func (sched *Scheduler) Run(ctx context.Context) (err error) {
	first := len(sched.errs)

	for {
		err = ctx.Err()
		if err != nil {
			break
		}

		var done bool
		done, err = sched.Tick(ctx)
		if err != nil || done {
			break
		}
	}

	return errors.Join(append([]error{err}, sched.errs[first:]...)...)
}
