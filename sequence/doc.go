// Package sequence compiles symbol strings into timed step lists.
//
// A symbol string is a flat string over the alphabet ". - _ |": dot, dash,
// letter gap and word gap. Compilation expands every symbol into a fixed run
// of steps, each step lasting exactly one timing unit:
//
//	.  activate, deactivate
//	-  activate, hold, hold, deactivate
//	_  hold x4
//	|  hold x8
//
// A dash is therefore three units on, and the deactivate that closes every
// element doubles as the one-unit gap before the next. The length of a step
// list is the duration of the sequence in units.
package sequence
