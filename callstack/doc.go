/*
Package callstack maintains a per-goroutine shadow call stack.

# Overview

Each Tracker owns the stack for the goroutine that constructed it, so Push
and Pop take no lock. A shared registry maps goroutine identity to its
Tracker so instrumentation hooks can find "the tracker for this goroutine"
without plumbing it through every call; only that registry is locked.

	tracker := callstack.New()
	defer tracker.Close()

	tracker.Push("process", "pipeline", 88, enterTime)
	defer tracker.Pop()

# Registration quirk

Constructing a second Tracker on a goroutine that already has one silently
replaces the registry entry (last-registered wins). This mirrors the
behavior hosts have come to rely on when recreating trackers after Close;
it is not enforced exclusivity.
*/
package callstack
