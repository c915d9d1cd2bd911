// Package reactive is a small fine-grained reactive runtime: signals,
// memos, effects, owners and batches, tracked per goroutine.
//
// # Tracking
//
// Reading a Signal, Memo or Trigger while an effect or memo runs subscribes
// that computation. Subscriptions are rebuilt on every run, so a
// computation only depends on what its last run read.
//
//	count := reactive.NewSignal(0)
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    fmt.Println("count:", count.Get())
//	    return nil
//	})
//	count.Set(1) // prints "count: 1"
//
// # Batching
//
// Batch defers notifications until the outermost batch returns and
// delivers each listener once, however many of its sources changed.
//
// # Caches
//
// Runtime implements trackcache.Runtime. Its cells are Triggers: valueless
// signals whose Notify always wakes every subscriber.
//
//	rt := reactive.NewRuntime()
//	todos := collections.NewMap[string, Todo](rt)
//
// # Owners
//
// Effects created inside WithOwner are queued on the owner when notified
// and re-run by Owner.RunPendingEffects. Effects created without an owner
// re-run synchronously.
package reactive
