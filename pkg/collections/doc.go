// Package collections provides fine-grained reactive collections: Map,
// Set, List, Record, WeakMap and WeakSet.
//
// Every read registers a dependency on exactly what it observed. Get
// depends on one key's value, Has on one key's existence, Len and
// iteration on the key set. Every write invalidates exactly what it
// changed, all invalidations of one write inside a single runtime batch.
//
//	rt := reactive.NewRuntime()
//	todos := collections.NewMap[string, string](rt)
//
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    v, _ := todos.Get("a") // re-runs only when "a" changes
//	    fmt.Println(v)
//	    return nil
//	})
//	todos.Set("b", "milk") // no re-run
//	todos.Set("a", "eggs") // re-run
//
// Collections are not safe for concurrent use.
package collections
