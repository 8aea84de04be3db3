// Package runtime provides the high-level API for running guests against
// the triangle host.
//
// # Quick Start
//
//	ctx := context.Background()
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	if err := rt.RegisterHost(host.NewTriangle(nil)); err != nil {
//	    log.Fatal(err)
//	}
//
//	mod, err := rt.Load(ctx, wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inst, err := mod.Instantiate(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close(ctx)
//
//	status, err := inst.Call(ctx, "generate", api.EncodeI32(6), api.EncodeI32(0))
//	row, err := inst.Memory().ReadU32Slice(0, 6)
//
// Register all hosts before the first Load: binding instantiates one host
// module per namespace inside the wazero runtime, and late registrations
// are rejected.
//
// # Thread Safety
//
// Runtime and Module are safe for concurrent use; Instantiate can be
// called from multiple goroutines. Instance is NOT thread-safe.
package runtime
