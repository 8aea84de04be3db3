// Package pascalhost exposes a Pascal's-triangle row generator to
// WebAssembly guests as a wazero host module.
//
// The library mirrors the shape of a native extension module: the
// computation lives in a pure package, and a thin boundary layer registers
// it with the embedding runtime so guest code can call it by name.
//
// # Architecture Overview
//
//	pascalhost/          Root package with the guest Memory interface
//	├── triangle/        Pure row generation (the core algorithm)
//	├── host/            Host-function registry and the triangle host module
//	├── runtime/         High-level API for loading and running guests
//	├── errors/          Structured error types for debugging
//	└── cmd/pascalrow/   CLI: compute rows directly or through a guest
//
// # Quick Start
//
// Compute a row on the Go side:
//
//	row := triangle.Row(6) // [1 5 10 10 5 1]
//
// Expose the generator to a guest module:
//
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
// The guest imports functions from the "pascal:triangle/rows@0.1.0"
// namespace and receives each row as little-endian u32 values written into
// its own linear memory.
//
// # Thread Safety
//
// Runtime and Module are safe for concurrent use. Instance is NOT
// thread-safe; give each goroutine its own Instance or synchronize access
// externally. Row generation itself shares no state between calls.
package pascalhost
