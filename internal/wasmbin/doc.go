// Package wasmbin encodes the minimal core wasm guest module used by the
// e2e tests and the CLI demo mode, so the repository needs no prebuilt
// .wasm artifact.
package wasmbin
