package wasmbin

// Section IDs of the core wasm binary format.
const (
	secType   = 1
	secImport = 2
	secFunc   = 3
	secMemory = 5
	secExport = 7
	secCode   = 10
)

const (
	valI32   = 0x7f
	funcType = 0x60

	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b

	importFunc = 0x00
	exportFunc = 0x00
	exportMem  = 0x02
)

var header = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// BuildGuest encodes a minimal core wasm module that imports the triangle
// host functions from namespace and forwards to them:
//
//	(import namespace "row"          (func (param i32 i32) (result i32)))
//	(import namespace "row-checked"  (func (param i32 i32) (result i32)))
//	(import namespace "max-safe-len" (func (result i32)))
//	(memory (export "memory") 1)
//	(func (export "generate")         ...calls row)
//	(func (export "generate-checked") ...calls row-checked)
//	(func (export "limit")            ...calls max-safe-len)
//
// It stands in for a real guest in tests and the demo mode of the CLI.
func BuildGuest(namespace string) []byte {
	w := NewWriter()
	w.WriteBytes(header)

	// type 0: (i32, i32) -> i32; type 1: () -> i32
	types := NewWriter()
	types.WriteU32(2)
	types.Byte(funcType)
	types.WriteU32(2)
	types.Byte(valI32)
	types.Byte(valI32)
	types.WriteU32(1)
	types.Byte(valI32)
	types.Byte(funcType)
	types.WriteU32(0)
	types.WriteU32(1)
	types.Byte(valI32)
	w.Section(secType, types)

	imports := NewWriter()
	imports.WriteU32(3)
	for _, imp := range []struct {
		name    string
		typeIdx uint32
	}{
		{"row", 0},
		{"row-checked", 0},
		{"max-safe-len", 1},
	} {
		imports.WriteName(namespace)
		imports.WriteName(imp.name)
		imports.Byte(importFunc)
		imports.WriteU32(imp.typeIdx)
	}
	w.Section(secImport, imports)

	// Defined functions take indices 3..5 after the three imports.
	funcs := NewWriter()
	funcs.WriteU32(3)
	funcs.WriteU32(0)
	funcs.WriteU32(0)
	funcs.WriteU32(1)
	w.Section(secFunc, funcs)

	mems := NewWriter()
	mems.WriteU32(1)
	mems.Byte(0x00) // min only
	mems.WriteU32(1)
	w.Section(secMemory, mems)

	exports := NewWriter()
	exports.WriteU32(4)
	exports.WriteName("memory")
	exports.Byte(exportMem)
	exports.WriteU32(0)
	exports.WriteName("generate")
	exports.Byte(exportFunc)
	exports.WriteU32(3)
	exports.WriteName("generate-checked")
	exports.Byte(exportFunc)
	exports.WriteU32(4)
	exports.WriteName("limit")
	exports.Byte(exportFunc)
	exports.WriteU32(5)
	w.Section(secExport, exports)

	code := NewWriter()
	code.WriteU32(3)
	writeBody(code, forwardBody(0))
	writeBody(code, forwardBody(1))
	writeBody(code, []byte{opCall, 2, opEnd})
	w.Section(secCode, code)

	return w.Bytes()
}

// forwardBody forwards the two i32 params to the imported function callee.
func forwardBody(callee byte) []byte {
	return []byte{opLocalGet, 0, opLocalGet, 1, opCall, callee, opEnd}
}

func writeBody(code *Writer, instrs []byte) {
	body := NewWriter()
	body.WriteU32(0) // no locals
	body.WriteBytes(instrs)
	code.WriteU32(uint32(body.Len()))
	code.WriteBytes(body.Bytes())
}
