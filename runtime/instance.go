package runtime

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/pascal-host/errors"
)

// Instance is one instantiation of a Module. Not safe for concurrent use.
type Instance struct {
	module api.Module
}

// Call invokes an exported function with raw wasm values. Use the api
// package helpers (api.EncodeI32, api.DecodeI32) to pack arguments and
// unpack results.
func (i *Instance) Call(ctx context.Context, name string, args ...uint64) ([]uint64, error) {
	if i.module == nil {
		return nil, errors.NotInitialized(errors.PhaseCall, "instance")
	}
	fn := i.module.ExportedFunction(name)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseCall, "function", name)
	}
	results, err := fn.Call(ctx, args...)
	if err != nil {
		return nil, errors.Trap(name, err)
	}
	return results, nil
}

// Memory returns the instance's exported linear memory, or nil if the
// guest exports none.
func (i *Instance) Memory() *Memory {
	mem := i.module.Memory()
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem}
}

func (i *Instance) Close(ctx context.Context) error {
	return i.module.Close(ctx)
}
