package runtime

import (
	"context"
	"sort"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/pascal-host/errors"
)

// Module is a compiled guest, ready to instantiate.
type Module struct {
	runtime  *Runtime
	compiled wazero.CompiledModule
}

// Exports returns the names of the module's exported functions, sorted.
func (m *Module) Exports() []string {
	defs := m.compiled.ExportedFunctions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instantiate creates a fresh instance with its own linear memory.
// Instances are anonymous, so a module can be instantiated many times;
// safe to call from multiple goroutines.
func (m *Module) Instantiate(ctx context.Context) (*Instance, error) {
	cfg := wazero.NewModuleConfig().WithName("")
	mod, err := m.runtime.runtime.InstantiateModule(ctx, m.compiled, cfg)
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	return &Instance{module: mod}, nil
}

func (m *Module) Close(ctx context.Context) error {
	return m.compiled.Close(ctx)
}
