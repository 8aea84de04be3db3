package runtime

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/pascal-host/errors"
	"github.com/wippyai/pascal-host/host"
)

// Runtime owns a wazero runtime plus the host functions registered with it.
type Runtime struct {
	runtime wazero.Runtime
	hosts   *host.Registry
	log     *zap.Logger

	mu    sync.Mutex
	bound bool
}

func New(ctx context.Context, opts ...Option) (*Runtime, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.memoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.memoryLimitPages)
	}

	return &Runtime{
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		hosts:   host.NewRegistry(),
		log:     cfg.log,
	}, nil
}

// Close releases all runtime resources.
// All instances must be closed before calling this.
func (r *Runtime) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// RegisterHost registers all exported methods of h as host functions.
// Must be called BEFORE the first Load; host modules are instantiated once
// and live for the lifetime of the runtime.
func (r *Runtime) RegisterHost(h host.Host) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		return errors.InvalidInput(errors.PhaseHost, "hosts already bound; register before the first Load")
	}
	return r.hosts.RegisterHost(h)
}

// RegisterFunc registers a single host function under an explicit name.
func (r *Runtime) RegisterFunc(namespace, name string, fn any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		return errors.InvalidInput(errors.PhaseHost, "hosts already bound; register before the first Load")
	}
	return r.hosts.RegisterFunc(namespace, name, fn)
}

func (r *Runtime) Hosts() *host.Registry {
	return r.hosts
}

// Load compiles a core wasm module. The first Load binds all registered
// host modules into the runtime.
func (r *Runtime) Load(ctx context.Context, wasm []byte) (*Module, error) {
	if err := r.bind(ctx); err != nil {
		return nil, errors.Load("bind hosts", err)
	}

	compiled, err := r.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}
	r.log.Debug("compiled module", zap.Int("wasm_bytes", len(wasm)))

	return &Module{
		runtime:  r,
		compiled: compiled,
	}, nil
}

func (r *Runtime) bind(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bound {
		return nil
	}
	if err := r.hosts.Bind(ctx, r.runtime); err != nil {
		return err
	}
	r.bound = true
	return nil
}
