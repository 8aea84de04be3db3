package host

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/pascal-host/errors"
)

// Host is the interface for struct-based host modules.
// All exported methods (except Namespace) are registered as host functions.
type Host interface {
	// Namespace returns the import module name guests use
	// (e.g., "pascal:triangle/rows@0.1.0").
	Namespace() string
}

// Registry collects host functions by namespace until they are bound to a
// wazero runtime.
type Registry struct {
	funcs map[string]map[string]any
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]map[string]any),
	}
}

// RegisterHost registers all exported methods of h as host functions.
// Method names are converted from PascalCase to kebab-case
// (RowChecked -> row-checked). Signatures are validated up front so a bad
// handler fails here rather than at Bind time.
func (r *Registry) RegisterHost(h Host) error {
	ns := h.Namespace()
	if ns == "" {
		return errors.InvalidInput(errors.PhaseHost, "namespace cannot be empty")
	}

	rv := reflect.ValueOf(h)
	rt := rv.Type()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcs[ns] == nil {
		r.funcs[ns] = make(map[string]any)
	}

	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)

		if !method.IsExported() || method.Name == "Namespace" {
			continue
		}

		name := toKebabCase(method.Name)
		handler := rv.Method(i).Interface()

		if _, _, _, err := compileHandler(handler); err != nil {
			return errors.Registration(errors.PhaseHost, ns, name, err)
		}
		r.funcs[ns][name] = handler
	}

	return nil
}

// RegisterFunc registers a single function under an explicit name, for
// cases where kebab-case conversion of a method name doesn't apply.
func (r *Registry) RegisterFunc(namespace, name string, fn any) error {
	if namespace == "" {
		return errors.InvalidInput(errors.PhaseHost, "namespace cannot be empty")
	}
	if name == "" {
		return errors.InvalidInput(errors.PhaseHost, "function name cannot be empty")
	}
	if _, _, _, err := compileHandler(fn); err != nil {
		return errors.Registration(errors.PhaseHost, namespace, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcs[namespace] == nil {
		r.funcs[namespace] = make(map[string]any)
	}
	r.funcs[namespace][name] = fn

	return nil
}

// Names returns the registered function names for a namespace.
func (r *Registry) Names(namespace string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs[namespace]))
	for name := range r.funcs[namespace] {
		names = append(names, name)
	}
	return names
}

// Bind instantiates one wazero host module per registered namespace.
// Must be called before instantiating guests that import these functions;
// the instantiated host modules live until the wazero runtime is closed.
func (r *Registry) Bind(ctx context.Context, rt wazero.Runtime) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for namespace, funcs := range r.funcs {
		builder := rt.NewHostModuleBuilder(namespace)
		for name, fn := range funcs {
			goFn, params, results, err := compileHandler(fn)
			if err != nil {
				return errors.Registration(errors.PhaseHost, namespace, name, err)
			}
			builder = builder.NewFunctionBuilder().
				WithGoModuleFunction(goFn, params, results).
				Export(name)
		}
		if _, err := builder.Instantiate(ctx); err != nil {
			return errors.Wrap(errors.PhaseHost, errors.KindInstantiation, err, "instantiate host module "+namespace)
		}
	}
	return nil
}

// toKebabCase converts PascalCase to kebab-case.
// An acronym followed by a word splits before the word
// (ParseHTTPRequest -> parse-http-request). A trailing all-caps run has no
// interior boundary to detect and stays one segment
// (GetURL -> get-url, GetHTTPURL -> get-httpurl).
func toKebabCase(s string) string {
	if len(s) == 0 {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsUpper(r) {
			acronymEnd := i + 1
			for acronymEnd < len(runes) && unicode.IsUpper(runes[acronymEnd]) {
				acronymEnd++
			}

			if acronymEnd > i+1 {
				// Last uppercase before lowercase starts next word, not part of acronym
				if acronymEnd < len(runes) && unicode.IsLower(runes[acronymEnd]) {
					acronymEnd--
				}
			}

			if i > 0 {
				result.WriteByte('-')
			}

			for j := i; j < acronymEnd; j++ {
				result.WriteRune(unicode.ToLower(runes[j]))
			}
			i = acronymEnd - 1 // -1 because loop will increment
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
