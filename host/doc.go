// Package host registers Go functions as wazero host modules and provides
// the triangle host, the boundary through which guests request rows.
//
// A Host is a struct whose exported methods become guest-callable
// functions, named by PascalCase-to-kebab-case conversion:
//
//	reg := host.NewRegistry()
//	if err := reg.RegisterHost(host.NewTriangle(logger)); err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Bind(ctx, wazeroRuntime); err != nil {
//	    log.Fatal(err)
//	}
//
// Input validation lives here, not in the generator: a guest-supplied
// length is checked before the triangle package ever sees it, and failures
// flow back to the guest as negative status codes rather than traps.
package host
