package host

import (
	"context"
	"reflect"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/pascal-host/errors"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	modType = reflect.TypeOf((*api.Module)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// compileHandler lowers a Go function to a wazero GoModuleFunc together
// with its wasm parameter and result types.
//
// Supported shapes: an optional leading context.Context, an optional
// api.Module (the calling guest, for memory access), then any number of
// int32/uint32/int64/uint64/float32/float64 parameters. Results: at most
// one of the same kinds, plus an optional trailing error. A non-nil error
// traps the guest.
func compileHandler(fn any) (api.GoModuleFunc, []api.ValueType, []api.ValueType, error) {
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		return nil, nil, nil, errors.TypeMismatch(errors.PhaseHost, rt.String(), "handler must be a function")
	}

	in := 0
	wantsCtx := in < rt.NumIn() && rt.In(in) == ctxType
	if wantsCtx {
		in++
	}
	wantsMod := in < rt.NumIn() && rt.In(in) == modType
	if wantsMod {
		in++
	}

	var paramTypes []reflect.Type
	var params []api.ValueType
	for ; in < rt.NumIn(); in++ {
		pt := rt.In(in)
		vt, ok := valueTypeOf(pt)
		if !ok {
			return nil, nil, nil, errors.TypeMismatch(errors.PhaseHost, pt.String(), "unsupported parameter type")
		}
		paramTypes = append(paramTypes, pt)
		params = append(params, vt)
	}

	numOut := rt.NumOut()
	hasErr := numOut > 0 && rt.Out(numOut-1) == errType
	if hasErr {
		numOut--
	}
	if numOut > 1 {
		return nil, nil, nil, errors.TypeMismatch(errors.PhaseHost, rt.String(), "at most one non-error result")
	}
	var results []api.ValueType
	if numOut == 1 {
		vt, ok := valueTypeOf(rt.Out(0))
		if !ok {
			return nil, nil, nil, errors.TypeMismatch(errors.PhaseHost, rt.Out(0).String(), "unsupported result type")
		}
		results = append(results, vt)
	}

	call := func(ctx context.Context, mod api.Module, stack []uint64) {
		args := make([]reflect.Value, 0, rt.NumIn())
		if wantsCtx {
			args = append(args, reflect.ValueOf(ctx))
		}
		if wantsMod {
			args = append(args, reflect.ValueOf(mod))
		}
		for i, pt := range paramTypes {
			args = append(args, decodeValue(pt, stack[i]))
		}

		out := rv.Call(args)

		if hasErr {
			if errv := out[len(out)-1]; !errv.IsNil() {
				// Panicking inside a host function traps the calling guest.
				panic(errv.Interface().(error))
			}
		}
		if numOut == 1 {
			stack[0] = encodeValue(out[0])
		}
	}

	return call, params, results, nil
}

func valueTypeOf(t reflect.Type) (api.ValueType, bool) {
	switch t.Kind() {
	case reflect.Int32, reflect.Uint32:
		return api.ValueTypeI32, true
	case reflect.Int64, reflect.Uint64:
		return api.ValueTypeI64, true
	case reflect.Float32:
		return api.ValueTypeF32, true
	case reflect.Float64:
		return api.ValueTypeF64, true
	default:
		return 0, false
	}
}

func decodeValue(t reflect.Type, raw uint64) reflect.Value {
	switch t.Kind() {
	case reflect.Int32:
		return reflect.ValueOf(api.DecodeI32(raw)).Convert(t)
	case reflect.Uint32:
		return reflect.ValueOf(api.DecodeU32(raw)).Convert(t)
	case reflect.Int64:
		return reflect.ValueOf(int64(raw)).Convert(t)
	case reflect.Uint64:
		return reflect.ValueOf(raw).Convert(t)
	case reflect.Float32:
		return reflect.ValueOf(api.DecodeF32(raw)).Convert(t)
	default:
		return reflect.ValueOf(api.DecodeF64(raw)).Convert(t)
	}
}

func encodeValue(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Int32:
		return api.EncodeI32(int32(v.Int()))
	case reflect.Uint32:
		return api.EncodeU32(uint32(v.Uint()))
	case reflect.Int64:
		return api.EncodeI64(v.Int())
	case reflect.Uint64:
		return v.Uint()
	case reflect.Float32:
		return api.EncodeF32(float32(v.Float()))
	default:
		return api.EncodeF64(v.Float())
	}
}
