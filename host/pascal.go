package host

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	pascalhost "github.com/wippyai/pascal-host"
	"github.com/wippyai/pascal-host/errors"
	"github.com/wippyai/pascal-host/triangle"
)

// Namespace is the import module name under which guests reach the
// triangle host functions.
const Namespace = "pascal:triangle/rows@0.1.0"

// Status codes returned to guests by row and row-checked. Boundary errors
// are reported as values, not traps, so guests can branch on them.
const (
	StatusInvalidInput int32 = -1 // n is negative
	StatusOutOfBounds  int32 = -2 // row does not fit at ptr in guest memory
	StatusOverflow     int32 = -3 // row-checked only: coefficient exceeds u32
)

const maxPooledRowCapacity = 1024

var rowBuffers = sync.Pool{
	New: func() any {
		b := make([]uint32, 0, triangle.MaxLen32)
		return &b
	},
}

// Triangle exposes the row generator to guests. Each function validates
// its input at this boundary; the generator itself is never called with a
// negative length.
//
// Guest ABI (all i32):
//
//	row(n, ptr) -> status          wrapping arithmetic, writes n LE u32s at ptr
//	row-checked(n, ptr) -> status  same, but returns StatusOverflow past MaxSafeLen
//	max-safe-len() -> i32          largest n with exact u32 coefficients
//
// A non-negative status is the number of values written (always n).
type Triangle struct {
	log *zap.Logger
}

// NewTriangle creates the triangle host. A nil logger disables logging.
func NewTriangle(log *zap.Logger) *Triangle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Triangle{log: log}
}

func (t *Triangle) Namespace() string {
	return Namespace
}

// Row writes the n coefficients of row n-1 into the calling guest's memory
// at ptr, in little-endian u32 layout. Arithmetic wraps past MaxSafeLen.
func (t *Triangle) Row(ctx context.Context, mod api.Module, n int32, ptr uint32) int32 {
	return t.rowInto(guestMemory{mod.Memory()}, n, ptr, false)
}

// RowChecked is Row with overflow detection instead of wraparound.
func (t *Triangle) RowChecked(ctx context.Context, mod api.Module, n int32, ptr uint32) int32 {
	return t.rowInto(guestMemory{mod.Memory()}, n, ptr, true)
}

// MaxSafeLen reports triangle.MaxLen32 so guests can pick between row and
// row-checked.
func (t *Triangle) MaxSafeLen() int32 {
	return triangle.MaxLen32
}

// rowInto is the boundary core: validate, generate, copy out. The row
// buffer never outlives the call; its contents are read exactly once while
// being copied into guest memory.
func (t *Triangle) rowInto(mem pascalhost.Memory, n int32, ptr uint32, checked bool) int32 {
	if n < 0 {
		t.log.Warn("rejected row request", zap.Int32("n", n))
		return StatusInvalidInput
	}

	end := uint64(ptr) + 4*uint64(n)
	if end > uint64(mem.Size()) {
		t.log.Warn("row does not fit in guest memory",
			zap.Int32("n", n),
			zap.Uint32("ptr", ptr),
			zap.Uint32("memory_size", mem.Size()))
		return StatusOutOfBounds
	}

	var row []uint32
	if checked {
		var err error
		row, err = triangle.RowChecked(int(n))
		if err != nil {
			t.log.Warn("row overflows uint32", zap.Int32("n", n), zap.Error(err))
			return StatusOverflow
		}
	} else {
		buf := rowBuffers.Get().(*[]uint32)
		defer func() {
			if cap(*buf) <= maxPooledRowCapacity {
				rowBuffers.Put(buf)
			}
		}()
		*buf = triangle.AppendRow((*buf)[:0], int(n))
		row = *buf
	}

	for i, v := range row {
		if err := mem.WriteU32(ptr+uint32(4*i), v); err != nil {
			return StatusOutOfBounds
		}
	}

	t.log.Debug("served row", zap.Int32("n", n), zap.Uint32("ptr", ptr), zap.Bool("checked", checked))
	return n
}

// guestMemory adapts wazero's api.Memory to the pascalhost.Memory surface.
type guestMemory struct {
	mem api.Memory
}

func (g guestMemory) ReadU32(offset uint32) (uint32, error) {
	v, ok := g.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseMemory, uint64(offset), 4, g.mem.Size())
	}
	return v, nil
}

func (g guestMemory) WriteU32(offset uint32, value uint32) error {
	if ok := g.mem.WriteUint32Le(offset, value); !ok {
		return errors.OutOfBounds(errors.PhaseMemory, uint64(offset), 4, g.mem.Size())
	}
	return nil
}

func (g guestMemory) Size() uint32 {
	return g.mem.Size()
}

// Compile-time check that guestMemory implements pascalhost.Memory
var _ pascalhost.Memory = guestMemory{}
