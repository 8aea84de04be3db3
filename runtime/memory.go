package runtime

import (
	"encoding/binary"

	"github.com/tetratelabs/wazero/api"

	pascalhost "github.com/wippyai/pascal-host"
	"github.com/wippyai/pascal-host/errors"
)

// Memory provides bounds-checked little-endian access to an instance's
// linear memory.
type Memory struct {
	mem api.Memory
}

func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseMemory, uint64(offset), 4, m.mem.Size())
	}
	return v, nil
}

func (m *Memory) WriteU32(offset uint32, value uint32) error {
	if ok := m.mem.WriteUint32Le(offset, value); !ok {
		return errors.OutOfBounds(errors.PhaseMemory, uint64(offset), 4, m.mem.Size())
	}
	return nil
}

// ReadU32Slice reads count consecutive u32 values starting at offset.
// This is how a row written by the triangle host is read back into Go.
func (m *Memory) ReadU32Slice(offset uint32, count int) ([]uint32, error) {
	data, ok := m.mem.Read(offset, uint32(4*count))
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMemory, uint64(offset), uint64(4*count), m.mem.Size())
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return out, nil
}

func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

// Compile-time check that Memory implements pascalhost.Memory
var _ pascalhost.Memory = (*Memory)(nil)
