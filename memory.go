package pascalhost

// Memory is the slice of guest linear memory a host function writes results
// into. Implementations must bounds-check every access; offsets are byte
// offsets from the start of the guest's memory.
type Memory interface {
	ReadU32(offset uint32) (uint32, error)
	WriteU32(offset uint32, value uint32) error
	Size() uint32
}
