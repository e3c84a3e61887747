package ethvm

// Memory implements a simple memory model for the ethereum virtual machine.
// It only ever grows, in steps of 32 byte words.
type Memory struct {
	store []byte
}

// NewMemory returns a new memory model.
func NewMemory() *Memory {
	return &Memory{}
}

// Set sets offset + size to value. The region must already be addressable.
func (m *Memory) Set(offset uint64, value []byte) error {
	if len(value) == 0 {
		return nil
	}
	end := offset + uint64(len(value))
	if end < offset || end > uint64(len(m.store)) {
		return ErrMemoryOverflow
	}
	copy(m.store[offset:end], value)
	return nil
}

// Extend grows the memory so that r is addressable. It is a no-op for empty
// ranges and ranges already covered.
func (m *Memory) Extend(r MemoryRange) error {
	end, ok := r.Uint64End()
	if !ok {
		return ErrMemoryOverflow
	}
	if end > uint64(len(m.store)) {
		m.Resize(toWordSize(end) * 32)
	}
	return nil
}

// Resize resizes the memory to size. It never shrinks.
func (m *Memory) Resize(size uint64) {
	if uint64(m.Len()) < size {
		m.store = append(m.store, make([]byte, size-uint64(m.Len()))...)
	}
}

// GetCopy returns a copy of the bytes in r. The range must have been extended
// before, an empty range yields an empty slice.
func (m *Memory) GetCopy(r MemoryRange) []byte {
	if r.Empty() {
		return []byte{}
	}
	offset, size := r.Offset.Uint64(), r.Size.Uint64()
	cpy := make([]byte, size)
	copy(cpy, m.store[offset:offset+size])
	return cpy
}

// Len returns the length of the backing slice
func (m *Memory) Len() uint64 {
	return uint64(len(m.store))
}

// Data returns the backing slice
func (m *Memory) Data() []byte {
	return m.store
}
