package ethvm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

//go:generate mockgen -source interface.go -destination interface_mocks.go -package ethvm

// OperandStack is the word stack of a frame. Pop fails with ErrStackUnderflow
// when the stack is empty.
type OperandStack interface {
	Len() int
	Push(*uint256.Int) error
	Pop() (uint256.Int, error)
}

// LinearMemory is the byte addressable memory of a frame. It only grows.
type LinearMemory interface {
	// Len returns the current size in bytes.
	Len() uint64
	// Extend makes r addressable. It is idempotent for covered ranges.
	Extend(r MemoryRange) error
	// GetCopy returns the bytes of a range made addressable by Extend.
	GetCopy(r MemoryRange) []byte
}

// GasLedger holds the gas left to a frame.
type GasLedger interface {
	Gas() uint64
	// UseGas debits gas and reports whether the balance sufficed. Nothing is
	// debited when it did not.
	UseGas(gas uint64) bool
}

// MemoryCostOracle prices memory expansion as a pure function of the current
// memory size and the range that must become addressable.
type MemoryCostOracle interface {
	MemoryExpansionCost(current uint64, r MemoryRange) (uint64, error)
}

// ContractRef is a reference to the contract's backing object
type ContractRef interface {
	Address() common.Address
}
