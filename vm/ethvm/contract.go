package ethvm

import (
	"github.com/ethereum/go-ethereum/common"
)

// AccountRef implements ContractRef.
type AccountRef common.Address

// Address casts AccountRef to a Address
func (ar AccountRef) Address() common.Address { return (common.Address)(ar) }

// Contract represents a contract in the state database. It is both the
// emitting address of a frame and its gas ledger.
type Contract struct {
	self ContractRef
	gas  uint64
}

// NewContract returns a new contract environment for the execution of EVM.
func NewContract(object ContractRef, gas uint64) *Contract {
	return &Contract{self: object, gas: gas}
}

// UseGas attempts the use gas and subtracts it and returns true on success
func (c *Contract) UseGas(gas uint64) (ok bool) {
	if c.gas < gas {
		return false
	}
	c.gas -= gas
	return true
}

// Gas returns the gas left.
func (c *Contract) Gas() uint64 {
	return c.gas
}

// Address returns the contracts address
func (c *Contract) Address() common.Address {
	return c.self.Address()
}
