package ethvm

import (
	"github.com/CaduceusMetaverseProtocol/MetaVM/core"
)

// ScopeContext contains the things that are per-call, such as stack and memory,
// but not transients like pc and gas. It is owned by exactly one interpreter
// loop at a time.
type ScopeContext struct {
	Memory   LinearMemory
	Stack    OperandStack
	Contract ContractRef
	Gas      GasLedger
	// Logs is appended to by the LOG instructions only.
	Logs []*core.Log
}

// NewScopeContext builds a frame around a contract that is also its gas
// ledger.
func NewScopeContext(contract *Contract, stack OperandStack, memory LinearMemory) *ScopeContext {
	return &ScopeContext{
		Memory:   memory,
		Stack:    stack,
		Contract: contract,
		Gas:      contract,
	}
}
