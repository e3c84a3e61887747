package process

import (
	"github.com/CaduceusMetaverseProtocol/MetaVM/vm/ethvm"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Message is a pre-decoded program together with the frame it starts from.
type Message struct {
	Contract common.Address
	GasLimit uint64
	// Stack holds the initial operands, the last one on top.
	Stack []*uint256.Int
	// Memory is copied to offset zero of the frame's memory.
	Memory   []byte
	Program  []ethvm.OpCode
	ReadOnly bool
}

// newScope builds the frame the message runs in. release hands the stack back
// once the frame is no longer needed.
func (m *Message) newScope(gas uint64) (scope *ethvm.ScopeContext, release func(), err error) {
	stack, err := ethvm.NewStack(m.Stack...)
	if err != nil {
		return nil, nil, err
	}
	mem := ethvm.NewMemory()
	if len(m.Memory) > 0 {
		region := ethvm.NewMemoryRange(new(uint256.Int), uint256.NewInt(uint64(len(m.Memory))))
		if err := mem.Extend(region); err != nil {
			stack.Release()
			return nil, nil, err
		}
		if err := mem.Set(0, m.Memory); err != nil {
			stack.Release()
			return nil, nil, err
		}
	}
	contract := ethvm.NewContract(ethvm.AccountRef(m.Contract), gas)
	return ethvm.NewScopeContext(contract, stack, mem), stack.Release, nil
}
