package process

import (
	"errors"
	"fmt"
	"math"

	mcommon "github.com/CaduceusMetaverseProtocol/MetaVM/common"
	"github.com/CaduceusMetaverseProtocol/MetaVM/vm/ethvm"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
)

var errEmptyProgram = errors.New("message without any program provided")

// MessageArgs represents the arguments to construct a new Message, as found
// in fixtures and JSON requests.
type MessageArgs struct {
	Contract *common.Address `json:"contract" toml:"contract"`
	Gas      *hexutil.Uint64 `json:"gas" toml:"gas"`
	// Stack lists the initial operands bottom first.
	Stack  []*hexutil.Big `json:"stack" toml:"stack"`
	Memory *hexutil.Bytes `json:"memory" toml:"memory"`
	// Event is a canonical event signature such as "Transfer(address,uint256)".
	// Its hash goes directly under the two topmost stack items, where the
	// first LOG1..LOG4 of the program finds its first topic.
	Event    string   `json:"event,omitempty" toml:"event"`
	Program  []string `json:"program" toml:"program"`
	ReadOnly bool     `json:"readOnly" toml:"readOnly"`
}

// contract retrieves the emitting address.
func (args *MessageArgs) contract() common.Address {
	if args.Contract == nil {
		return common.Address{}
	}
	return *args.Contract
}

// ToMessage converts the arguments to the Message type executed by the vm.
// globalGasCap caps the gas of the message, zero means no cap.
func (args *MessageArgs) ToMessage(globalGasCap uint64) (*Message, error) {
	if len(args.Program) == 0 {
		return nil, errEmptyProgram
	}
	gas := globalGasCap
	if gas == 0 {
		gas = uint64(math.MaxUint64 / 2)
	}
	if args.Gas != nil {
		gas = uint64(*args.Gas)
	} else {
		log.Trace("set to default gas", "gas", gas)
	}
	if globalGasCap != 0 && globalGasCap < gas {
		log.Warn("Caller gas above allowance, capping", "requested", gas, "cap", globalGasCap)
		gas = globalGasCap
	}

	stack := make([]*uint256.Int, len(args.Stack))
	for i, word := range args.Stack {
		if word == nil {
			return nil, fmt.Errorf("stack item %d: missing value", i)
		}
		b := word.ToInt()
		if b.Sign() < 0 {
			return nil, fmt.Errorf("stack item %d: negative value %v", i, b)
		}
		v, overflow := uint256.FromBig(b)
		if overflow {
			return nil, fmt.Errorf("stack item %d: value exceeds 256 bits", i)
		}
		stack[i] = v
	}
	if args.Event != "" {
		if len(stack) < 2 {
			return nil, fmt.Errorf("event %q needs offset and size on the stack", args.Event)
		}
		topic := mcommon.HashToWord(mcommon.EventSignature(args.Event))
		at := len(stack) - 2
		withEvent := make([]*uint256.Int, 0, len(stack)+1)
		withEvent = append(withEvent, stack[:at]...)
		withEvent = append(withEvent, topic)
		stack = append(withEvent, stack[at:]...)
	}

	program := make([]ethvm.OpCode, len(args.Program))
	for i, name := range args.Program {
		op, ok := ethvm.LookupOp(name)
		if !ok {
			return nil, fmt.Errorf("program item %d: unknown opcode %q", i, name)
		}
		program[i] = op
	}

	var memory []byte
	if args.Memory != nil {
		memory = common.CopyBytes(*args.Memory)
	}
	return &Message{
		Contract: args.contract(),
		GasLimit: gas,
		Stack:    stack,
		Memory:   memory,
		Program:  program,
		ReadOnly: args.ReadOnly,
	}, nil
}
