package process

import (
	mcore "github.com/CaduceusMetaverseProtocol/MetaVM/core"
	"github.com/CaduceusMetaverseProtocol/MetaVM/vm/ethvm"
	"github.com/ethereum/go-ethereum/core"
)

// ProcessTransition applies one message: it buys the message's gas from the
// block pool, runs the program and decides which logs survive.
type ProcessTransition struct {
	gp         *core.GasPool
	msg        *Message
	gas        uint64
	initialGas uint64
	vm         *ethvm.ETHVM
}

// ExecutionResult includes all output after executing given vm
// message no matter the execution itself is successful or not.
type ExecutionResult struct {
	UsedGas uint64       // Total used gas
	Err     error        // Any error encountered during the execution(listed in vm/ethvm/errors.go)
	Logs    []*mcore.Log // Logs kept by the transition, empty when Err is set
}

// Unwrap returns the internal vm error which allows us for further
// analysis outside.
func (result *ExecutionResult) Unwrap() error {
	return result.Err
}

// Failed returns the indicator whether the execution is successful or not
func (result *ExecutionResult) Failed() bool { return result.Err != nil }

func NewProcessTransition(vm *ethvm.ETHVM, msg *Message, gp *core.GasPool) *ProcessTransition {
	return &ProcessTransition{
		gp:  gp,
		vm:  vm,
		msg: msg,
	}
}

// ApplyMessage runs msg against a fresh frame.
//
// ApplyMessage returns the gas used, the logs kept and the vm error in the
// result. The returned error is a core error meaning that the message could
// not run at all (its gas does not fit the pool or its frame is malformed).
func ApplyMessage(vm *ethvm.ETHVM, msg *Message, gp *core.GasPool) (*ExecutionResult, error) {
	return NewProcessTransition(vm, msg, gp).TransitionDb()
}

func (pt *ProcessTransition) buyGas() error {
	if err := pt.gp.SubGas(pt.msg.GasLimit); err != nil {
		return err
	}
	pt.gas = pt.msg.GasLimit
	pt.initialGas = pt.msg.GasLimit
	return nil
}

// TransitionDb executes the message. An instruction failure discards the
// whole frame: every log it emitted is dropped and all of its gas is used, so
// the operands a failing instruction already popped are never observed.
func (pt *ProcessTransition) TransitionDb() (*ExecutionResult, error) {
	if err := pt.buyGas(); err != nil {
		return nil, err
	}
	scope, release, err := pt.msg.newScope(pt.gas)
	if err != nil {
		pt.gp.AddGas(pt.gas)
		return nil, err
	}
	defer release()

	snapshot := len(scope.Logs)
	vmerr := pt.vm.Run(scope, pt.msg.Program, pt.msg.ReadOnly)
	if vmerr != nil {
		scope.Logs = scope.Logs[:snapshot]
		scope.Gas.UseGas(scope.Gas.Gas())
	}
	pt.gas = scope.Gas.Gas()
	pt.refundGas()

	return &ExecutionResult{
		UsedGas: pt.gasUsed(),
		Err:     vmerr,
		Logs:    scope.Logs,
	}, nil
}

// refundGas returns remaining gas to the block gas counter so it is
// available for the next message.
func (pt *ProcessTransition) refundGas() {
	pt.gp.AddGas(pt.gas)
}

// gasUsed returns the amount of gas used up by the state transition.
func (pt *ProcessTransition) gasUsed() uint64 {
	return pt.initialGas - pt.gas
}
