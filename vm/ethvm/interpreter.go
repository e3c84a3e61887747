package ethvm

import (
	"time"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
)

// Config are the configuration options for the Interpreter
type Config struct {
	Debug  bool     // Enables debugging
	Tracer VMLogger // Opcode logger
	// Schedule holds the LOG fees, the zero value selects the default schedule.
	Schedule params.GasSchedule
	// MemoryCost prices memory expansion, nil selects the quadratic formula of
	// Schedule.
	MemoryCost MemoryCostOracle
}

// VMInterpreter represents an VM interpreter
type VMInterpreter struct {
	vm         *ETHVM
	table      *JumpTable
	schedule   params.GasSchedule
	memoryCost MemoryCostOracle

	readOnly bool // Whether to throw on stateful modifications
}

// NewVMInterpreter returns a new instance of the Interpreter.
func NewVMInterpreter(vm *ETHVM, schedule params.GasSchedule, memoryCost MemoryCostOracle) *VMInterpreter {
	table := newLogInstructionSet()
	return &VMInterpreter{
		vm:         vm,
		table:      &table,
		schedule:   schedule,
		memoryCost: memoryCost,
	}
}

// GetReadOnly reports whether the running frame is static.
func (in *VMInterpreter) GetReadOnly() bool {
	return in.readOnly
}

// Run loops and evaluates the program against the frame. The program is
// already decoded, Run never looks at bytecode.
//
// It's important to note that any errors returned by the interpreter should be
// considered a revert-and-consume-all-gas operation. Run itself leaves the
// frame as the failing instruction left it.
func (in *VMInterpreter) Run(scope *ScopeContext, program []OpCode, readOnly bool) (err error) {
	// Make sure the readOnly is only set if we aren't in readOnly yet.
	// This also makes sure that the readOnly flag isn't removed for child calls.
	if readOnly && !in.readOnly {
		in.readOnly = true
		defer func() { in.readOnly = false }()
	}

	var (
		op   OpCode
		pc   = uint64(0)
		cost uint64
		// copies used by tracer
		gasCopy  uint64
		debug    = in.vm.Config.Debug && in.vm.Config.Tracer != nil
		start    = time.Now()
		startGas = scope.Gas.Gas()
	)
	if debug {
		in.vm.Config.Tracer.CaptureStart(scope.Contract.Address(), startGas, readOnly)
		defer func() {
			in.vm.Config.Tracer.CaptureEnd(startGas-scope.Gas.Gas(), time.Since(start), err)
		}()
	}
	for pc < uint64(len(program)) {
		if in.vm.Cancelled() {
			return ErrExecutionAborted
		}
		op = program[pc]
		gasCopy = scope.Gas.Gas()
		err = in.step(&pc, op, scope)
		cost = gasCopy - scope.Gas.Gas()
		if err == errStopToken {
			if debug {
				in.vm.Config.Tracer.CaptureState(pc, op, gasCopy, cost, scope, nil)
			}
			err = nil
			break
		}
		if err != nil {
			if debug {
				in.vm.Config.Tracer.CaptureFault(pc, op, gasCopy, cost, scope, err)
			}
			return err
		}
		if debug {
			in.vm.Config.Tracer.CaptureState(pc, op, gasCopy, cost, scope, nil)
		}
		pc++
	}
	return nil
}

// step validates and executes a single instruction.
func (in *VMInterpreter) step(pc *uint64, op OpCode, scope *ScopeContext) error {
	operation := in.table[op]
	if operation == nil {
		return &ErrInvalidOpCode{opcode: op}
	}
	// Validate stack
	if sLen := scope.Stack.Len(); sLen < operation.minStack {
		return &ErrStackUnderflowDetail{stackLen: sLen, required: operation.minStack}
	} else if sLen > operation.maxStack {
		return &ErrStackOverflowDetail{stackLen: sLen, limit: operation.maxStack}
	}
	if !scope.Gas.UseGas(operation.constantGas) {
		return ErrOutOfGas
	}
	_, err := operation.execute(pc, in, scope)
	return err
}
