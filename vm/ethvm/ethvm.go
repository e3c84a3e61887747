package ethvm

import (
	"sync/atomic"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
)

// ETHVM is the base object that executes pre-decoded programs against frames.
// It should be noted that any error generated through any of the calls should
// be considered a revert-state-and-consume-all-gas operation, no checks on
// specific errors should ever be performed. The interpreter makes sure that
// any errors generated are to be considered faulty code.
//
// The ETHVM is not thread safe, use one per goroutine.
type ETHVM struct {
	// virtual machine configuration options used to initialise the
	// vm.
	Config Config
	// global (to this context) interpreter used throughout the execution of
	// the frames handed to Run.
	interpreter *VMInterpreter
	// abort is used to abort the VM calling operations
	// NOTE: must be set atomically
	abort int32
}

// NewVM returns a new VM. The returned VM is not thread safe.
func NewVM(config Config) (*ETHVM, error) {
	if config.Schedule == (params.GasSchedule{}) {
		config.Schedule = params.DefaultGasSchedule()
	}
	if err := config.Schedule.Validate(); err != nil {
		return nil, err
	}
	memoryCost := config.MemoryCost
	if memoryCost == nil {
		memoryCost = NewQuadraticMemoryCost(config.Schedule)
	}
	vm := &ETHVM{Config: config}
	vm.interpreter = NewVMInterpreter(vm, config.Schedule, memoryCost)
	return vm, nil
}

// Run executes program against scope. readOnly marks a static frame in which
// the LOG instructions fail with ErrWriteProtection.
func (vm *ETHVM) Run(scope *ScopeContext, program []OpCode, readOnly bool) error {
	return vm.interpreter.Run(scope, program, readOnly)
}

// Cancel cancels any running VM operation. This may be called concurrently and
// it's safe to be called multiple times. A running instruction always
// completes, the loop stops before the next one.
func (vm *ETHVM) Cancel() {
	atomic.StoreInt32(&vm.abort, 1)
}

// Cancelled returns true if Cancel has been called
func (vm *ETHVM) Cancelled() bool {
	return atomic.LoadInt32(&vm.abort) == 1
}

// Interpreter returns the current interpreter
func (vm *ETHVM) Interpreter() *VMInterpreter {
	return vm.interpreter
}
