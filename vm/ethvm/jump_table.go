package ethvm

type (
	executionFunc func(pc *uint64, interpreter *VMInterpreter, scope *ScopeContext) ([]byte, error)
)

type operation struct {
	// execute is the operation function
	execute     executionFunc
	constantGas uint64
	// minStack tells how many stack items are required
	minStack int
	// maxStack specifies the max length the stack can have for this operation
	// to not overflow the stack.
	maxStack int
}

// JumpTable contains the VM opcodes supported by the interpreter.
type JumpTable [256]*operation

// newLogInstructionSet returns the instructions the interpreter executes: STOP
// and the five LOG variants, each binding its topic count to the shared
// executor. The LOG variants carry no constant gas, their whole fee is
// dynamic and charged by the executor.
func newLogInstructionSet() JumpTable {
	return JumpTable{
		STOP: {
			execute:     opStop,
			constantGas: 0,
			minStack:    minStack(0, 0),
			maxStack:    maxStack(0, 0),
		},
		LOG0: {
			execute:  makeLog(0),
			minStack: minStack(2, 0),
			maxStack: maxStack(2, 0),
		},
		LOG1: {
			execute:  makeLog(1),
			minStack: minStack(3, 0),
			maxStack: maxStack(3, 0),
		},
		LOG2: {
			execute:  makeLog(2),
			minStack: minStack(4, 0),
			maxStack: maxStack(4, 0),
		},
		LOG3: {
			execute:  makeLog(3),
			minStack: minStack(5, 0),
			maxStack: maxStack(5, 0),
		},
		LOG4: {
			execute:  makeLog(4),
			minStack: minStack(6, 0),
			maxStack: maxStack(6, 0),
		},
	}
}
