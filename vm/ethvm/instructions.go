package ethvm

import (
	mcommon "github.com/CaduceusMetaverseProtocol/MetaVM/common"
	"github.com/CaduceusMetaverseProtocol/MetaVM/core"
	"github.com/ethereum/go-ethereum/common"
)

func opStop(pc *uint64, interpreter *VMInterpreter, scope *ScopeContext) ([]byte, error) {
	return nil, errStopToken
}

// following functions are used by the instruction jump  table

// make log instruction function
func makeLog(size int) executionFunc {
	return func(pc *uint64, interpreter *VMInterpreter, scope *ScopeContext) ([]byte, error) {
		return nil, opLog(interpreter, scope, size)
	}
}

// opLog emits an event with size topics. The fee is charged before memory is
// touched and memory is touched before the log is committed.
func opLog(interpreter *VMInterpreter, scope *ScopeContext, size int) error {
	if interpreter.readOnly {
		return ErrWriteProtection
	}
	stack := scope.Stack
	if sLen := stack.Len(); sLen < size+2 {
		return &ErrStackUnderflowDetail{stackLen: sLen, required: size + 2}
	}
	mStart, err := stack.Pop()
	if err != nil {
		return err
	}
	mSize, err := stack.Pop()
	if err != nil {
		return err
	}
	// offset+size is evaluated with a carry bit, it can exceed a word.
	region := NewMemoryRange(&mStart, &mSize)

	gas, err := logGas(interpreter.schedule, interpreter.memoryCost, scope.Memory, uint64(size), region)
	if err != nil {
		return &gasOverflowError{cause: err}
	}
	if !scope.Gas.UseGas(gas) {
		return ErrOutOfGas
	}

	if err := scope.Memory.Extend(region); err != nil {
		return err
	}
	d := scope.Memory.GetCopy(region)

	topics := make([]common.Hash, size)
	for i := 0; i < size; i++ {
		topic, err := stack.Pop()
		if err != nil {
			return err
		}
		topics[i] = mcommon.WordToHash(&topic)
	}

	scope.Logs = append(scope.Logs, core.NewLog(scope.Contract.Address(), topics, d))
	return nil
}
