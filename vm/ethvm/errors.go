package ethvm

import (
	"errors"
	"fmt"
)

// List of execution errors
var (
	ErrOutOfGas        = errors.New("out of gas")
	ErrWriteProtection = errors.New("write protection")
	ErrGasUintOverflow = errors.New("gas uint64 overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrStackOverflow   = errors.New("stack limit reached")
	ErrMemoryOverflow  = errors.New("memory range exceeds uint64")

	ErrExecutionAborted = errors.New("execution aborted")

	// errStopToken is an internal token indicating interpreter loop termination,
	// never returned to outside callers.
	errStopToken = errors.New("stop token")
)

// ErrStackUnderflowDetail wraps an evm error when the items on the stack less
// than the minimal requirement.
type ErrStackUnderflowDetail struct {
	stackLen int
	required int
}

func (e *ErrStackUnderflowDetail) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.stackLen, e.required)
}

func (e *ErrStackUnderflowDetail) Unwrap() error {
	return ErrStackUnderflow
}

// ErrStackOverflowDetail wraps an evm error when the items on the stack exceeds
// the maximum allowance.
type ErrStackOverflowDetail struct {
	stackLen int
	limit    int
}

func (e *ErrStackOverflowDetail) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.stackLen, e.limit)
}

func (e *ErrStackOverflowDetail) Unwrap() error {
	return ErrStackOverflow
}

// ErrInvalidOpCode wraps an evm error when an invalid opcode is encountered.
type ErrInvalidOpCode struct {
	opcode OpCode
}

func (e *ErrInvalidOpCode) Error() string { return fmt.Sprintf("invalid opcode: %s", e.opcode) }

// gasOverflowError reports a fee that cannot be represented as out of gas,
// the caller could never have paid it.
type gasOverflowError struct {
	cause error
}

func (e *gasOverflowError) Error() string {
	return fmt.Sprintf("%v: %v", ErrOutOfGas, e.cause)
}

func (e *gasOverflowError) Is(target error) bool {
	return target == ErrOutOfGas || errors.Is(e.cause, target)
}

func (e *gasOverflowError) Unwrap() error {
	return e.cause
}
