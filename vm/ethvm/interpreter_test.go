package ethvm

import (
	"testing"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestLogInstructionSet(t *testing.T) {
	table := newLogInstructionSet()
	for n := 0; n <= params.MaxLogTopics; n++ {
		op := LOG0 + OpCode(n)
		require.True(t, op.IsLog())
		require.Equal(t, n, op.LogTopics())

		operation := table[op]
		require.NotNil(t, operation, "%v", op)
		require.Equal(t, n+2, operation.minStack)
		require.Equal(t, int(params.StackLimit)+n+2, operation.maxStack)
		require.Equal(t, uint64(0), operation.constantGas)

		// Each entry is bound to its own topic count.
		items := make([]*uint256.Int, 0, n+2)
		for i := 0; i < n; i++ {
			items = append(items, u(uint64(i)))
		}
		items = append(items, u(0), u(0))
		scope, _, _ := newTestScope(t, 100000, items...)
		pc := uint64(0)
		_, err := operation.execute(&pc, newTestInterpreter(t, Config{}), scope)
		require.NoError(t, err)
		require.Equal(t, n, scope.Logs[0].TopicCount())
	}
	for op := 0; op < len(table); op++ {
		if OpCode(op) != STOP && !OpCode(op).IsLog() {
			require.Nil(t, table[op], "%v", OpCode(op))
		}
	}
}

func TestRunProgram(t *testing.T) {
	topic := u(0x77)
	// LOG0 operands below LOG1 operands.
	scope, stack, _ := newTestScope(t, 100000, u(0), u(0), topic, u(0), u(0))
	vm, err := NewVM(Config{})
	require.NoError(t, err)

	err = vm.Run(scope, []OpCode{LOG1, LOG0, STOP, LOG0}, false)
	require.NoError(t, err)
	require.Len(t, scope.Logs, 2)
	require.Equal(t, []common.Hash{common.Hash(topic.Bytes32())}, scope.Logs[0].Topics())
	require.Equal(t, 0, scope.Logs[1].TopicCount())
	require.Equal(t, 0, stack.Len())
	require.Equal(t, uint64(100000-(2*375+375)), scope.Gas.Gas())
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name    string
		gas     uint64
		items   []*uint256.Int
		program []OpCode
		static  bool
		want    error
	}{
		{"underflow", 100000, []*uint256.Int{u(0), u(0), u(0), u(0), u(0)}, []OpCode{LOG4}, false, ErrStackUnderflow},
		{"out of gas", 374, []*uint256.Int{u(0), u(0)}, []OpCode{LOG0}, false, ErrOutOfGas},
		{"static", 100000, []*uint256.Int{u(0), u(0)}, []OpCode{LOG0}, true, ErrWriteProtection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, _, _ := newTestScope(t, tt.gas, tt.items...)
			vm, err := NewVM(Config{})
			require.NoError(t, err)
			require.ErrorIs(t, vm.Run(scope, tt.program, tt.static), tt.want)
			require.Empty(t, scope.Logs)
		})
	}
}

func TestRunInvalidOpCode(t *testing.T) {
	scope, _, _ := newTestScope(t, 100)
	vm, err := NewVM(Config{})
	require.NoError(t, err)

	err = vm.Run(scope, []OpCode{OpCode(0x01)}, false)
	var invalid *ErrInvalidOpCode
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, OpCode(0x01), invalid.opcode)
}

func TestRunStaticFlagIsRestored(t *testing.T) {
	scope, _, _ := newTestScope(t, 100000, u(0), u(0))
	vm, err := NewVM(Config{})
	require.NoError(t, err)

	require.ErrorIs(t, vm.Run(scope, []OpCode{LOG0}, true), ErrWriteProtection)
	require.False(t, vm.Interpreter().GetReadOnly())
	require.NoError(t, vm.Run(scope, []OpCode{LOG0}, false))
	require.Len(t, scope.Logs, 1)
}

func TestRunCancelled(t *testing.T) {
	scope, _, _ := newTestScope(t, 100000, u(0), u(0))
	vm, err := NewVM(Config{})
	require.NoError(t, err)

	vm.Cancel()
	require.True(t, vm.Cancelled())
	require.ErrorIs(t, vm.Run(scope, []OpCode{LOG0}, false), ErrExecutionAborted)
	require.Empty(t, scope.Logs)
}

func TestNewVMRejectsBadSchedule(t *testing.T) {
	_, err := NewVM(Config{Schedule: params.GasSchedule{LogGas: 1}})
	require.ErrorIs(t, err, params.ErrZeroQuadCoeffDiv)
}

func TestLogTracer(t *testing.T) {
	tracer := NewLogTracer(nil)
	scope, _, _ := newTestScope(t, 100000, u(0), u(0), u(0), u(0))
	vm, err := NewVM(Config{Debug: true, Tracer: tracer})
	require.NoError(t, err)

	require.ErrorIs(t, vm.Run(scope, []OpCode{LOG0, LOG0, LOG0}, false), ErrStackUnderflow)
	require.Equal(t, 3, tracer.Steps)
	require.Equal(t, 2, tracer.Emits)
	require.Equal(t, 1, tracer.Faults)
}

func TestOpCodeString(t *testing.T) {
	require.Equal(t, "LOG3", LOG3.String())
	require.Equal(t, LOG2, StringToOp("LOG2"))
	_, ok := LookupOp("SSTORE")
	require.False(t, ok)
	require.Equal(t, "opcode 0x1 not defined", OpCode(1).String())
}
