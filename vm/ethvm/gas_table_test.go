package ethvm

import (
	"testing"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMemoryExpansionCost(t *testing.T) {
	oracle := NewQuadraticMemoryCost(params.DefaultGasSchedule())
	tests := []struct {
		current uint64
		offset  *uint256.Int
		size    *uint256.Int
		want    uint64
	}{
		{0, u(0), u(0), 0},
		{0, maxWord(), u(0), 0},
		{0, u(0), u(1), 3},
		{0, u(0), u(32), 3},
		{32, u(0), u(32), 0},
		{32, u(31), u(1), 0},
		{32, u(0), u(33), 3},
		{0, u(0), u(32 * 1024), 3*1024 + 1024*1024/512},
		{32 * 1024, u(0), u(32 * 1025), (3*1025 + 1025*1025/512) - (3*1024 + 1024*1024/512)},
	}
	for i, tt := range tests {
		got, err := oracle.MemoryExpansionCost(tt.current, NewMemoryRange(tt.offset, tt.size))
		require.NoError(t, err, "case %d", i)
		require.Equal(t, tt.want, got, "case %d", i)
	}
}

func TestMemoryExpansionCostOverflow(t *testing.T) {
	oracle := NewQuadraticMemoryCost(params.DefaultGasSchedule())

	_, err := oracle.MemoryExpansionCost(0, NewMemoryRange(maxWord(), u(1)))
	require.ErrorIs(t, err, ErrGasUintOverflow)

	_, err = oracle.MemoryExpansionCost(0, NewMemoryRange(u(0), u(maxMemorySize+1)))
	require.ErrorIs(t, err, ErrGasUintOverflow)

	got, err := oracle.MemoryExpansionCost(0, NewMemoryRange(u(0), u(maxMemorySize)))
	require.NoError(t, err)
	words := uint64(maxMemorySize / 32)
	require.Equal(t, 3*words+words*words/512, got)
}

func TestMemoryExpansionCostScheduleOverflow(t *testing.T) {
	words := uint64(1 << 25)
	tests := []struct {
		name      string
		memoryGas uint64
	}{
		{"linear term", 1 << 40},
		{"linear plus quadratic", (1<<64 - 1) / words},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := params.DefaultGasSchedule()
			schedule.MemoryGas = tt.memoryGas
			oracle := NewQuadraticMemoryCost(schedule)
			_, err := oracle.MemoryExpansionCost(0, NewMemoryRange(u(0), u(words*32)))
			require.ErrorIs(t, err, ErrGasUintOverflow)
		})
	}
}

func TestLogMemoryGasOverflowIsOutOfGas(t *testing.T) {
	schedule := params.DefaultGasSchedule()
	schedule.MemoryGas = 1 << 40
	scope, stack, mem := newTestScope(t, 1<<42, u(1<<30), u(0))

	in := newTestInterpreter(t, Config{Schedule: schedule})
	pc := uint64(0)
	_, err := makeLog(0)(&pc, in, scope)
	require.ErrorIs(t, err, ErrOutOfGas)
	require.ErrorIs(t, err, ErrGasUintOverflow)
	require.Zero(t, mem.Len())
	require.Empty(t, scope.Logs)
	require.Zero(t, stack.Len())
	require.Equal(t, uint64(1<<42), scope.Gas.Gas())
}

func TestLogGasMonotonic(t *testing.T) {
	schedule := params.DefaultGasSchedule()
	oracle := NewQuadraticMemoryCost(schedule)
	mem := NewMemory()

	prevByTopics := make([]uint64, params.MaxLogTopics+1)
	for size := uint64(0); size <= 256; size++ {
		prevTopic := uint64(0)
		for n := uint64(0); n <= params.MaxLogTopics; n++ {
			gas, err := logGas(schedule, oracle, mem, n, NewMemoryRange(u(0), u(size)))
			require.NoError(t, err)
			require.GreaterOrEqual(t, gas, prevTopic, "size %d topics %d", size, n)
			require.GreaterOrEqual(t, gas, prevByTopics[n], "size %d topics %d", size, n)
			prevTopic = gas
			prevByTopics[n] = gas
		}
	}
}

func TestLogGasTerms(t *testing.T) {
	schedule := params.DefaultGasSchedule()
	oracle := NewQuadraticMemoryCost(schedule)
	mem := NewMemory()

	gas, err := logGas(schedule, oracle, mem, 0, NewMemoryRange(u(0), u(0)))
	require.NoError(t, err)
	require.Equal(t, params.LogGas, gas)

	gas, err = logGas(schedule, oracle, mem, 4, NewMemoryRange(u(0), u(0)))
	require.NoError(t, err)
	require.Equal(t, params.LogGas+4*params.LogTopicGas, gas)

	gas, err = logGas(schedule, oracle, mem, 0, NewMemoryRange(u(0), u(64)))
	require.NoError(t, err)
	require.Equal(t, params.LogGas+64*params.LogDataGas+2*params.MemoryGas, gas)
}

func TestLogGasOverflow(t *testing.T) {
	schedule := params.DefaultGasSchedule()
	schedule.LogDataGas = 1 << 60
	oracle := NewQuadraticMemoryCost(schedule)
	mem := NewMemory()
	require.NoError(t, mem.Extend(NewMemoryRange(u(0), u(32))))

	// The payload is already in memory, only the per byte fee overflows.
	_, err := logGas(schedule, oracle, mem, 0, NewMemoryRange(u(0), u(32)))
	require.ErrorIs(t, err, ErrGasUintOverflow)

	schedule = params.DefaultGasSchedule()
	schedule.LogTopicGas = ^uint64(0)
	_, err = logGas(schedule, oracle, mem, 2, NewMemoryRange(u(0), u(0)))
	require.ErrorIs(t, err, ErrGasUintOverflow)

	schedule = params.DefaultGasSchedule()
	schedule.LogGas = ^uint64(0)
	_, err = logGas(schedule, oracle, mem, 1, NewMemoryRange(u(0), u(0)))
	require.ErrorIs(t, err, ErrGasUintOverflow)
}
