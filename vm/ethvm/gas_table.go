package ethvm

import (
	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/ethereum/go-ethereum/common/math"
)

// maxMemorySize is the highest memory size the quadratic formula handles
// without overflowing: a word count above 0xFFFFFFFF overflows the square.
const maxMemorySize = 0x1FFFFFFFE0

// QuadraticMemoryCost prices memory as MemoryGas*words + words²/QuadCoeffDiv.
// It keeps no state, the fee of an expansion is the difference of the totals.
type QuadraticMemoryCost struct {
	MemoryGas    uint64
	QuadCoeffDiv uint64
}

func NewQuadraticMemoryCost(schedule params.GasSchedule) QuadraticMemoryCost {
	return QuadraticMemoryCost{MemoryGas: schedule.MemoryGas, QuadCoeffDiv: schedule.QuadCoeffDiv}
}

// totalCost returns the fee of a memory holding the given number of words.
// words must not exceed maxMemorySize/32, the square then fits a uint64.
func (c QuadraticMemoryCost) totalCost(words uint64) (uint64, error) {
	square := words * words
	linCoef, overflow := math.SafeMul(words, c.MemoryGas)
	if overflow {
		return 0, ErrGasUintOverflow
	}
	quadCoef := square / c.QuadCoeffDiv
	total, overflow := math.SafeAdd(linCoef, quadCoef)
	if overflow {
		return 0, ErrGasUintOverflow
	}
	return total, nil
}

// MemoryExpansionCost calculates the quadratic gas for memory expansion. It does
// so only for the memory region that is expanded, not the total memory.
func (c QuadraticMemoryCost) MemoryExpansionCost(current uint64, r MemoryRange) (uint64, error) {
	newMemSize, ok := r.Uint64End()
	if !ok || newMemSize > maxMemorySize {
		return 0, ErrGasUintOverflow
	}
	if newMemSize <= current {
		return 0, nil
	}
	newMemSizeWords := toWordSize(newMemSize)
	if newMemSizeWords*32 <= current {
		return 0, nil
	}
	newTotal, err := c.totalCost(newMemSizeWords)
	if err != nil {
		return 0, err
	}
	// current is below newMemSize, so its total cannot overflow either.
	oldTotal, _ := c.totalCost(toWordSize(current))
	return newTotal - oldTotal, nil
}

// logGas computes the dynamic fee of a LOG instruction with n topics reading
// r: the base fee, the per byte fee, the per topic fee and the memory
// expansion fee.
func logGas(schedule params.GasSchedule, oracle MemoryCostOracle, mem LinearMemory, n uint64, r MemoryRange) (uint64, error) {
	requestedSize, overflow := r.Size.Uint64WithOverflow()
	if overflow {
		return 0, ErrGasUintOverflow
	}

	gas, err := oracle.MemoryExpansionCost(mem.Len(), r)
	if err != nil {
		return 0, err
	}

	if gas, overflow = math.SafeAdd(gas, schedule.LogGas); overflow {
		return 0, ErrGasUintOverflow
	}
	var topicGas uint64
	if topicGas, overflow = math.SafeMul(n, schedule.LogTopicGas); overflow {
		return 0, ErrGasUintOverflow
	}
	if gas, overflow = math.SafeAdd(gas, topicGas); overflow {
		return 0, ErrGasUintOverflow
	}

	var memorySizeGas uint64
	if memorySizeGas, overflow = math.SafeMul(requestedSize, schedule.LogDataGas); overflow {
		return 0, ErrGasUintOverflow
	}
	if gas, overflow = math.SafeAdd(gas, memorySizeGas); overflow {
		return 0, ErrGasUintOverflow
	}
	return gas, nil
}
