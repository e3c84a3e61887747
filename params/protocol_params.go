package params

import (
	"errors"

	ethparams "github.com/ethereum/go-ethereum/params"
)

const (
	// StackLimit is the maximum depth of the operand stack.
	StackLimit uint64 = ethparams.StackLimit

	LogGas       uint64 = ethparams.LogGas       // Per LOG* operation.
	LogDataGas   uint64 = ethparams.LogDataGas   // Per byte in a LOG* operation's data.
	LogTopicGas  uint64 = ethparams.LogTopicGas  // Multiplied by the * of the LOG*, per LOG transaction. e.g. LOG0 incurs 0 * c_txLogTopicGas, LOG4 incurs 4 * c_txLogTopicGas.
	MemoryGas    uint64 = ethparams.MemoryGas    // Times the address of the (highest referenced byte in memory + 1). NOTE: referencing happens on read, write and in instructions such as RETURN and CALL.
	QuadCoeffDiv uint64 = ethparams.QuadCoeffDiv // Divisor for the quadratic particle of the memory cost equation.

	// MaxLogTopics is the highest topic count of the LOG instruction family.
	MaxLogTopics = 4
)

var ErrZeroQuadCoeffDiv = errors.New("gas schedule: quadratic coefficient divisor must be non-zero")

// GasSchedule holds the fees charged by the LOG instruction family and the
// memory expansion formula. The zero value is not usable, start from
// DefaultGasSchedule.
type GasSchedule struct {
	LogGas       uint64 `toml:"log_gas"`
	LogDataGas   uint64 `toml:"log_data_gas"`
	LogTopicGas  uint64 `toml:"log_topic_gas"`
	MemoryGas    uint64 `toml:"memory_gas"`
	QuadCoeffDiv uint64 `toml:"quad_coeff_div"`
}

// DefaultGasSchedule returns the mainnet fee schedule.
func DefaultGasSchedule() GasSchedule {
	return GasSchedule{
		LogGas:       LogGas,
		LogDataGas:   LogDataGas,
		LogTopicGas:  LogTopicGas,
		MemoryGas:    MemoryGas,
		QuadCoeffDiv: QuadCoeffDiv,
	}
}

func (s GasSchedule) Validate() error {
	if s.QuadCoeffDiv == 0 {
		return ErrZeroQuadCoeffDiv
	}
	return nil
}
