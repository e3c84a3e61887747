package main

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/CaduceusMetaverseProtocol/MetaVM/process"
	"github.com/ethereum/go-ethereum/common/math"
)

// Fixture is a TOML file describing a batch of messages. Quantities and byte
// strings are hex encoded strings, as in JSON-RPC.
//
//	gas_limit = 100000
//	block_number = 17
//
//	[schedule]
//	log_data_gas = 16
//
//	[[message]]
//	contract = "0x7bd2bfb46832da710780552e286a713af771b89f"
//	gas = "0x2710"
//	stack = ["0xaa", "0x20", "0x0"]
//	memory = "0xdeadbeef"
//	program = ["LOG1", "STOP"]
type Fixture struct {
	// GasLimit is the pool shared by the messages in serial mode, zero means
	// the sum of their limits.
	GasLimit uint64 `toml:"gas_limit"`
	// BlockNumber is stamped on every printed log.
	BlockNumber uint64 `toml:"block_number"`
	// Schedule overrides single fees, unset fields keep their default.
	Schedule map[string]uint64     `toml:"schedule"`
	Messages []process.MessageArgs `toml:"message"`
}

func loadFixture(path string) (*Fixture, error) {
	var f Fixture
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("fixture %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return &f, nil
}

// schedule applies the fixture overrides on top of the default schedule.
func (f *Fixture) schedule() (params.GasSchedule, error) {
	s := params.DefaultGasSchedule()
	for name, v := range f.Schedule {
		switch name {
		case "log_gas":
			s.LogGas = v
		case "log_data_gas":
			s.LogDataGas = v
		case "log_topic_gas":
			s.LogTopicGas = v
		case "memory_gas":
			s.MemoryGas = v
		case "quad_coeff_div":
			s.QuadCoeffDiv = v
		default:
			return s, fmt.Errorf("unknown schedule entry %q", name)
		}
	}
	return s, s.Validate()
}

// poolLimit returns the gas pool of serial mode. Without an explicit limit it
// is the sum of the message limits, saturating at MaxUint64.
func (f *Fixture) poolLimit(msgs []*process.Message) uint64 {
	if f.GasLimit != 0 {
		return f.GasLimit
	}
	var total uint64
	for _, msg := range msgs {
		sum, overflow := math.SafeAdd(total, msg.GasLimit)
		if overflow {
			return gomath.MaxUint64
		}
		total = sum
	}
	return total
}

// messages converts every message, capping its gas at gasCap.
func (f *Fixture) messages(gasCap uint64) ([]*process.Message, error) {
	msgs := make([]*process.Message, len(f.Messages))
	for i := range f.Messages {
		msg, err := f.Messages[i].ToMessage(gasCap)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		msgs[i] = msg
	}
	return msgs, nil
}
