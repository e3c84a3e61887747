package ethvm

import (
	"fmt"
)

// OpCode is an EVM opcode
type OpCode byte

// 0x0 range - arithmetic ops.
const (
	STOP OpCode = 0x0
)

// 0xa0 range - logging ops.
const (
	LOG0 OpCode = 0xa0 + iota
	LOG1
	LOG2
	LOG3
	LOG4
)

var opCodeToString = map[OpCode]string{
	STOP: "STOP",
	LOG0: "LOG0",
	LOG1: "LOG1",
	LOG2: "LOG2",
	LOG3: "LOG3",
	LOG4: "LOG4",
}

func (op OpCode) String() string {
	str := opCodeToString[op]
	if len(str) == 0 {
		return fmt.Sprintf("opcode %#x not defined", int(op))
	}
	return str
}

var stringToOp = map[string]OpCode{
	"STOP": STOP,
	"LOG0": LOG0,
	"LOG1": LOG1,
	"LOG2": LOG2,
	"LOG3": LOG3,
	"LOG4": LOG4,
}

// StringToOp finds the opcode whose name is stored in `str`.
func StringToOp(str string) OpCode {
	return stringToOp[str]
}

// LookupOp is StringToOp that also reports whether the name is known.
func LookupOp(str string) (OpCode, bool) {
	op, ok := stringToOp[str]
	return op, ok
}

// IsLog reports whether op belongs to the LOG0..LOG4 family.
func (op OpCode) IsLog() bool {
	return op >= LOG0 && op <= LOG4
}

// LogTopics returns the topic count bound to a LOG opcode.
func (op OpCode) LogTopics() int {
	return int(op - LOG0)
}
