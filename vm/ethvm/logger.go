package ethvm

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// VMLogger is used to collect execution traces from an VM run. CaptureState
// is called for each step of the VM with the current VM state.
// Note that reference types are actual VM data structures; make copies
// if you need to retain them beyond the current call.
type VMLogger interface {
	CaptureStart(from common.Address, gas uint64, readOnly bool)
	CaptureState(pc uint64, op OpCode, gas, cost uint64, scope *ScopeContext, err error)
	CaptureFault(pc uint64, op OpCode, gas, cost uint64, scope *ScopeContext, err error)
	CaptureEnd(gasUsed uint64, t time.Duration, err error)
}

// LogTracer writes every step to a go-ethereum logger and keeps counters.
type LogTracer struct {
	logger log.Logger

	Steps  int
	Faults int
	Emits  int
}

// NewLogTracer returns a tracer logging through logger, the root logger when
// nil.
func NewLogTracer(logger log.Logger) *LogTracer {
	if logger == nil {
		logger = log.Root()
	}
	return &LogTracer{logger: logger}
}

func (t *LogTracer) CaptureStart(from common.Address, gas uint64, readOnly bool) {
	t.logger.Debug("VM run started", "contract", from, "gas", gas, "static", readOnly)
}

func (t *LogTracer) CaptureState(pc uint64, op OpCode, gas, cost uint64, scope *ScopeContext, err error) {
	t.Steps++
	if op.IsLog() {
		t.Emits++
	}
	t.logger.Trace("VM step", "pc", pc, "op", op, "gas", gas, "cost", cost, "stack", scope.Stack.Len(), "memory", scope.Memory.Len(), "logs", len(scope.Logs))
}

func (t *LogTracer) CaptureFault(pc uint64, op OpCode, gas, cost uint64, scope *ScopeContext, err error) {
	t.Steps++
	t.Faults++
	t.logger.Debug("VM fault", "pc", pc, "op", op, "gas", gas, "cost", cost, "err", err)
}

func (t *LogTracer) CaptureEnd(gasUsed uint64, d time.Duration, err error) {
	t.logger.Debug("VM run finished", "gasUsed", gasUsed, "runtime", d, "err", err)
}
