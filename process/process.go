package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	mcore "github.com/CaduceusMetaverseProtocol/MetaVM/core"
	"github.com/CaduceusMetaverseProtocol/MetaVM/vm/ethvm"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

type ProcessType int

const (
	//并行
	ParallelProcessType ProcessType = iota
	//串行
	SerialProcessType
)

func (t ProcessType) String() string {
	switch t {
	case ParallelProcessType:
		return "parallel"
	case SerialProcessType:
		return "serial"
	}
	return fmt.Sprintf("ProcessType(%d)", int(t))
}

type Result struct {
	Index   int
	Ed      ErrorDetail
	VmErr   error // error raised by an instruction, the frame's logs are discarded
	UsedGas uint64
	Logs    []*mcore.Log
	Bloom   types.Bloom
	Msg     *Message
	level   ProcessType
}

// Level reports whether the message ran serially or on the worker pool.
func (r *Result) Level() ProcessType { return r.level }

// Failed reports whether the message ran and one of its instructions failed.
func (r *Result) Failed() bool { return r.VmErr != nil }

type ErrorDetail struct {
	err error
	msg *Message
}

func (e *ErrorDetail) ErrInfo() error {
	return e.err
}

type Process interface {
	PreExecution(ctx context.Context, args *MessageArgs, gasCap uint64, timeout time.Duration) (*ExecutionResult, error)
	// ExecBatch runs independent messages concurrently.
	ExecBatch(ctx context.Context, msgs []*Message) ([]*Result, uint64)
	// ExecInOrder runs messages one after another against a shared gas pool.
	ExecInOrder(msgs []*Message, gasLimit uint64) ([]*Result, uint64)
}

type Processor struct {
	cfg     ethvm.Config
	workers int
}

func NewProcessor(cfg ethvm.Config, workers int) *Processor {
	return &Processor{
		cfg:     cfg,
		workers: workers,
	}
}

// PreExecution runs a single call built from args. The call is aborted once
// timeout elapses or ctx is done.
func (p *Processor) PreExecution(ctx context.Context, args *MessageArgs, gasCap uint64, timeout time.Duration) (*ExecutionResult, error) {
	defer func(start time.Time) { log.Debug("Executing VM call finished", "runtime", time.Since(start)) }(time.Now())

	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	// Make sure the context is cancelled when the call has completed
	// this makes sure resources are cleaned up.
	defer cancel()

	msg, err := args.ToMessage(gasCap)
	if err != nil {
		return nil, err
	}
	gp := new(core.GasPool).AddGas(msg.GasLimit)
	vm, err := ethvm.NewVM(p.cfg)
	if err != nil {
		return nil, err
	}

	// Wait for the context to be done and cancel the vm. Even if the
	// vm has finished, cancelling may be done (repeatedly)
	go func() {
		<-ctx.Done()
		vm.Cancel()
	}()

	result, err := ApplyMessage(vm, msg, gp)
	if result != nil && errors.Is(result.Err, ethvm.ErrExecutionAborted) {
		return nil, fmt.Errorf("execution aborted (timeout = %v)", timeout)
	}
	if err != nil {
		return result, fmt.Errorf("err: %w (supplied gas %d)", err, msg.GasLimit)
	}
	return result, nil
}

// ExecInOrder applies msgs sequentially. Every message buys its gas from a
// pool holding gasLimit, a message that does not fit is reported in its
// Result without running.
func (p *Processor) ExecInOrder(msgs []*Message, gasLimit uint64) ([]*Result, uint64) {
	var (
		usedGas = new(uint64)
		gp      = new(core.GasPool).AddGas(gasLimit)
	)
	results := make([]*Result, len(msgs))
	for i, msg := range msgs {
		results[i] = p.applyMessage(i, msg, gp, usedGas, SerialProcessType)
	}
	return results, *usedGas
}

// ExecBatch applies msgs on a worker pool. The messages are independent: each
// one gets its own frame and its own gas pool sized to its limit. Results are
// returned in message order. Messages not started before ctx is done carry
// ctx.Err() in their ErrorDetail.
func (p *Processor) ExecBatch(ctx context.Context, msgs []*Message) ([]*Result, uint64) {
	timeStart := time.Now()
	items := make([]*Item, len(msgs))
	for i, msg := range msgs {
		items[i] = NewItem(i, msg)
	}
	handler := func(item *Item) *Result {
		var used uint64
		gp := new(core.GasPool).AddGas(item.msg.GasLimit)
		return p.applyMessage(item.index, item.msg, gp, &used, ParallelProcessType)
	}
	results := FillUpPoolWithTask(ctx, items, p.workers, handler)

	var usedGas uint64
	for _, res := range results {
		usedGas += res.UsedGas
	}
	log.Debug("ExecBatch finished", "msgs", len(msgs), "gas", usedGas, "runtime", time.Since(timeStart))
	return results, usedGas
}

func (p *Processor) applyMessage(index int, msg *Message, gp *core.GasPool, usedGas *uint64, level ProcessType) *Result {
	res := &Result{Index: index, Msg: msg, level: level, Ed: ErrorDetail{msg: msg}}
	vm, err := ethvm.NewVM(p.cfg)
	if err != nil {
		res.Ed.err = err
		return res
	}
	result, err := ApplyMessage(vm, msg, gp)
	if err != nil {
		log.Error("apply message error", "index", index, "mode", level, "errinfo", err.Error())
		res.Ed.err = err
		return res
	}
	if result.Failed() {
		log.Warn("message execution failed", "index", index, "mode", level, "gas", result.UsedGas, "err", result.Err)
	}
	*usedGas += result.UsedGas
	res.VmErr = result.Err
	res.UsedGas = result.UsedGas
	res.Logs = result.Logs
	res.Bloom = mcore.LogsBloom(result.Logs)
	return res
}
