package process

import (
	"context"
	"runtime"
	"sort"
	"sync"
)

// Item is one message scheduled on the pool, tagged with its position in the
// batch.
type Item struct {
	index int
	msg   *Message
}

func NewItem(index int, msg *Message) *Item {
	return &Item{
		index: index,
		msg:   msg,
	}
}

func (i *Item) Index() int {
	return i.index
}

func (i *Item) MessageInfo() *Message {
	return i.msg
}

type ExecPool struct {
	wg         sync.WaitGroup
	taskNum    int
	ExecFunc   func(item *Item) *Result
	taskQueue  chan []*Item
	ResultChan chan *Result
}

func NewExecPool(routine, num int, fun func(item *Item) *Result) *ExecPool {
	pool := &ExecPool{
		taskNum:    routine,
		ExecFunc:   fun,
		taskQueue:  make(chan []*Item, num),
		ResultChan: make(chan *Result, num),
	}
	return pool
}

// Run starts the workers. Once ctx is done the remaining items are not
// executed, each of them yields a result carrying ctx.Err().
func (p *ExecPool) Run(ctx context.Context) {
	for i := 0; i < p.taskNum; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.taskQueue {
				for _, item := range task {
					if err := ctx.Err(); err != nil {
						p.ResultChan <- &Result{Index: item.index, Msg: item.msg, Ed: ErrorDetail{err: err, msg: item.msg}}
						continue
					}
					p.ResultChan <- p.ExecFunc(item)
				}
			}
		}()
	}
}

func (p *ExecPool) Wait() {
	close(p.taskQueue)
	p.wg.Wait()
	close(p.ResultChan)
}

func (p *ExecPool) AddTask(task []*Item) {
	p.taskQueue <- task
}

// FillUpPoolWithTask splits items into one contiguous chunk per worker and
// collects the results sorted by item index. workers <= 0 uses one worker per
// CPU.
func FillUpPoolWithTask(ctx context.Context, items []*Item, workers int, handler func(item *Item) *Result) []*Result {
	if len(items) == 0 {
		return nil
	}
	count := workers
	if count <= 0 {
		count = runtime.NumCPU()
	}
	if count > len(items) {
		count = len(items)
	}
	pool := NewExecPool(count, len(items), handler)
	pool.Run(ctx)

	num := len(items) / count
	elsNum := len(items) % count
	for i := 0; i < count; i++ {
		if i == count-1 {
			pool.AddTask(items[i*num : num*(i+1)+elsNum])
		} else {
			pool.AddTask(items[i*num : num*(i+1)])
		}
	}
	pool.Wait()

	results := make([]*Result, 0, len(items))
	for res := range pool.ResultChan {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
