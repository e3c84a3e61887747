package ethvm

import (
	"sync"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/holiman/uint256"
)

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// Stack is an object for basic stack operations. Items popped to the stack are
// expected to be changed and modified. stack does not take care of adding newly
// initialised objects.
type Stack struct {
	data []uint256.Int
}

func newstack() *Stack {
	return stackPool.Get().(*Stack)
}

// NewStack returns an empty stack, optionally seeded with items pushed in the
// given order (the last one ends up on top).
func NewStack(items ...*uint256.Int) (*Stack, error) {
	st := newstack()
	for _, item := range items {
		if err := st.Push(item); err != nil {
			returnStack(st)
			return nil, err
		}
	}
	return st, nil
}

func returnStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Release hands the stack back to the pool. It must not be used afterwards.
func (st *Stack) Release() {
	returnStack(st)
}

// Data returns the underlying uint256.Int array.
func (st *Stack) Data() []uint256.Int {
	return st.data
}

func (st *Stack) Push(d *uint256.Int) error {
	if len(st.data) >= int(params.StackLimit) {
		return &ErrStackOverflowDetail{stackLen: len(st.data), limit: int(params.StackLimit)}
	}
	st.data = append(st.data, *d)
	return nil
}

func (st *Stack) Pop() (uint256.Int, error) {
	if len(st.data) == 0 {
		return uint256.Int{}, &ErrStackUnderflowDetail{stackLen: 0, required: 1}
	}
	ret := st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return ret, nil
}

func (st *Stack) Len() int {
	return len(st.data)
}

// Peek returns the top item.
func (st *Stack) Peek() *uint256.Int {
	return &st.data[st.Len()-1]
}

// Back returns the n'th item in stack
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[st.Len()-n-1]
}
