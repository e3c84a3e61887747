package ethvm

import (
	"testing"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	st, err := NewStack(u(1), u(2))
	require.NoError(t, err)
	defer st.Release()

	require.Equal(t, 2, st.Len())
	require.Equal(t, uint64(2), st.Peek().Uint64())
	require.Equal(t, uint64(1), st.Back(1).Uint64())

	v, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, uint64(2), v.Uint64())
	v, err = st.Pop()
	require.NoError(t, err)
	require.Equal(t, uint64(1), v.Uint64())

	_, err = st.Pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackLimit(t *testing.T) {
	st, err := NewStack()
	require.NoError(t, err)
	defer st.Release()

	for i := 0; i < int(params.StackLimit); i++ {
		require.NoError(t, st.Push(u(uint64(i))))
	}
	err = st.Push(u(0))
	require.ErrorIs(t, err, ErrStackOverflow)
	require.Equal(t, int(params.StackLimit), st.Len())
}
