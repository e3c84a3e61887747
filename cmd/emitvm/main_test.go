package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/CaduceusMetaverseProtocol/MetaVM/params"
	"github.com/CaduceusMetaverseProtocol/MetaVM/process"
	"github.com/CaduceusMetaverseProtocol/MetaVM/vm/ethvm"
	"github.com/stretchr/testify/require"
)

const testFixture = `
gas_limit = 100000
block_number = 17

[schedule]
log_data_gas = 16

[[message]]
contract = "0x7bd2bfb46832da710780552e286a713af771b89f"
gas = "0x2710"
stack = ["0xaa", "0x4", "0x0"]
memory = "0xdeadbeef"
program = ["LOG1", "STOP"]

[[message]]
gas = "0x3e8"
stack = ["0x0"]
program = ["LOG0"]
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFixture(t *testing.T) {
	f, err := loadFixture(writeFixture(t, testFixture))
	require.NoError(t, err)
	require.Equal(t, uint64(100000), f.GasLimit)
	require.Len(t, f.Messages, 2)

	s, err := f.schedule()
	require.NoError(t, err)
	want := params.DefaultGasSchedule()
	want.LogDataGas = 16
	require.Equal(t, want, s)

	msgs, err := f.messages(0)
	require.NoError(t, err)
	require.Equal(t, uint64(10000), msgs[0].GasLimit)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, msgs[0].Memory)
	require.Equal(t, []ethvm.OpCode{ethvm.LOG1, ethvm.STOP}, msgs[0].Program)
	require.Equal(t, uint64(1000), msgs[1].GasLimit)
}

func TestLoadFixtureErrors(t *testing.T) {
	_, err := loadFixture(writeFixture(t, "bogus = 1\n"))
	require.ErrorContains(t, err, "unknown keys")

	_, err = loadFixture(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	f, err := loadFixture(writeFixture(t, "[schedule]\nquad_coeff_div = 0\n"))
	require.NoError(t, err)
	_, err = f.schedule()
	require.ErrorIs(t, err, params.ErrZeroQuadCoeffDiv)

	f, err = loadFixture(writeFixture(t, "[schedule]\nstorage_gas = 1\n"))
	require.NoError(t, err)
	_, err = f.schedule()
	require.Error(t, err)
}

func TestRunFixture(t *testing.T) {
	path := writeFixture(t, testFixture)
	for _, parallel := range []bool{false, true} {
		var out bytes.Buffer
		require.NoError(t, runFixture(context.Background(), &out, path, runOptions{parallel: parallel}))
		// 375 + 4*16 + 375 for the first message, the second underflows and
		// uses all of its 1000.
		require.Contains(t, out.String(), "gas used 1814")
		require.Contains(t, out.String(), "message 0: ok, gas used 814, logs 1")
		require.Contains(t, out.String(), "log 0 (block 17): address ")
		require.Contains(t, out.String(), "data 0xdeadbeef")
		require.Contains(t, out.String(), "message 1: failed: ")
	}
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"run", "--trace", "--verbosity", "5", writeFixture(t, testFixture)})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "VM step")
	require.Contains(t, out.String(), "logs 1")
}

func TestRunFixtureDefaultGas(t *testing.T) {
	const fixture = `
[[message]]
program = ["STOP"]

[[message]]
program = ["STOP"]

[[message]]
event = "Transfer(address,address,uint256)"
stack = ["0x0", "0x0"]
program = ["LOG1"]
`
	path := writeFixture(t, fixture)
	f, err := loadFixture(path)
	require.NoError(t, err)
	msgs, err := f.messages(0)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), f.poolLimit(msgs))

	var out bytes.Buffer
	require.NoError(t, runFixture(context.Background(), &out, path, runOptions{}))
	require.NotContains(t, out.String(), "not executed")
	require.Contains(t, out.String(), "gas used 750")
	require.Contains(t, out.String(), "message 2: ok, gas used 750, logs 1, mode serial")
	require.Contains(t, out.String(), "topic 0: 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
}

func TestPoolLimit(t *testing.T) {
	msgs := []*process.Message{{GasLimit: 10}, {GasLimit: 20}}
	require.Equal(t, uint64(30), (&Fixture{}).poolLimit(msgs))
	require.Equal(t, uint64(5), (&Fixture{GasLimit: 5}).poolLimit(msgs))
}
