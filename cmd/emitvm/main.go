// emitvm runs LOG programs described by TOML fixtures and prints the events
// they emit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/CaduceusMetaverseProtocol/MetaVM/process"
	"github.com/CaduceusMetaverseProtocol/MetaVM/vm/ethvm"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int
	rootCmd := &cobra.Command{
		Use:   "emitvm",
		Short: "Run LOG0..LOG4 programs from TOML fixtures",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), verbosity)
		},
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().IntVar(&verbosity, "verbosity", int(log.LvlWarn), "log level: 0=crit 1=error 2=warn 3=info 4=debug 5=trace")

	rootCmd.AddCommand(newRunCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "emitvm %s (%s)\n", Version, Commit)
		},
	})
	return rootCmd
}

func setupLogging(w io.Writer, verbosity int) {
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(verbosity), log.StreamHandler(w, log.TerminalFormat(false))))
}

type runOptions struct {
	gasCap   uint64
	parallel bool
	workers  int
	trace    bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <fixture.toml>...",
		Short: "Execute the messages of one or more fixtures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			for _, path := range args {
				if err := runFixture(ctx, cmd.OutOrStdout(), path, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&opts.gasCap, "gascap", 0, "cap on the gas of every message (0 = no cap)")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "execute the messages of a fixture concurrently")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "number of workers in parallel mode (0 = one per CPU)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log every executed instruction")
	return cmd
}

func runFixture(ctx context.Context, w io.Writer, path string, opts runOptions) error {
	fixture, err := loadFixture(path)
	if err != nil {
		return err
	}
	schedule, err := fixture.schedule()
	if err != nil {
		return fmt.Errorf("fixture %s: %w", path, err)
	}
	msgs, err := fixture.messages(opts.gasCap)
	if err != nil {
		return fmt.Errorf("fixture %s: %w", path, err)
	}

	cfg := ethvm.Config{Schedule: schedule}
	if opts.trace {
		cfg.Debug = true
		cfg.Tracer = ethvm.NewLogTracer(log.New("fixture", path))
		if opts.parallel {
			log.Warn("Tracing forces serial execution", "fixture", path)
			opts.parallel = false
		}
	}
	p := process.NewProcessor(cfg, opts.workers)

	var (
		results []*process.Result
		used    uint64
	)
	if opts.parallel {
		results, used = p.ExecBatch(ctx, msgs)
	} else {
		results, used = p.ExecInOrder(msgs, fixture.poolLimit(msgs))
	}
	printResults(w, path, fixture.BlockNumber, results, used)
	return nil
}

func printResults(w io.Writer, path string, blockNumber uint64, results []*process.Result, used uint64) {
	fmt.Fprintf(w, "%s: %d messages, gas used %d\n", path, len(results), used)
	var logIndex uint
	for _, res := range results {
		if err := res.Ed.ErrInfo(); err != nil {
			fmt.Fprintf(w, "message %d: not executed: %v\n", res.Index, err)
			continue
		}
		status := "ok"
		if res.Failed() {
			status = "failed: " + res.VmErr.Error()
		}
		fmt.Fprintf(w, "message %d: %s, gas used %d, logs %d, mode %s\n", res.Index, status, res.UsedGas, len(res.Logs), res.Level())
		for _, l := range res.Logs {
			printLog(w, l.ToEth(blockNumber, common.Hash{}, logIndex))
			logIndex++
		}
		if len(res.Logs) > 0 {
			fmt.Fprintf(w, "  bloom %s\n", hexutil.Encode(res.Bloom.Bytes()))
		}
	}
}

func printLog(w io.Writer, l *types.Log) {
	fmt.Fprintf(w, "  log %d (block %d): address %s data %s\n", l.Index, l.BlockNumber, l.Address.Hex(), hexutil.Encode(l.Data))
	for j, topic := range l.Topics {
		fmt.Fprintf(w, "    topic %d: %s\n", j, topic.Hex())
	}
}
