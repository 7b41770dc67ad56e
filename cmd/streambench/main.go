// streambench - throughput benchmark for streamval + jsonstream
//
// Usage:
//
//	streambench run [file] --iterations=N
//
// Reads a JSON-shaped value from stdin/file, converts it once via
// streamval.Of, then repeatedly encodes it through jsonstream.Encode and
// reports throughput. If no file is given, reads from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nilfen/streamval"
	"github.com/nilfen/streamval/jsonstream"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "streambench: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var iterations int

	run := &cobra.Command{
		Use:           "run [file]",
		Short:         "Benchmark jsonstream.Encode throughput over a repeated value",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeFn()
			return runBench(logger, r, iterations)
		},
	}
	run.Flags().IntVar(&iterations, "iterations", 10000, "number of encode passes to time")

	root := &cobra.Command{
		Use:           "streambench",
		Short:         "Throughput benchmark for streamval + jsonstream",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(run)
	return root
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}

func runBench(logger *zap.Logger, r io.Reader, iterations int) error {
	if iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("parse JSON input: %w", err)
	}

	// One warmup pass to catch a malformed input before timing starts.
	val := streamval.Of(decoded)
	out, err := jsonstream.Encode(val)
	if err != nil {
		return fmt.Errorf("warmup encode: %w", err)
	}
	outputBytes := len(out)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := jsonstream.Encode(val); err != nil {
			return fmt.Errorf("encode pass %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	totalBytes := int64(outputBytes) * int64(iterations)
	mbPerSec := float64(totalBytes) / elapsed.Seconds() / (1 << 20)
	nsPerOp := elapsed.Nanoseconds() / int64(iterations)

	logger.Info("encode throughput",
		zap.Int("iterations", iterations),
		zap.Int("output_bytes_per_op", outputBytes),
		zap.Duration("total", elapsed),
		zap.Int64("ns_per_op", nsPerOp),
		zap.Float64("mb_per_sec", mbPerSec),
	)

	fmt.Printf("iterations:   %d\n", iterations)
	fmt.Printf("output size:  %d bytes/op\n", outputBytes)
	fmt.Printf("elapsed:      %s\n", elapsed)
	fmt.Printf("throughput:   %.1f MB/s (%d ns/op)\n", mbPerSec, nsPerOp)
	return nil
}
