// streamval - demo CLI for the streamval/jsonstream packages
//
// Usage:
//
//	streamval encode [file]   Read a JSON-shaped value from stdin/file and
//	                          round-trip it through streamval.Of + jsonstream.Encode
//	streamval check [file]    Same, but wrapped in streamval.Validate first
//
// If no file is given, reads from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nilfen/streamval"
	"github.com/nilfen/streamval/jsonstream"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "streamval: init logger: %v\n", err)
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
	root := &cobra.Command{
		Use:           "streamval",
		Short:         "Demo CLI for the streamval core contract and the jsonstream encoder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEncodeCmd(logger, false))
	root.AddCommand(newEncodeCmd(logger, true))
	return root
}

func newEncodeCmd(logger *zap.Logger, validate bool) *cobra.Command {
	use, short := "encode [file]", "Encode stdin/file through streamval.Of and jsonstream.Encode"
	if validate {
		use, short = "check [file]", "Same as encode, but wrapped in streamval.Validate first"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeFn()
			return runEncode(logger, r, validate)
		},
	}
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

func runEncode(logger *zap.Logger, r io.Reader, validate bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("parse JSON input: %w", err)
	}

	val := streamval.Of(v)

	var out []byte
	if validate {
		var buf []byte
		enc := jsonstream.NewEncoder(bufWriter(&buf))
		stream := streamval.Validate(enc)
		if err := streamval.Emit(stream, val); err != nil {
			if verr := streamval.Err(stream); verr != nil {
				return fmt.Errorf("ill-formed token sequence: %w", verr)
			}
			return fmt.Errorf("encode: %w", err)
		}
		out = buf
	} else {
		out, err = jsonstream.Encode(val)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	logger.Info("encoded value", zap.Int("input_bytes", len(data)), zap.Int("output_bytes", len(out)), zap.Bool("validated", validate))
	fmt.Println(string(out))
	return nil
}

// bufWriter adapts a *[]byte into an io.Writer by appending to it,
// avoiding a second allocation step for the validated-encode path.
func bufWriter(buf *[]byte) io.Writer {
	return &appendWriter{buf: buf}
}

type appendWriter struct{ buf *[]byte }

func (w *appendWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
