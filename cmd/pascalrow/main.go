package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/pascal-host/host"
	"github.com/wippyai/pascal-host/internal/wasmbin"
	"github.com/wippyai/pascal-host/runtime"
	"github.com/wippyai/pascal-host/triangle"
)

func main() {
	var (
		n           = flag.Int("n", -1, "Row length: prints the coefficients C(n-1, 0..n-1)")
		checked     = flag.Bool("checked", false, "Fail on uint32 overflow instead of wrapping")
		wasmFile    = flag.String("wasm", "", "Route the request through a guest wasm module")
		demo        = flag.Bool("demo", false, "Route the request through the built-in guest module")
		list        = flag.Bool("list", false, "List guest exports and exit (needs -wasm or -demo)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	// Bare invocation on a terminal drops into the TUI.
	if *interactive || (flag.NFlag() == 0 && term.IsTerminal(int(os.Stdin.Fd()))) {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *n < 0 && !*list {
		fmt.Fprintln(os.Stderr, "Usage: pascalrow -n <length> [-checked]")
		fmt.Fprintln(os.Stderr, "       pascalrow -n <length> [-checked] -wasm <file.wasm>")
		fmt.Fprintln(os.Stderr, "       pascalrow -n <length> [-checked] -demo")
		fmt.Fprintln(os.Stderr, "       pascalrow -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*n, *checked, *wasmFile, *demo, *list, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(n int, checked bool, wasmFile string, demo, list, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}

	if wasmFile == "" && !demo {
		if list {
			return fmt.Errorf("-list needs -wasm or -demo")
		}
		row, err := computeRow(n, checked)
		if err != nil {
			return err
		}
		fmt.Println(formatRow(row))
		return nil
	}

	guest := wasmbin.BuildGuest(host.Namespace)
	if wasmFile != "" {
		data, err := os.ReadFile(wasmFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		guest = data
	}

	row, err := runGuest(guest, n, checked, list, logger)
	if err != nil {
		return err
	}
	if row != nil {
		fmt.Println(formatRow(row))
	}
	return nil
}

func computeRow(n int, checked bool) ([]uint32, error) {
	if checked {
		return triangle.RowChecked(n)
	}
	return triangle.Row(n), nil
}

// runGuest loads a guest that imports the triangle host, calls its
// generate export, and reads the row back from the guest's memory.
func runGuest(guest []byte, n int, checked, list bool, logger *zap.Logger) ([]uint32, error) {
	ctx := context.Background()

	rt, err := runtime.New(ctx, runtime.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create runtime: %w", err)
	}
	defer rt.Close(ctx)

	if err := rt.RegisterHost(host.NewTriangle(logger)); err != nil {
		return nil, fmt.Errorf("register host: %w", err)
	}

	mod, err := rt.Load(ctx, guest)
	if err != nil {
		return nil, fmt.Errorf("load guest: %w", err)
	}

	if list {
		fmt.Println("Exported functions:")
		for _, name := range mod.Exports() {
			fmt.Printf("  %s\n", name)
		}
		return nil, nil
	}

	inst, err := mod.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("instantiate: %w", err)
	}
	defer inst.Close(ctx)

	entry := "generate"
	if checked {
		entry = "generate-checked"
	}

	results, err := inst.Call(ctx, entry, api.EncodeI32(int32(n)), api.EncodeU32(0))
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", entry, err)
	}
	status := api.DecodeI32(results[0])
	if status < 0 {
		return nil, statusError(status)
	}

	return inst.Memory().ReadU32Slice(0, int(status))
}

func statusError(status int32) error {
	switch status {
	case host.StatusInvalidInput:
		return fmt.Errorf("guest reported invalid input")
	case host.StatusOutOfBounds:
		return fmt.Errorf("row does not fit in guest memory")
	case host.StatusOverflow:
		return fmt.Errorf("row overflows uint32; max safe length is %d", triangle.MaxLen32)
	}
	return fmt.Errorf("guest reported status %d", status)
}

func formatRow(row []uint32) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
