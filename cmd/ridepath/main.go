// Command ridepath finds the nearest driver for a rider on a road graph.
//
//	ridepath query  [--source U1] [--graph file] [--json] [--verify]
//	ridepath serve  [--port 8080] [--graph file] [--verify]
//	ridepath nodes  [--graph file]
//	ridepath export [--format yaml|json] [--graph file]
//
// Settings are layered: flags > RIDEPATH_* env > ridepath.toml > defaults.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "ridepath: %v\n", err)
		os.Exit(1)
	}
}
