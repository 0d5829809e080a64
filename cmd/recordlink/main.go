// Command recordlink resolves duplicate records in a JSON-lines dataset.
//
//	recordlink resolve data/records.jsonl.zst --blocking canopies -o out/clusters.jsonl
//	recordlink resolve s3://bucket/records.jsonl --config recordlink.yaml
//	recordlink version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
