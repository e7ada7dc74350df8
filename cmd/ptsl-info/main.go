// Package main prints host and session facts from a running host.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	infocmd "github.com/louisbranch/ptsl/internal/cmd/info"
	"github.com/louisbranch/ptsl/internal/platform/config"
)

func main() {
	cfg, err := infocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[PTSL-INFO] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infocmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("failed to query host: %v", err)
	}
}
