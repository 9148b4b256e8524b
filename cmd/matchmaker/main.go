// Package main starts the matchmaking service.
//
// This process owns the waiting queues and room formation for all game
// languages, scheduling meetings and notifying participants as rooms open.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	matchmakercmd "github.com/louisbranch/agora/internal/cmd/matchmaker"
)

func main() {
	cfg, err := matchmakercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[MATCHMAKER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := matchmakercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
