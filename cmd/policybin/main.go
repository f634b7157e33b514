package main

import (
	"log"
	"os"

	"github.com/google/gops/agent"
)

func main() {
	startGops()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func startGops() {
	if os.Getenv("POLICYBIN_GOPS") == "off" {
		return
	}
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}
