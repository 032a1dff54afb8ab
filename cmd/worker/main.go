package main

import (
	"dental-navigator/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize worker with all dependencies
	worker, err := bootstrap.NewWorker()
	if err != nil {
		logrus.Fatalf("Failed to initialize worker: %v", err)
	}

	// Run the worker loop
	worker.Run()
}
