package main

import (
	"os"

	"hospital-ops/ops-console/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
