package main

import (
	"os"

	"github.com/wonny/sentiq/cmd/sentiq/commands"
)

// main is the entry point for the sentiq CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/sentiq [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
