package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pengelbrecht/calc/cmd/calc/cmd"
	"github.com/pengelbrecht/calc/internal/calculator"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
	exitDomain  = 4
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	err := cmd.Execute(args[1:])
	if err == nil {
		return exitSuccess
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	var domainErr *calculator.DomainError
	switch {
	case errors.As(err, &domainErr):
		return exitDomain
	case cmd.IsUsageError(err):
		return exitUsage
	default:
		return exitFailure
	}
}
