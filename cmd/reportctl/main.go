// Package main is the entry point for the report CLI.
package main

import (
	"os"

	"github.com/heartmarshall/timetrack-backend/cmd/reportctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
