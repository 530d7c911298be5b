package main

import (
	"os"

	"github.com/rbansal42/snipper/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
