package main

import (
	"os"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
