package main

import (
	"os"

	"github.com/sjwayrhz/Lankalive/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
