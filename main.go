package main

import (
	"fmt"
	"os"

	"github.com/tate-it/energy-toolbox-sub003/internal/cli"
)

func main() {
	if err := cli.RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
